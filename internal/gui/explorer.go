package gui

import (
	"fmt"
	"io"
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/explorer"
	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	barWidth    = 24
	helpExplore = "[red]ESC/Ctrl+C - exit[-:-:-:-] [yellow]Enter - search/select [orange]Tab - next widget[-:-:-:-] Down - suggestions"
)

// Explorer is the terminal front end of an explorer.Session.
type Explorer struct {
	app     *tview.Application
	session *explorer.Session
	profile models.Profile

	input       *tview.InputField
	search      *tview.Button
	suggestions *tview.List
	dropdown    *tview.DropDown
	card        *tview.TextView
	logs        *tview.TextView
	focus       []tview.Primitive

	shown       []models.CatalogEntry
	catalogSize int
	syncing     bool

	// queue schedules a render on the UI goroutine.
	queue func(func())
}

func NewExplorer() *Explorer {
	e := &Explorer{app: tview.NewApplication()}
	e.queue = func(f func()) {
		go e.app.QueueUpdateDraw(f)
	}

	e.input = tview.NewInputField().
		SetLabel(" Pokemon ").
		SetPlaceholder("Enter Pokemon name or ID").
		SetFieldWidth(0)
	e.input.SetChangedFunc(func(text string) {
		if e.syncing || e.session == nil {
			return
		}
		e.session.SetQuery(text)
	})
	e.input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			e.submit()
		case tcell.KeyDown:
			if e.suggestions.GetItemCount() > 0 {
				e.app.SetFocus(e.suggestions)
			}
		}
	})

	e.search = tview.NewButton("Search").SetSelectedFunc(e.submit)

	e.suggestions = tview.NewList().ShowSecondaryText(false)
	e.suggestions.SetBorder(true).SetTitle(" Suggestions ")
	e.suggestions.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		if index < 0 || index >= len(e.shown) || e.session == nil {
			return
		}
		e.session.ChooseSuggestion(e.shown[index].Name)
		e.app.SetFocus(e.input)
	})

	e.dropdown = tview.NewDropDown().
		SetLabel(" Browse ").
		SetTextOptions("", "", "", "", "Choose a Pokemon from the list")

	e.card = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	e.card.SetBorder(true).SetTitle(" Pokemon ")

	e.logs = tview.NewTextView().
		SetDynamicColors(false).
		SetScrollable(true).
		SetMaxLines(500)
	e.logs.SetBorder(true).SetTitle(" Logs ")
	e.logs.SetChangedFunc(func() {
		e.logs.ScrollToEnd()
		e.app.Draw()
	})

	e.focus = []tview.Primitive{e.input, e.search, e.suggestions, e.dropdown, e.card}

	searchRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(e.input, 0, 1, true).
		AddItem(e.search, 10, 0, false)

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(searchRow, 1, 0, true).
		AddItem(e.dropdown, 1, 0, false).
		AddItem(e.suggestions, 0, 1, false)

	main := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(left, 0, 1, true).
		AddItem(e.card, 0, 2, false)

	help := tview.NewTextView().SetDynamicColors(true).SetText(helpExplore)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(main, 0, 3, true).
		AddItem(e.logs, 8, 0, false).
		AddItem(help, 1, 0, false)
	root.SetBorder(true).SetTitle(" Local Pokedex ")

	e.app.SetInputCapture(e.handleKeys)
	e.app.SetRoot(root, true).SetFocus(e.input)
	e.app.EnableMouse(true)

	return e
}

// GetLogOutput is where logs should be written while the explorer owns the
// terminal.
func (e *Explorer) GetLogOutput() io.Writer {
	return e.logs
}

// Bind attaches the explorer to a session and renders its current state.
func (e *Explorer) Bind(session *explorer.Session) {
	e.session = session
	e.profile = session.Profile()
	session.Subscribe(func(explorer.State) {
		e.queue(func() {
			e.render(e.session.State())
		})
	})
	e.render(session.State())
}

func (e *Explorer) Start() error {
	return e.app.Run()
}

func (e *Explorer) Stop() {
	e.app.Stop()
}

func (e *Explorer) submit() {
	if e.session != nil {
		e.session.Search()
	}
}

func (e *Explorer) handleKeys(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		e.app.Stop()
		return nil
	case tcell.KeyTab, tcell.KeyBacktab:
		e.cycleFocus(event.Key() == tcell.KeyBacktab)
		return nil
	}
	return event
}

func (e *Explorer) cycleFocus(backwards bool) {
	current := e.app.GetFocus()
	idx := 0
	for i, p := range e.focus {
		if p == current {
			idx = i
			break
		}
	}
	step := 1
	if backwards {
		step = len(e.focus) - 1
	}
	e.app.SetFocus(e.focus[(idx+step)%len(e.focus)])
}

// render must run on the UI goroutine.
func (e *Explorer) render(st explorer.State) {
	e.syncing = true
	defer func() { e.syncing = false }()

	if e.input.GetText() != st.Query {
		e.input.SetText(st.Query)
	}

	e.shown = st.Suggestions
	e.suggestions.Clear()
	for _, entry := range st.Suggestions {
		e.suggestions.AddItem(explorer.DisplayName(entry.Name), "", 0, nil)
	}

	if len(st.Catalog) != e.catalogSize {
		e.catalogSize = len(st.Catalog)
		catalog := st.Catalog
		options := make([]string, 0, len(catalog))
		for _, entry := range catalog {
			options = append(options, explorer.DisplayName(entry.Name))
		}
		e.dropdown.SetOptions(options, func(_ string, index int) {
			if e.syncing || index < 0 || index >= len(catalog) || e.session == nil {
				return
			}
			e.session.SelectOption(catalog[index].Name)
		})
	}

	e.card.SetText(CardText(explorer.NewCard(st.Detail, e.profile)))
	e.card.ScrollToBeginning()
}

// CardText renders a card with tview color tags. A nil card renders nothing.
func CardText(card *explorer.Card) string {
	if card == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[::b]%s[-:-:-]", tview.Escape(card.Name))
	if card.ShowID {
		fmt.Fprintf(&b, "  [gray]ID:[-] %d", card.ID)
	}
	b.WriteString("\n\n[::b]Types[-:-:-]\n")
	for _, t := range card.Types {
		fmt.Fprintf(&b, "[black:yellow] %s [-:-:-] ", tview.Escape(t))
	}
	fmt.Fprintf(&b, "\n\n[::b]%s:[-:-:-] %s\n", card.Height.Label, card.Height.Value)
	fmt.Fprintf(&b, "[::b]%s:[-:-:-] %s\n", card.Weight.Label, card.Weight.Value)

	if len(card.Sprites) > 0 {
		b.WriteString("\n[::b]Sprites[-:-:-]\n")
		for _, s := range card.Sprites {
			fmt.Fprintf(&b, "%s: [blue]%s[-]\n", s.Label, tview.Escape(s.URL))
		}
	}

	b.WriteString("\n[::b]Stats[-:-:-]\n")
	for _, s := range card.Stats {
		fmt.Fprintf(&b, "%-16s %3d [green]%s[-] %5.1f%%\n", tview.Escape(s.Name), s.Base, ProgressBar(s.Percent, barWidth), s.Percent)
	}
	return b.String()
}

// ProgressBar draws percent (0-100) as a bar of width cells.
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(percent/100*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
