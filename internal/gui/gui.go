package gui

import (
	"os"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpContinue = "[red]ESC - exit[-:-:-:-] [yellow] Enter - continue"

// Gui is the first-run setup wizard that fills in a models.Config.
type Gui struct {
	app    *tview.Application
	config *models.Config
}

func NewWizard(config *models.Config) *Gui {
	g := &Gui{
		app:    tview.NewApplication(),
		config: &models.Config{},
	}

	if config != nil {
		g.config = config
	}

	g.app.EnableMouse(true)

	g.Init()

	return g
}

func (g *Gui) Init() {
	pages := tview.NewPages()
	pages.AddPage("setup", g.introPage(pages), true, true)
	pages.AddPage("profile", g.profileSelection(pages), true, false)
	pages.AddPage("display-config", g.displayMode(pages), true, false)

	pages.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			g.app.Stop()
			os.Exit(0)
		}
		return event
	})

	g.app.SetRoot(pages, true)
}

func (g *Gui) Start() error {
	return g.app.Run()
}

func (g *Gui) Stop() {
	g.app.Stop()
}
