package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (g *Gui) introPage(p *tview.Pages) tview.Primitive {
	textView := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	textView.SetText(`Welcome to Local Pokedex!

This wizard will walk you through setting up your configuration: which explorer profile to use, where the explorer page is served, and whether the explorer should also run in this terminal.

[::b]It is strongly recommended that you maximize this terminal window to avoid text being cut-off[-:-:-:-]

If you would like to exit the wizard early, please press the [red]esc key[-:-:-:-], otherwise please press [yellow]enter[-:-:-:-] to continue

`)

	textView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter:
			p.SwitchToPage("profile")
		}
		return event
	})

	frame := tview.NewFrame(textView)
	frame.AddText(helpContinue, false, tview.AlignLeft, tcell.ColorYellow)
	frame.SetBorder(true).SetTitle("Local Pokedex")
	return frame
}

func (g *Gui) confirmationPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()

	displayMode := "simple"
	if g.config.FancyScreen {
		displayMode = "fancy"
	}

	form.AddTextView("Explorer Settings", profileSummary(g.config), 0, 0, true, true)
	form.AddTextView("HTTP Settings", fmt.Sprintf(`Listening Address: %s
Listening Port: %d
`, g.config.HTTP.ListeningAddr, g.config.HTTP.Port), 0, 0, true, true)
	form.AddTextView("Display Mode", displayMode, 0, 0, true, true)

	form.AddButton("Save", func() {
		g.Stop()
	})
	form.AddButton("Edit", func() {
		p.SwitchToPage("profile")
	})

	frame := tview.NewFrame(form)
	frame.AddText("Please review the details below, and if all is good, press enter on the save button, otherwise, press the edit button to go back to the first page (with your data saved of course)", true, tview.AlignLeft, tcell.ColorYellow)
	frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - submit [orange] (Shift+)Tab - switch buttons", false, tview.AlignLeft, tcell.ColorYellow)
	frame.SetBorder(true)
	frame.SetTitle("Local Pokedex - Settings Review")

	return frame
}
