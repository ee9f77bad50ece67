package gui

import (
	"fmt"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (g *Gui) profileSelection(p *tview.Pages) tview.Primitive {
	list := tview.NewList()

	for i, name := range models.ProfileNames() {
		profile := models.Profiles[name]
		list.AddItem(name, profile.Description, rune('1'+i), func() {
			g.config.Explorer.Profile = profile.Name
			p.AddPage("explorer-config", g.explorerConfigPage(p), true, false)
			p.SwitchToPage("explorer-config")
		})
	}

	frame := tview.NewFrame(list)
	frame.SetBorder(true)
	frame.SetTitle("Local Pokedex - Choosing Profile")
	frame.AddText("Please select how the explorer should look, every profile can be changed later in config.json", true, tview.AlignLeft, tcell.ColorYellow)
	frame.AddText(helpContinue, false, tview.AlignLeft, tcell.ColorYellow)
	return frame
}

func (g *Gui) displayMode(p *tview.Pages) tview.Primitive {
	list := tview.NewList()

	list.AddItem("simple", "Plain and simple, the explorer is only served over HTTP and the terminal shows plain-ol logs.", '1', func() {
		g.config.FancyScreen = false
		p.AddPage("confirm", g.confirmationPage(p), true, false)
		p.SwitchToPage("confirm")
	})
	list.AddItem("fancy", "Also runs the explorer right here in the terminal, with the logs in a panel below it.", '2', func() {
		g.config.FancyScreen = true
		p.AddPage("confirm", g.confirmationPage(p), true, false)
		p.SwitchToPage("confirm")
	})

	frame := tview.NewFrame(list)
	frame.SetBorder(true)
	frame.SetTitle("Local Pokedex - Choosing Display Mode")
	frame.AddText("Please select below which display mode you would like to use when running Local Pokedex", true, tview.AlignLeft, tcell.ColorYellow)
	frame.AddText(helpContinue, false, tview.AlignLeft, tcell.ColorYellow)
	return frame
}

func profileSummary(cfg *models.Config) string {
	profile := cfg.Explorer.ResolvedProfile()
	baseURL := cfg.Explorer.BaseURL
	if baseURL == "" {
		baseURL = "default (https://pokeapi.co/api/v2)"
	}
	return fmt.Sprintf(`Profile: %s
Catalog Size: %d
API: %s
`, profile.Name, profile.CatalogLimit, baseURL)
}
