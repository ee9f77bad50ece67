package gui

import (
	"fmt"
	"net"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpForm = "[red]ESC - exit[-:-:-:-] [yellow] Enter - next input/submit [orange] (Shift+)Tab - switch inputs"

func digitsOnly(max int) func(string, rune) bool {
	return func(textToCheck string, lastChar rune) bool {
		if !unicode.IsDigit(lastChar) {
			return false
		}
		num, _ := strconv.Atoi(textToCheck)
		return num >= 0 && num <= max
	}
}

func (g *Gui) explorerConfigPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()
	frame := tview.NewFrame(form)

	profile := g.config.Explorer.ResolvedProfile()
	limit := strconv.Itoa(profile.CatalogLimit)
	baseURL := g.config.Explorer.BaseURL

	drawFrame := func() {
		frame.Clear()
		frame.AddText(fmt.Sprintf("Profile %q loads %d entries by default, you can change that below", profile.Name, models.Profiles[profile.Name].CatalogLimit), true, tview.AlignLeft, tcell.ColorYellow)
		frame.AddText(helpForm, false, tview.AlignLeft, tcell.ColorYellow)
	}
	drawFrame()

	form.AddInputField("Catalog Size", limit, 20, digitsOnly(2000), func(text string) {
		limit = text
	})
	form.AddInputField("API Base URL", baseURL, 40, nil, func(text string) {
		baseURL = text
	})
	form.AddTextView("API Info", "Leave the base URL empty to use the public PokeAPI (https://pokeapi.co/api/v2).", 0, 0, true, true)

	form.AddButton("Submit", func() {
		drawFrame()
		errors := []string{}

		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			errors = append(errors, "Catalog Size: please enter a number between 1 and 2000")
		}

		if baseURL != "" {
			if u, err := url.ParseRequestURI(baseURL); err != nil || u.Host == "" {
				errors = append(errors, "API Base URL: input is not a valid URL")
			}
		}

		if len(errors) > 0 {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			for _, v := range errors {
				frame.AddText(v, true, tview.AlignLeft, tcell.ColorRed)
			}
			return
		}

		g.config.Explorer.BaseURL = strings.TrimSuffix(baseURL, "/")
		g.config.Explorer.CatalogLimit = 0
		if n != models.Profiles[profile.Name].CatalogLimit {
			g.config.Explorer.CatalogLimit = n
		}

		p.AddPage("http-config", g.httpConfigPage(p), true, false)
		p.SwitchToPage("http-config")
	})

	frame.SetBorder(true)
	frame.SetTitle("Local Pokedex - Configuring Explorer")

	return frame
}

func (g *Gui) httpConfigPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()
	frame := tview.NewFrame(form)

	chosenAddr := "0.0.0.0"
	chosenPort := "8080"

	if g.config.HTTP.ListeningAddr != "" {
		chosenAddr = g.config.HTTP.ListeningAddr
	}

	if g.config.HTTP.Port != 0 {
		chosenPort = strconv.Itoa(g.config.HTTP.Port)
	}

	drawFrame := func() {
		frame.Clear()
		frame.AddText("Please fill out the form below, the explorer page will be served on this address", true, tview.AlignLeft, tcell.ColorYellow)
		frame.AddText(helpForm, false, tview.AlignLeft, tcell.ColorYellow)
		if chosenAddr == "127.0.0.1" || chosenAddr == "localhost" || chosenAddr == "::1" {
			frame.AddText(fmt.Sprintf("Using %s (localhost) means only this machine can open the explorer", chosenAddr), true, tview.AlignLeft, tcell.ColorRed)
		}
	}

	drawFrame()
	availableAddresses := []string{"0.0.0.0"}

	ipHelpText := `
When selecting the listening address, 0.0.0.0 will have Local Pokedex listen on all IP addresses bound to your computer.
Pick a specific address from the dropdown if you only want the explorer reachable on one interface.
`

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		ipHelpText = fmt.Sprintf(`Due to an error, the application couldn't list the IPs assigned to your machine, as such it will fallback to using 0.0.0.0 (listening on all interfaces)
Error info: %s
`, err.Error())
	} else {
		for _, address := range addrs {
			if strings.HasPrefix(address.String(), "fe80") {
				continue
			}
			availableAddresses = append(availableAddresses, strings.Split(address.String(), "/")[0])
		}
	}

	index := slices.Index(availableAddresses, chosenAddr)
	if index == -1 {
		index = 0
	}

	form.AddTextView("IP Info", ipHelpText, 0, 0, true, true)
	form.AddDropDown("Listening Address", availableAddresses, index, func(option string, optionIndex int) {
		chosenAddr = option
		drawFrame()
	})
	form.AddInputField("Port", chosenPort, 20, func(textToCheck string, lastChar rune) bool {
		return digitsOnly(65535)(textToCheck, lastChar) && textToCheck != "0"
	}, func(text string) {
		chosenPort = text
	})

	form.AddButton("Submit", func() {
		drawFrame()
		if chosenPort == "" {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			frame.AddText("Port: Please enter a valid port number", true, tview.AlignLeft, tcell.ColorRed)
			return
		}

		l, err := net.Listen("tcp", net.JoinHostPort(chosenAddr, chosenPort))
		if err != nil {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			frame.AddText(err.Error(), true, tview.AlignLeft, tcell.ColorRed)
			return
		}
		l.Close()

		port, _ := strconv.Atoi(chosenPort)
		g.config.HTTP = models.HTTPConfig{
			ListeningAddr: chosenAddr,
			Port:          port,
		}

		p.SwitchToPage("display-config")
	})

	frame.SetBorder(true)
	frame.SetTitle("Local Pokedex - Configuring HTTP")

	return frame
}
