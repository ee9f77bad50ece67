package pokedex

import (
	"github.com/FlagBrew/local-pokedex/internal/explorer"
	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
)

type catalogEntry struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
	ID          int    `json:"id,omitempty"`
}

type catalogResponse struct {
	Count   int            `json:"count"`
	Results []catalogEntry `json:"results"`
}

type suggestionsResponse struct {
	Query   string         `json:"query"`
	Results []catalogEntry `json:"results"`
}

type pageData struct {
	Title       string
	Query       string
	Selected    string
	Shown       string
	Suggestions []catalogEntry
	Options     []catalogEntry
	Card        *explorer.Card
	Profile     models.Profile
}

func toCatalogEntries(entries []models.CatalogEntry) []catalogEntry {
	out := make([]catalogEntry, 0, len(entries))
	for _, e := range entries {
		id, _ := pokeapi.IDFromURL(e.URL)
		out = append(out, catalogEntry{
			Name:        e.Name,
			DisplayName: explorer.DisplayName(e.Name),
			URL:         e.URL,
			ID:          id,
		})
	}
	return out
}
