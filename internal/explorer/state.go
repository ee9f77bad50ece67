package explorer

import (
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/models"
)

// State is the complete view state of one explorer. Values are never mutated
// in place; every event produces a new State through one of the reducers
// below.
type State struct {
	Catalog     []models.CatalogEntry
	Query       string
	Suggestions []models.CatalogEntry
	Selected    string
	Detail      *models.PokemonDetail

	// Token identifies the latest detail request. Responses carrying an older
	// token are dropped by DetailLoaded.
	Token uint64
}

func ListLoaded(s State, catalog []models.CatalogEntry) State {
	s.Catalog = catalog
	s.Suggestions = Filter(catalog, s.Query)
	return s
}

func QueryChanged(s State, query string) State {
	s.Query = query
	s.Suggestions = Filter(s.Catalog, query)
	return s
}

// SuggestionChosen puts name in the search box, selects it and hides the
// suggestion list.
func SuggestionChosen(s State, name string) State {
	s.Query = name
	s.Selected = name
	s.Suggestions = nil
	return s
}

func SelectionChanged(s State, id string) State {
	s.Selected = id
	return s
}

func SearchSubmitted(s State) State {
	s.Selected = strings.ToLower(strings.TrimSpace(s.Query))
	return s
}

func DetailRequested(s State) State {
	s.Token++
	return s
}

// DetailLoaded replaces the held detail if token still identifies the latest
// request.
func DetailLoaded(s State, token uint64, detail *models.PokemonDetail) State {
	if token != s.Token || detail == nil {
		return s
	}
	s.Detail = detail
	return s
}

// NeedsDetail reports whether moving from prev to next should trigger a
// detail fetch.
func NeedsDetail(prev, next State) bool {
	return next.Selected != "" && next.Selected != prev.Selected
}
