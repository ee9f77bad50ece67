package explorer

import (
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/models"
)

// Filter returns, in catalog order, the entries whose name contains query
// ignoring case. An empty query matches nothing.
func Filter(catalog []models.CatalogEntry, query string) []models.CatalogEntry {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var matches []models.CatalogEntry
	for _, entry := range catalog {
		if strings.Contains(strings.ToLower(entry.Name), needle) {
			matches = append(matches, entry)
		}
	}
	return matches
}
