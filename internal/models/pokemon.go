package models

// CatalogEntry is one row of the catalog page. URL is only an opaque handle.
type CatalogEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type PokemonType struct {
	Name string `json:"name"`
}

type PokemonStat struct {
	Name      string `json:"name"`
	BaseValue int    `json:"base_value"`
}

// PokemonDetail is the detail record for a single entry. Sprites is keyed by
// "<group>.<variant>" (e.g. "home.shiny"); a nil value means the API had no
// image for that variant.
type PokemonDetail struct {
	ID      int                `json:"id"`
	Name    string             `json:"name"`
	Height  int                `json:"height"`
	Weight  int                `json:"weight"`
	Types   []PokemonType      `json:"types"`
	Stats   []PokemonStat      `json:"stats"`
	Sprites map[string]*string `json:"sprites"`
}

// Sprite returns the URL for a variant, or "" when it is absent or null.
func (d *PokemonDetail) Sprite(variant string) string {
	if d == nil || d.Sprites == nil {
		return ""
	}
	u := d.Sprites[variant]
	if u == nil {
		return ""
	}
	return *u
}
