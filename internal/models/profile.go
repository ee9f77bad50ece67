package models

import "sort"

const (
	UnitsRaw    = "raw"
	UnitsMetric = "metric"

	DefaultProfile = "classic"

	// MaxBaseStat is the highest base stat value the API reports.
	MaxBaseStat = 255
)

// Profile collects everything that differs between explorer layouts.
type Profile struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	CatalogLimit   int      `json:"catalog_limit"`
	SpriteVariants []string `json:"sprite_variants"`
	ShowID         bool     `json:"show_id"`
	HeightLabel    string   `json:"height_label"`
	WeightLabel    string   `json:"weight_label"`
	Units          string   `json:"units"`
}

var Profiles = map[string]Profile{
	"classic": {
		Name:           "classic",
		Description:    "First 100 entries, default home and official artwork, measurements as reported by the API",
		CatalogLimit:   100,
		SpriteVariants: []string{"home.default", "official-artwork.default"},
		ShowID:         true,
		HeightLabel:    "Height",
		WeightLabel:    "Weight",
		Units:          UnitsRaw,
	},
	"shiny": {
		Name:         "shiny",
		Description:  "First 1000 entries, default and shiny sprites side by side, metric measurements",
		CatalogLimit: 1000,
		SpriteVariants: []string{
			"home.default", "home.shiny",
			"official-artwork.default", "official-artwork.shiny",
		},
		ShowID:      true,
		HeightLabel: "Height",
		WeightLabel: "Weight",
		Units:       UnitsMetric,
	},
	"compact": {
		Name:           "compact",
		Description:    "First 1000 entries, official artwork only, no id, short labels",
		CatalogLimit:   1000,
		SpriteVariants: []string{"official-artwork.default"},
		ShowID:         false,
		HeightLabel:    "Ht",
		WeightLabel:    "Wt",
		Units:          UnitsMetric,
	},
}

func LookupProfile(name string) (Profile, bool) {
	p, ok := Profiles[name]
	return p, ok
}

// ProfileNames returns the built-in profile names, default first.
func ProfileNames() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		if name != DefaultProfile {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultProfile}, names...)
}
