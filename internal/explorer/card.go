package explorer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Measurement struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SpriteSlot struct {
	Variant string `json:"variant"`
	Label   string `json:"label"`
	URL     string `json:"url"`
}

type StatBar struct {
	Name    string  `json:"name"`
	Base    int     `json:"base"`
	Percent float64 `json:"percent"`
}

// Card is the render model of one detail record under a profile.
type Card struct {
	ID      int          `json:"id,omitempty"`
	ShowID  bool         `json:"-"`
	Name    string       `json:"name"`
	Slug    string       `json:"slug"`
	Types   []string     `json:"types"`
	Height  Measurement  `json:"height"`
	Weight  Measurement  `json:"weight"`
	Sprites []SpriteSlot `json:"sprites"`
	Stats   []StatBar    `json:"stats"`
}

func NewCard(detail *models.PokemonDetail, profile models.Profile) *Card {
	if detail == nil {
		return nil
	}

	card := &Card{
		ShowID:  profile.ShowID,
		Name:    DisplayName(detail.Name),
		Slug:    detail.Name,
		Types:   make([]string, 0, len(detail.Types)),
		Sprites: []SpriteSlot{},
		Stats:   make([]StatBar, 0, len(detail.Stats)),
	}
	if profile.ShowID {
		card.ID = detail.ID
	}

	for _, t := range detail.Types {
		card.Types = append(card.Types, t.Name)
	}

	card.Height, card.Weight = measurements(detail, profile)

	for _, variant := range profile.SpriteVariants {
		u := detail.Sprite(variant)
		if u == "" {
			continue
		}
		card.Sprites = append(card.Sprites, SpriteSlot{
			Variant: variant,
			Label:   SpriteLabel(variant),
			URL:     u,
		})
	}

	for _, s := range detail.Stats {
		card.Stats = append(card.Stats, StatBar{
			Name:    s.Name,
			Base:    s.BaseValue,
			Percent: StatPercent(s.BaseValue),
		})
	}
	return card
}

// StatPercent is the fill of a stat bar, normalized by the highest possible
// base stat and clamped to [0, 100].
func StatPercent(base int) float64 {
	pct := float64(base) / models.MaxBaseStat * 100
	return math.Max(0, math.Min(100, pct))
}

func DisplayName(name string) string {
	return cases.Title(language.English).String(name)
}

// SpriteLabel turns "official-artwork.shiny" into "Official Artwork (shiny)".
func SpriteLabel(variant string) string {
	group, kind, _ := strings.Cut(variant, ".")
	label := cases.Title(language.English).String(strings.ReplaceAll(group, "-", " "))
	if kind == "" {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, kind)
}

func measurements(detail *models.PokemonDetail, profile models.Profile) (Measurement, Measurement) {
	height := Measurement{Label: profile.HeightLabel}
	weight := Measurement{Label: profile.WeightLabel}

	switch profile.Units {
	case models.UnitsMetric:
		height.Value = tenths(detail.Height) + " m"
		weight.Value = tenths(detail.Weight) + " kg"
	default:
		height.Value = strconv.Itoa(detail.Height) + " decimetres"
		weight.Value = strconv.Itoa(detail.Weight) + " hectograms"
	}
	return height, weight
}

func tenths(v int) string {
	return strconv.FormatFloat(float64(v)/10, 'f', 1, 64)
}
