package pokeapi

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonListResult struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}

type pokemonTypeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type pokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Stat     namedResource `json:"stat"`
}

type spriteSet struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
}

type pokemonSprites struct {
	spriteSet
	Other map[string]spriteSet `json:"other"`
}

type pokemonResponse struct {
	ID      int               `json:"id"`
	Name    string            `json:"name"`
	Height  int               `json:"height"`
	Weight  int               `json:"weight"`
	Types   []pokemonTypeSlot `json:"types"`
	Stats   []pokemonStat     `json:"stats"`
	Sprites pokemonSprites    `json:"sprites"`
}
