package models

type Config struct {
	FancyScreen bool           `json:"fancy_screen"`
	LogLevel    string         `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error fatal"`
	HTTP        HTTPConfig     `json:"http"`
	Explorer    ExplorerConfig `json:"explorer"`
}

type HTTPConfig struct {
	Port          int    `json:"port" validate:"required,min=1,max=65535"`
	ListeningAddr string `json:"listening_addr" validate:"required"`
}

type ExplorerConfig struct {
	Profile        string `json:"profile" validate:"required,oneof=classic shiny compact"`
	CatalogLimit   int    `json:"catalog_limit" validate:"min=0,max=2000"`
	BaseURL        string `json:"base_url" validate:"omitempty,url"`
	TimeoutSeconds int    `json:"timeout_seconds" validate:"min=0,max=300"`
}

// ResolvedProfile returns the configured profile with the catalog limit
// override applied.
func (c ExplorerConfig) ResolvedProfile() Profile {
	p, ok := LookupProfile(c.Profile)
	if !ok {
		p = Profiles[DefaultProfile]
	}
	if c.CatalogLimit > 0 {
		p.CatalogLimit = c.CatalogLimit
	}
	return p
}
