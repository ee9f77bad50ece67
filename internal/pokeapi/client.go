package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/apex/log"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	DefaultTimeout = 15 * time.Second
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

type Client struct {
	baseURL string
	client  *http.Client
	logger  log.Interface
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

func NewClient(logger log.Interface, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) getAndDecode(ctx context.Context, target string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: target, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", target, err)
	}
	return nil
}

// ListPokemon fetches a single catalog page of at most limit entries.
func (c *Client) ListPokemon(ctx context.Context, limit int) ([]models.CatalogEntry, error) {
	target := fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, limit)
	c.logger.WithField("limit", limit).Debug("fetching catalog")

	var result pokemonListResult
	if err := c.getAndDecode(ctx, target, &result); err != nil {
		return nil, fmt.Errorf("listing pokemon: %w", err)
	}

	entries := make([]models.CatalogEntry, 0, len(result.Results))
	for _, r := range result.Results {
		entries = append(entries, models.CatalogEntry{Name: r.Name, URL: r.URL})
	}
	return entries, nil
}

// GetPokemon fetches the detail record for a name or numeric id.
func (c *Client) GetPokemon(ctx context.Context, id string) (*models.PokemonDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("getting pokemon: empty identifier")
	}
	target := fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(id))
	c.logger.WithField("id", id).Debug("fetching pokemon")

	var resp pokemonResponse
	if err := c.getAndDecode(ctx, target, &resp); err != nil {
		return nil, fmt.Errorf("getting pokemon %q: %w", id, err)
	}
	return resp.toDetail(), nil
}

func (r *pokemonResponse) toDetail() *models.PokemonDetail {
	detail := &models.PokemonDetail{
		ID:      r.ID,
		Name:    r.Name,
		Height:  r.Height,
		Weight:  r.Weight,
		Types:   make([]models.PokemonType, 0, len(r.Types)),
		Stats:   make([]models.PokemonStat, 0, len(r.Stats)),
		Sprites: map[string]*string{},
	}

	for _, t := range r.Types {
		detail.Types = append(detail.Types, models.PokemonType{Name: t.Type.Name})
	}
	for _, s := range r.Stats {
		detail.Stats = append(detail.Stats, models.PokemonStat{Name: s.Stat.Name, BaseValue: s.BaseStat})
	}

	addSprites(detail.Sprites, "front", r.Sprites.spriteSet)
	for group, set := range r.Sprites.Other {
		addSprites(detail.Sprites, group, set)
	}
	return detail
}

func addSprites(dst map[string]*string, group string, set spriteSet) {
	dst[group+".default"] = set.FrontDefault
	dst[group+".shiny"] = set.FrontShiny
}

// IDFromURL extracts the trailing numeric id of a resource URL, if any.
func IDFromURL(resource string) (int, bool) {
	trimmed := strings.TrimSuffix(resource, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx == -1 {
		return 0, false
	}
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil {
		return 0, false
	}
	return id, true
}
