package pokedex

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/explorer"
	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/lrstanley/chix"
	"golang.org/x/sync/singleflight"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").ParseFS(templateFS, "templates/index.html"))

// CatalogSource provides the catalog loaded at startup.
type CatalogSource interface {
	Catalog() []models.CatalogEntry
}

type Handler struct {
	catalog CatalogSource
	fetcher explorer.Fetcher
	profile models.Profile
	group   singleflight.Group
}

func NewHandler(catalog CatalogSource, fetcher explorer.Fetcher, profile models.Profile) *Handler {
	return &Handler{
		catalog: catalog,
		fetcher: fetcher,
		profile: profile,
	}
}

func (h *Handler) Route(r chi.Router) {
	r.Get("/catalog", h.list)
	r.Get("/suggestions", h.suggestions)
	r.Get("/pokemon/{id}", h.pokemon)
}

// Page renders the explorer. The query string carries the events the page
// can emit: q (typed text), pick (chosen suggestion), selected (dropdown)
// and search (search button). shown is the card currently on screen, kept
// when the new selection cannot be loaded.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	logger := log.FromContext(r.Context())

	st := explorer.ListLoaded(explorer.State{}, h.catalog.Catalog())
	st = explorer.QueryChanged(st, params.Get("q"))

	switch {
	case params.Get("pick") != "":
		st = explorer.SuggestionChosen(st, params.Get("pick"))
	case params.Get("search") != "":
		st = explorer.SearchSubmitted(st)
	case params.Get("selected") != "":
		st = explorer.SelectionChanged(st, params.Get("selected"))
	}

	if st.Selected != "" {
		st = explorer.DetailRequested(st)
		detail, err := h.lookup(r.Context(), st.Selected)
		if err != nil {
			logger.WithError(err).WithField("pokemon", st.Selected).Error("failed to fetch pokemon details")
			detail = h.previous(r.Context(), params.Get("shown"), st.Selected)
		}
		st = explorer.DetailLoaded(st, st.Token, detail)
	}

	data := pageData{
		Title:       "Pokemon Explorer",
		Query:       st.Query,
		Selected:    st.Selected,
		Suggestions: toCatalogEntries(st.Suggestions),
		Options:     toCatalogEntries(st.Catalog),
		Card:        explorer.NewCard(st.Detail, h.profile),
		Profile:     h.profile,
	}
	if data.Card != nil {
		data.Shown = data.Card.Slug
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		log.FromContext(r.Context()).WithError(err).Error("failed to render explorer page")
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	entries := toCatalogEntries(h.catalog.Catalog())
	chix.JSON(w, r, http.StatusOK, catalogResponse{
		Count:   len(entries),
		Results: entries,
	})
}

func (h *Handler) suggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	chix.JSON(w, r, http.StatusOK, suggestionsResponse{
		Query:   query,
		Results: toCatalogEntries(explorer.Filter(h.catalog.Catalog(), query)),
	})
}

func (h *Handler) pokemon(w http.ResponseWriter, r *http.Request) {
	id := normalizeID(chi.URLParam(r, "id"))
	if id == "" {
		chix.JSON(w, r, http.StatusBadRequest, chix.M{"error": "missing pokemon name or id"})
		return
	}

	detail, err := h.lookup(r.Context(), id)
	if err != nil {
		log.FromContext(r.Context()).WithError(err).WithField("pokemon", id).Error("failed to fetch pokemon details")
		chix.JSON(w, r, http.StatusBadGateway, chix.M{"error": "failed to fetch pokemon"})
		return
	}

	chix.JSON(w, r, http.StatusOK, explorer.NewCard(detail, h.profile))
}

// previous reloads the card that was on screen before a failed selection.
func (h *Handler) previous(ctx context.Context, shown, failed string) *models.PokemonDetail {
	shown = normalizeID(shown)
	if shown == "" || shown == normalizeID(failed) {
		return nil
	}
	detail, err := h.lookup(ctx, shown)
	if err != nil {
		log.FromContext(ctx).WithError(err).WithField("pokemon", shown).Warn("failed to reload previous pokemon")
		return nil
	}
	return detail
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// lookup collapses concurrent fetches of the same identifier into one
// upstream request.
func (h *Handler) lookup(ctx context.Context, id string) (*models.PokemonDetail, error) {
	id = normalizeID(id)
	if id == "" {
		return nil, errors.New("missing pokemon name or id")
	}
	return h.wait(ctx, h.join(ctx, id))
}

// join starts or joins the shared fetch for id. The fetch is shared by every
// joined caller, so it runs detached from ctx's cancellation and is bounded
// by the client timeout instead.
func (h *Handler) join(ctx context.Context, id string) <-chan singleflight.Result {
	return h.group.DoChan(id, func() (any, error) {
		return h.fetcher.GetPokemon(context.WithoutCancel(ctx), id)
	})
}

func (h *Handler) wait(ctx context.Context, ch <-chan singleflight.Result) (*models.PokemonDetail, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.PokemonDetail), nil
	}
}
