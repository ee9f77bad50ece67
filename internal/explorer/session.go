package explorer

import (
	"context"
	"errors"
	"sync"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/apex/log"
)

// Fetcher is the read-only view of the upstream API the explorer needs.
type Fetcher interface {
	ListPokemon(ctx context.Context, limit int) ([]models.CatalogEntry, error)
	GetPokemon(ctx context.Context, id string) (*models.PokemonDetail, error)
}

// Listener is notified with the new state after every change. It runs on the
// goroutine that caused the change and must not block.
type Listener func(State)

// Session owns the state of one interactive explorer. All writes go through
// the reducers in state.go.
type Session struct {
	fetcher Fetcher
	profile models.Profile
	logger  log.Interface

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.Mutex
	state        State
	listeners    []Listener
	cancelDetail context.CancelFunc
}

func NewSession(ctx context.Context, fetcher Fetcher, profile models.Profile) *Session {
	ctx, cancel := context.WithCancel(ctx)
	return &Session{
		fetcher: fetcher,
		profile: profile,
		logger:  log.FromContext(ctx),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (s *Session) Profile() models.Profile {
	return s.profile
}

func (s *Session) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Catalog() []models.CatalogEntry {
	return s.State().Catalog
}

// LoadCatalog fetches the catalog page in the background. Failures are logged
// and leave the catalog empty.
func (s *Session) LoadCatalog() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		logger := s.logger.WithField("limit", s.profile.CatalogLimit)
		entries, err := s.fetcher.ListPokemon(s.ctx, s.profile.CatalogLimit)
		if err != nil {
			logger.WithError(err).Error("failed to load pokemon list")
			return
		}
		logger.WithField("count", len(entries)).Info("pokemon list loaded")

		s.apply(func(st State) State {
			return ListLoaded(st, entries)
		})
	}()
}

func (s *Session) SetQuery(query string) {
	s.apply(func(st State) State {
		return QueryChanged(st, query)
	})
}

func (s *Session) ChooseSuggestion(name string) {
	s.apply(func(st State) State {
		return SuggestionChosen(st, name)
	})
}

func (s *Session) SelectOption(name string) {
	s.apply(func(st State) State {
		return SelectionChanged(st, name)
	})
}

func (s *Session) Search() {
	s.apply(SearchSubmitted)
}

// Wait blocks until every load started so far has finished.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close cancels in-flight loads and waits for them to return.
func (s *Session) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *Session) apply(reduce func(State) State) {
	s.mu.Lock()
	prev := s.state
	next := reduce(prev)

	if NeedsDetail(prev, next) {
		next = DetailRequested(next)
		s.startDetail(next.Token, next.Selected)
	}

	s.state = next
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

// startDetail must be called with s.mu held.
func (s *Session) startDetail(token uint64, id string) {
	if s.cancelDetail != nil {
		s.cancelDetail()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancelDetail = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		logger := s.logger.WithFields(log.Fields{"pokemon": id, "token": token})
		detail, err := s.fetcher.GetPokemon(ctx, id)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Debug("pokemon details request superseded")
				return
			}
			logger.WithError(err).Error("failed to fetch pokemon details")
			return
		}

		s.apply(func(st State) State {
			if st.Token != token {
				logger.WithField("latest", st.Token).Debug("discarding stale pokemon details")
			}
			return DetailLoaded(st, token, detail)
		})
	}()
}
