package explorer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeFetcher struct {
	mu      sync.Mutex
	catalog []models.CatalogEntry
	listErr error
	details map[string]*models.PokemonDetail
	gates   map[string]chan struct{}
	calls   []string
}

func (f *fakeFetcher) ListPokemon(_ context.Context, limit int) ([]models.CatalogEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.catalog) > limit {
		return f.catalog[:limit], nil
	}
	return f.catalog, nil
}

func (f *fakeFetcher) GetPokemon(ctx context.Context, id string) (*models.PokemonDetail, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	gate := f.gates[id]
	detail, ok := f.details[id]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if !ok {
		return nil, errors.New("unexpected status 404")
	}
	return detail, nil
}

func (f *fakeFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// cancelingFetcher blocks every detail request until its context ends.
type cancelingFetcher struct {
	fakeFetcher
	started chan string
}

func (f *cancelingFetcher) GetPokemon(ctx context.Context, id string) (*models.PokemonDetail, error) {
	if detail, ok := f.details[id]; ok {
		return detail, nil
	}
	f.started <- id
	<-ctx.Done()
	return nil, ctx.Err()
}

func newTestSession(t *testing.T, fetcher Fetcher, profile models.Profile) (*Session, *memory.Handler) {
	t.Helper()
	handler := memory.New()
	logger := &log.Logger{Handler: handler, Level: log.DebugLevel}
	ctx := log.NewContext(context.Background(), logger)

	s := NewSession(ctx, fetcher, profile)
	t.Cleanup(s.Close)
	return s, handler
}

func errorEntries(h *memory.Handler) []*log.Entry {
	var out []*log.Entry
	for _, e := range h.Entries {
		if e.Level == log.ErrorLevel {
			out = append(out, e)
		}
	}
	return out
}

func TestSessionLoadCatalog(t *testing.T) {
	fetcher := &fakeFetcher{catalog: entries("bulbasaur", "ivysaur", "venusaur")}
	profile := models.Profiles["classic"]
	profile.CatalogLimit = 2

	s, _ := newTestSession(t, fetcher, profile)

	var notified []State
	var mu sync.Mutex
	s.Subscribe(func(st State) {
		mu.Lock()
		notified = append(notified, st)
		mu.Unlock()
	})

	s.LoadCatalog()
	s.Wait()

	assert.Equal(t, []string{"bulbasaur", "ivysaur"}, names(s.Catalog()))
	mu.Lock()
	require.Len(t, notified, 1)
	mu.Unlock()
}

func TestSessionLoadCatalogFailure(t *testing.T) {
	fetcher := &fakeFetcher{listErr: errors.New("connection refused")}
	s, logs := newTestSession(t, fetcher, models.Profiles["classic"])

	s.LoadCatalog()
	s.Wait()

	assert.Empty(t, s.Catalog())
	errs := errorEntries(logs)
	require.Len(t, errs, 1)
	assert.Equal(t, "failed to load pokemon list", errs[0].Message)
}

func TestSessionChooseSuggestionLoadsDetail(t *testing.T) {
	fetcher := &fakeFetcher{
		catalog: entries("pikachu", "pidgey"),
		details: map[string]*models.PokemonDetail{"pikachu": pikachu()},
	}
	s, _ := newTestSession(t, fetcher, models.Profiles["classic"])
	s.LoadCatalog()
	s.Wait()

	s.SetQuery("pi")
	assert.Equal(t, []string{"pikachu", "pidgey"}, names(s.State().Suggestions))

	s.ChooseSuggestion("pikachu")
	st := s.State()
	assert.Equal(t, "pikachu", st.Query)
	assert.Equal(t, "pikachu", st.Selected)
	assert.Empty(t, st.Suggestions)

	s.Wait()
	require.NotNil(t, s.State().Detail)
	assert.Equal(t, 25, s.State().Detail.ID)

	// Re-selecting the same name does not refetch.
	s.SelectOption("pikachu")
	s.Wait()
	assert.Equal(t, []string{"pikachu"}, fetcher.Calls())
}

func TestSessionSearchLowercasesQuery(t *testing.T) {
	fetcher := &fakeFetcher{details: map[string]*models.PokemonDetail{"pikachu": pikachu()}}
	s, _ := newTestSession(t, fetcher, models.Profiles["classic"])

	s.SetQuery("PIKACHU")
	s.Search()
	s.Wait()

	assert.Equal(t, []string{"pikachu"}, fetcher.Calls())
	require.NotNil(t, s.State().Detail)
}

func TestSessionEmptySearchDoesNotFetch(t *testing.T) {
	fetcher := &fakeFetcher{}
	s, _ := newTestSession(t, fetcher, models.Profiles["classic"])

	s.Search()
	s.Wait()
	assert.Empty(t, fetcher.Calls())
}

func TestSessionFailedDetailKeepsPrevious(t *testing.T) {
	fetcher := &fakeFetcher{details: map[string]*models.PokemonDetail{"pikachu": pikachu()}}
	s, logs := newTestSession(t, fetcher, models.Profiles["classic"])

	s.SelectOption("pikachu")
	s.Wait()
	require.NotNil(t, s.State().Detail)

	s.SelectOption("missingno")
	s.Wait()

	st := s.State()
	assert.Equal(t, "missingno", st.Selected)
	require.NotNil(t, st.Detail)
	assert.Equal(t, "pikachu", st.Detail.Name)

	errs := errorEntries(logs)
	require.Len(t, errs, 1)
	assert.Equal(t, "failed to fetch pokemon details", errs[0].Message)
}

func TestSessionDiscardsStaleDetail(t *testing.T) {
	slow := make(chan struct{})
	pidgey := &models.PokemonDetail{ID: 16, Name: "pidgey"}
	fetcher := &fakeFetcher{
		details: map[string]*models.PokemonDetail{"pikachu": pikachu(), "pidgey": pidgey},
		gates:   map[string]chan struct{}{"pikachu": slow},
	}
	s, _ := newTestSession(t, fetcher, models.Profiles["classic"])

	s.SelectOption("pikachu")
	s.SelectOption("pidgey")

	// pidgey resolves first; pikachu resolves last but was superseded.
	require.Eventually(t, func() bool {
		return s.State().Detail != nil
	}, testTimeout, testTick)
	close(slow)
	s.Wait()

	assert.Same(t, pidgey, s.State().Detail)
	assert.Equal(t, uint64(2), s.State().Token)
}

func TestSessionCancelsSupersededRequest(t *testing.T) {
	fetcher := &cancelingFetcher{
		fakeFetcher: fakeFetcher{details: map[string]*models.PokemonDetail{"pidgey": {ID: 16, Name: "pidgey"}}},
		started:     make(chan string, 1),
	}
	s, logs := newTestSession(t, fetcher, models.Profiles["classic"])

	s.SelectOption("pikachu")
	assert.Equal(t, "pikachu", <-fetcher.started)

	s.SelectOption("pidgey")
	s.Wait()

	assert.Equal(t, "pidgey", s.State().Detail.Name)
	assert.Empty(t, errorEntries(logs), "cancellation is not an error")
}
