package explorer

import (
	"testing"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestQueryChanged(t *testing.T) {
	s := ListLoaded(State{}, entries("pikachu", "pidgey"))

	s = QueryChanged(s, "pi")
	assert.Equal(t, []string{"pikachu", "pidgey"}, names(s.Suggestions))

	s = QueryChanged(s, "pika")
	assert.Equal(t, []string{"pikachu"}, names(s.Suggestions))

	s = QueryChanged(s, "")
	assert.Empty(t, s.Suggestions)
	assert.Empty(t, s.Selected, "typing never selects")
}

func TestListLoadedRefiltersQuery(t *testing.T) {
	s := QueryChanged(State{}, "pi")
	assert.Empty(t, s.Suggestions)

	s = ListLoaded(s, entries("pikachu", "bulbasaur"))
	assert.Equal(t, []string{"pikachu"}, names(s.Suggestions))
}

func TestSuggestionChosen(t *testing.T) {
	s := QueryChanged(ListLoaded(State{}, entries("pikachu", "pidgey")), "pi")
	got := SuggestionChosen(s, "pidgey")

	want := s
	want.Query = "pidgey"
	want.Selected = "pidgey"
	want.Suggestions = nil

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SuggestionChosen mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "pi", s.Query, "previous state untouched")
}

func TestSearchSubmitted(t *testing.T) {
	s := QueryChanged(State{}, "  PikaChu ")
	s = SearchSubmitted(s)
	assert.Equal(t, "pikachu", s.Selected)
	assert.Equal(t, "  PikaChu ", s.Query)
}

func TestNeedsDetail(t *testing.T) {
	base := State{Selected: "pikachu"}

	assert.False(t, NeedsDetail(base, base), "same selection")
	assert.False(t, NeedsDetail(base, SelectionChanged(base, "")), "cleared selection")
	assert.True(t, NeedsDetail(base, SelectionChanged(base, "25")))
	assert.True(t, NeedsDetail(State{}, base))
}

func TestDetailLoaded(t *testing.T) {
	first := &models.PokemonDetail{ID: 25, Name: "pikachu"}
	second := &models.PokemonDetail{ID: 16, Name: "pidgey"}

	s := DetailRequested(State{})
	oldToken := s.Token
	s = DetailLoaded(s, oldToken, first)
	assert.Same(t, first, s.Detail)

	s = DetailRequested(s)
	s = DetailLoaded(s, oldToken, second)
	assert.Same(t, first, s.Detail, "stale token is ignored")

	s = DetailLoaded(s, s.Token, nil)
	assert.Same(t, first, s.Detail, "nil never clears")

	s = DetailLoaded(s, s.Token, second)
	assert.Same(t, second, s.Detail)
}
