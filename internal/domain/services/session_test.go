package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/ersonp/pairgen/internal/domain/entities"
	"github.com/ersonp/pairgen/internal/domain/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestSession(mode entities.Mode) *Session {
	categories := entities.DefaultCategories()
	tagCount := 0
	if mode == entities.ModeScored {
		tagCount = 2
	}
	strategy, err := StrategyFor(mode, categories, tagCount)
	if err != nil {
		panic(err)
	}

	roster := NewRosterService(RosterOptions{Mode: mode, Categories: categories, TagCount: tagCount})
	return NewSession(roster, NewPairingEngine(&mocks.Random{}), strategy, zap.NewNop())
}

func TestSession_StartsEmpty(t *testing.T) {
	session := newTestSession(entities.ModeUnconstrained)

	view := session.View()
	assert.Equal(t, StateEmpty, view.State)
	assert.Empty(t, view.Roster)
	assert.Nil(t, view.Result)
	assert.Equal(t, 0, view.Counts.Total)
}

func TestSession_GenerateBeforeUpload(t *testing.T) {
	session := newTestSession(entities.ModeUnconstrained)

	result, err := session.Generate()
	assert.ErrorIs(t, err, ErrNoRoster)
	assert.Nil(t, result)
	assert.Equal(t, StateEmpty, session.State())
}

func TestSession_Lifecycle(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = time.Now })

	session := newTestSession(entities.ModeSimple)

	loaded := session.Upload(rowsOf(
		[]string{"Alice", "female"},
		[]string{"Bob", "male"},
		[]string{"Eve", "nonbinary"},
		[]string{"Dan", "Male"},
	))
	assert.Len(t, loaded.Entities, 3)
	assert.Len(t, loaded.Skipped, 1)

	view := session.View()
	assert.Equal(t, StateLoaded, view.State)
	assert.Nil(t, view.Result)
	assert.Equal(t, Counts{
		Total:      3,
		ByCategory: map[entities.Category]int{entities.CategoryMale: 2, entities.CategoryFemale: 1},
	}, view.Counts)

	result, err := session.Generate()
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Pairs, 1)
	assert.Len(t, result.Unmatched, 1)

	view = session.View()
	assert.Equal(t, StatePaired, view.State)
	assert.Same(t, result, view.Result)
	assert.NotEmpty(t, view.RunID)
	assert.Equal(t, fixed, view.GeneratedAt)
	firstRun := view.RunID

	// Regenerating stays in Paired with a fresh result.
	again, err := session.Generate()
	require.NoError(t, err)
	assert.NotSame(t, result, again)
	assert.Equal(t, StatePaired, session.State())
	assert.NotEqual(t, firstRun, session.View().RunID)

	// Re-upload replaces the roster and clears the result.
	session.Upload(rowsOf([]string{"Carol", "female"}))
	view = session.View()
	assert.Equal(t, StateLoaded, view.State)
	assert.Nil(t, view.Result)
	assert.Empty(t, view.RunID)
	assert.True(t, view.GeneratedAt.IsZero())
	assert.Equal(t, []string{"Carol"}, names(view.Roster))

	session.Reset()
	view = session.View()
	assert.Equal(t, StateEmpty, view.State)
	assert.Empty(t, view.Roster)
	assert.Nil(t, view.Result)
}

func TestSession_UploadWithNoValidRows(t *testing.T) {
	session := newTestSession(entities.ModeSimple)

	loaded := session.Upload(rowsOf([]string{"", "male"}, []string{"Eve", "nonbinary"}))
	assert.Empty(t, loaded.Entities)
	assert.Equal(t, StateLoaded, session.State())

	result, err := session.Generate()
	require.NoError(t, err)
	assert.Empty(t, result.Pairs)
	assert.Empty(t, result.Unmatched)
	assert.Equal(t, StatePaired, session.State())
}

func TestSession_ResetFromEveryState(t *testing.T) {
	session := newTestSession(entities.ModeUnconstrained)

	session.Reset()
	assert.Equal(t, StateEmpty, session.State())

	session.Upload(rowsOf([]string{"Alice"}))
	session.Reset()
	assert.Equal(t, StateEmpty, session.State())

	session.Upload(rowsOf([]string{"Alice"}, []string{"Bob"}))
	_, err := session.Generate()
	require.NoError(t, err)
	session.Reset()
	assert.Equal(t, StateEmpty, session.State())

	_, err = session.Generate()
	assert.ErrorIs(t, err, ErrNoRoster)
}

func TestSession_ViewCopiesRoster(t *testing.T) {
	session := newTestSession(entities.ModeUnconstrained)
	session.Upload(rowsOf([]string{"Alice"}, []string{"Bob"}))

	view := session.View()
	view.Roster[0] = nil

	assert.Equal(t, []string{"Alice", "Bob"}, names(session.View().Roster))
}

func TestSession_ScoredCounts(t *testing.T) {
	session := newTestSession(entities.ModeScored)
	session.Upload(rowsOf(
		[]string{"Alice", "female", "A", "X"},
		[]string{"Bob", "male", "B", "Y"},
		[]string{"Carol", "female", "B", "X"},
		[]string{"Dan", "male", "A", "Y"},
	))

	counts := session.View().Counts
	assert.Equal(t, 4, counts.Total)
	assert.Equal(t, 2, counts.ByCategory[entities.CategoryMale])
	assert.Equal(t, 2, counts.ByCategory[entities.CategoryFemale])

	result, err := session.Generate()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Bob": "Alice", "Dan": "Carol"}, partners(result))
}

func TestNewSession_NilLogger(t *testing.T) {
	session := NewSession(NewRosterService(RosterOptions{}), NewPairingEngine(nil), Unconstrained{}, nil)
	session.Upload(rowsOf([]string{"Alice"}))

	_, err := session.Generate()
	assert.NoError(t, err)
}
