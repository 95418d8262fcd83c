package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ersonp/pairgen/internal/domain/entities"
	"github.com/ersonp/pairgen/internal/infrastructure/parsers"
)

// State is the session lifecycle: Empty -> Loaded -> Paired.
type State string

// Session states.
const (
	StateEmpty  State = "empty"
	StateLoaded State = "loaded"
	StatePaired State = "paired"
)

// ErrNoRoster is returned by Generate before any roster was uploaded.
var ErrNoRoster = errors.New("no roster loaded")

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Counts summarizes the current roster.
type Counts struct {
	Total      int
	ByCategory map[entities.Category]int
}

// View is a read-only snapshot of a session.
type View struct {
	State       State
	Roster      []*entities.Entity
	Result      *entities.Result // nil unless State is StatePaired
	RunID       string           // Identifies the latest generated result
	GeneratedAt time.Time
	Counts      Counts
}

// Session holds one roster and its latest pairing result. Operations run
// one at a time; a Session is not safe for concurrent use.
type Session struct {
	roster   *RosterService
	engine   *PairingEngine
	strategy Strategy
	logger   *zap.Logger

	state       State
	entities    []*entities.Entity
	result      *entities.Result
	runID       string
	generatedAt time.Time
}

// NewSession creates a new session in the Empty state.
func NewSession(roster *RosterService, engine *PairingEngine, strategy Strategy, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		roster:   roster,
		engine:   engine,
		strategy: strategy,
		logger:   logger,
		state:    StateEmpty,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Upload replaces the roster with the rows' valid entities and clears any
// prior result. It moves to Loaded from every state, even when no row was
// valid.
func (s *Session) Upload(rows []parsers.RawRow) *RosterResult {
	loaded := s.roster.Load(rows)

	for _, skip := range loaded.Skipped {
		s.logger.Debug("Skipping roster row",
			zap.Int("line", skip.Line),
			zap.String("reason", string(skip.Reason)),
			zap.String("value", skip.Value))
	}
	s.logger.Info("Roster loaded",
		zap.Int("entities", len(loaded.Entities)),
		zap.Int("skipped", len(loaded.Skipped)))

	s.entities = loaded.Entities
	s.clearResult()
	s.state = StateLoaded

	return loaded
}

// Generate pairs the current roster, replacing any prior result. It returns
// ErrNoRoster in the Empty state and leaves the state unchanged.
func (s *Session) Generate() (*entities.Result, error) {
	if s.state == StateEmpty {
		return nil, ErrNoRoster
	}

	s.result = s.engine.Generate(s.entities, s.strategy)
	s.runID = uuid.New().String()
	s.generatedAt = timeNow()
	s.state = StatePaired

	s.logger.Info("Pairs generated",
		zap.String("run_id", s.runID),
		zap.String("mode", string(s.result.Mode)),
		zap.Int("pairs", len(s.result.Pairs)),
		zap.Int("unmatched", len(s.result.Unmatched)))

	return s.result, nil
}

// Reset discards the roster and result and returns to Empty.
func (s *Session) Reset() {
	s.entities = nil
	s.clearResult()
	s.state = StateEmpty
	s.logger.Debug("Session reset")
}

// View returns a snapshot of the session. Slices are copied; entities are
// shared with the session.
func (s *Session) View() View {
	roster := make([]*entities.Entity, len(s.entities))
	copy(roster, s.entities)

	return View{
		State:       s.state,
		Roster:      roster,
		Result:      s.result,
		RunID:       s.runID,
		GeneratedAt: s.generatedAt,
		Counts:      CountRoster(s.entities),
	}
}

func (s *Session) clearResult() {
	s.result = nil
	s.runID = ""
	s.generatedAt = time.Time{}
}

// CountRoster tallies the roster in total and per non-empty category.
func CountRoster(roster []*entities.Entity) Counts {
	counts := Counts{Total: len(roster), ByCategory: make(map[entities.Category]int)}
	for _, e := range roster {
		if e.Category != "" {
			counts.ByCategory[e.Category]++
		}
	}
	return counts
}
