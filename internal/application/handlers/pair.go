package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/ersonp/pairgen/internal/domain/entities"
	"github.com/ersonp/pairgen/internal/domain/services"
)

// PairHandler loads a roster file and pairs it in one pass.
type PairHandler struct {
	roster   *RosterHandler
	engine   *services.PairingEngine
	strategy services.Strategy
	logger   *zap.Logger
}

// NewPairHandler creates a new pair handler.
func NewPairHandler(roster *RosterHandler, engine *services.PairingEngine, strategy services.Strategy, logger *zap.Logger) *PairHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PairHandler{
		roster:   roster,
		engine:   engine,
		strategy: strategy,
		logger:   logger,
	}
}

// PairResult contains the loaded roster and its pairing.
type PairResult struct {
	Roster  []*entities.Entity
	Skipped []services.RowSkip
	Result  *entities.Result
}

// Handle loads the file and generates pairs.
func (h *PairHandler) Handle(ctx context.Context, filePath string, opts FileOptions) (*PairResult, error) {
	loaded, err := h.roster.Handle(ctx, filePath, opts)
	if err != nil {
		return nil, err
	}

	result := h.engine.Generate(loaded.Entities, h.strategy)
	h.logger.Info("Pairs generated",
		zap.String("mode", string(result.Mode)),
		zap.Int("pairs", len(result.Pairs)),
		zap.Int("unmatched", len(result.Unmatched)))

	return &PairResult{
		Roster:  loaded.Entities,
		Skipped: loaded.Skipped,
		Result:  result,
	}, nil
}
