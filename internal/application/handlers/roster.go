package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/ersonp/pairgen/internal/domain/services"
)

// RosterHandler loads a roster from a file.
type RosterHandler struct {
	service *services.RosterService
	logger  *zap.Logger
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(service *services.RosterService, logger *zap.Logger) *RosterHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterHandler{
		service: service,
		logger:  logger,
	}
}

// Handle parses the file and validates its rows into entities.
func (h *RosterHandler) Handle(ctx context.Context, filePath string, opts FileOptions) (*services.RosterResult, error) {
	rows, err := readRows(ctx, filePath, opts)
	if err != nil {
		return nil, err
	}

	result := h.service.Load(rows)
	logSkips(h.logger, result.Skipped)
	h.logger.Info("Roster loaded",
		zap.String("file", filePath),
		zap.Int("rows", len(rows)),
		zap.Int("entities", len(result.Entities)),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

func logSkips(logger *zap.Logger, skips []services.RowSkip) {
	for _, skip := range skips {
		logger.Debug("Skipping roster row",
			zap.Int("line", skip.Line),
			zap.String("reason", string(skip.Reason)),
			zap.String("value", skip.Value))
	}
}
