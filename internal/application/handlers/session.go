package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/ersonp/pairgen/internal/domain/entities"
	"github.com/ersonp/pairgen/internal/domain/services"
)

// SessionHandler exposes the session operations over roster files.
type SessionHandler struct {
	session *services.Session
	opts    FileOptions
	logger  *zap.Logger
}

// NewSessionHandler creates a new session handler. opts applies to every upload.
func NewSessionHandler(session *services.Session, opts FileOptions, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{
		session: session,
		opts:    opts,
		logger:  logger,
	}
}

// Upload parses the file and replaces the session roster. When the file
// cannot be read or parsed, the error is returned and the session keeps its
// prior roster, result and state.
func (h *SessionHandler) Upload(ctx context.Context, filePath string) (*services.RosterResult, error) {
	rows, err := readRows(ctx, filePath, h.opts)
	if err != nil {
		h.logger.Warn("Upload failed", zap.String("file", filePath), zap.Error(err))
		return nil, err
	}
	return h.session.Upload(rows), nil
}

// Generate pairs the current roster.
func (h *SessionHandler) Generate() (*entities.Result, error) {
	return h.session.Generate()
}

// Reset returns the session to Empty.
func (h *SessionHandler) Reset() {
	h.session.Reset()
}

// View returns the current session snapshot.
func (h *SessionHandler) View() services.View {
	return h.session.View()
}
