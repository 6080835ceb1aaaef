package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"soroia/internal/artifact"
	"soroia/internal/catalog"
	"soroia/internal/chat"
	"soroia/internal/session"
	"soroia/pkg/response"
)

var (
	errIDRequired   = errors.New("session id is required")
	errPathRequired = errors.New("path is required")
)

// mapError writes the HTTP response for a domain or use-case error.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, catalog.ErrRecordNotFound),
		errors.Is(err, artifact.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, session.ErrSessionBusy):
		response.Conflict(c, err)
	case errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrArtifactNotInSession),
		errors.Is(err, catalog.ErrEmptyInventory),
		errors.Is(err, artifact.ErrInvalidPath):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "chat.http.mapError: unmapped error: %v", err)
		response.InternalError(c, err)
	}
}
