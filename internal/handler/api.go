package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/liftlog/internal/logging"
	"github.com/liftlog/internal/service"
	"go.uber.org/zap"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	store  *service.Store
	logger *zap.Logger
}

// NewAPI constructs a handler set over an explicitly built store.
func NewAPI(store *service.Store, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{store: store, logger: logger}
}

// handleServiceError 将 service 层错误翻译为 HTTP 响应
func (a *API) handleServiceError(c *gin.Context, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound):
		respondError(c, http.StatusNotFound, "workout not found")
	case errors.As(err, &verr):
		respondFieldError(c, verr.Field, verr.Message)
	case errors.Is(err, service.ErrInvalidFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid import format", "detail": err.Error()})
	default:
		_ = c.Error(err)
		a.logger.Error(fallback, zap.Error(err), zap.String("request_id", logging.RequestID(c)))
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
