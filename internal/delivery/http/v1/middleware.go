package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	requestIDHeader = "X-Request-ID"
	loggerCtxKey    = "logger"
)

func (h *handlerImpl) HandleRequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			h.logger.Error().
				Err(err).
				Msg("failed to generate request id")
			id = uuid.New()
		}
		requestID = id.String()
	}

	c.Header(requestIDHeader, requestID)
	c.Set(loggerCtxKey, h.logger.With().
		Str("request_id", requestID).
		Logger())
	c.Next()
}

// requestLogger returns the logger bound to the current request,
// falling back to the handler logger outside the middleware.
func (h *handlerImpl) requestLogger(c *gin.Context) *zerolog.Logger {
	if value, exists := c.Get(loggerCtxKey); exists {
		if logger, ok := value.(zerolog.Logger); ok {
			return &logger
		}
	}
	return &h.logger
}
