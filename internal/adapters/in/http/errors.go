package http

import (
	"errors"
	"log/slog"
	"net/http"

	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps the error taxonomy to HTTP status codes. fallback is used
// for errors outside the taxonomy.
func statusOf(err error, fallback int) int {
	switch {
	case errs.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, ports.ErrDeliveryDispatchFailed):
		return http.StatusBadGateway
	default:
		return fallback
	}
}

func (s *Server) writeError(ctx echo.Context, err error, fallback int) error {
	code := statusOf(err, fallback)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Path()),
			slog.Int("status", code),
			slog.Any("error", err),
		)
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
