package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// requestID honours an incoming X-Request-Id or generates one, and carries
// it in the request logger.
func (s *Server) requestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			ctx := s.log.WithRequestID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			ctx := s.log.WithFields(c.Request().Context(), map[string]any{
				"method": c.Request().Method,
				"path":   c.Path(),
			})
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			s.log.Info(s.log.WithFields(ctx, map[string]any{
				"status":      c.Response().Status,
				"duration_ms": time.Since(start).Milliseconds(),
			}), "request.complete")
			return nil
		}
	}
}

func (s *Server) recoverer() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll:   true,
		DisablePrintStack: true,
	})
}
