// Package middleware holds the Echo middleware of the API: request logging
// with metrics, and the Redis token-bucket rate limiter.
package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gym-management/internal/observability"
)

// RequestLogger logs one line per request and counts it by route pattern.
func RequestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			observability.RecordHTTPRequest(req.Method, route, strconv.Itoa(res.Status))

			level := slog.LevelInfo
			switch {
			case res.Status >= 500:
				level = slog.LevelError
			case res.Status >= 400:
				level = slog.LevelWarn
			}
			log.LogAttrs(req.Context(), level, "request",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.String("route", route),
				slog.Int("status", res.Status),
				slog.Duration("took", time.Since(start)),
				slog.String("ip", c.RealIP()),
			)
			return nil
		}
	}
}
