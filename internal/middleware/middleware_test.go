package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/gym-management/internal/config"
)

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/7", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/users/:id")

	cfg := config.RateLimitConfig{Prefix: "gym:rl"}

	cfg.KeyStrategy = "ip"
	assert.Equal(t, "gym:rl:ip:10.0.0.1", buildRateKey(cfg, c))
	cfg.KeyStrategy = "route"
	assert.Equal(t, "gym:rl:route:GET /v1/users/:id", buildRateKey(cfg, c))
	cfg.KeyStrategy = "ip_route"
	assert.Equal(t, "gym:rl:ip:10.0.0.1:route:GET /v1/users/:id", buildRateKey(cfg, c))
}

func TestTokenBucketPassesThrough(t *testing.T) {
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	unreachable := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = unreachable.Close() })

	cases := map[string]echo.MiddlewareFunc{
		"disabled":    NewTokenBucket(config.RateLimitConfig{Enabled: false}, unreachable, log),
		"no client":   NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil, log),
		"redis error": NewTokenBucket(config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Second, TTL: time.Minute}, unreachable, log),
	}
	for name, mw := range cases {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/healthz", nil), rec)

			called := false
			err := mw(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})(c)
			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/v1/users/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/users/3", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "route=/v1/users/:id")
	assert.Contains(t, buf.String(), "status=404")
}
