package api

import (
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"
	"golang.org/x/time/rate"
)

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg, "")
}

func writeError(c *echo.Context, status int, errType, msg, code string) error {
	return c.JSON(status, map[string]any{
		"error": APIError{
			Message: msg,
			Type:    errType,
			Code:    code,
		},
	})
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var v T
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return v, fmt.Errorf("invalid JSON body: %w", err)
	}
	return v, nil
}

// RateLimit rejects requests above the given sustained rate with 429.
func RateLimit(rps float64, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if !limiter.Allow() {
				return writeError(c, http.StatusTooManyRequests, "rate_limit_error", "too many requests", "")
			}
			return next(c)
		}
	}
}
