package ratelimit

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Defaults shared by the public intake and login endpoints.
const (
	DefaultLimit  = 5
	DefaultWindow = 10 * time.Minute
)

// Limiter is a sliding-window rate limiter keyed by caller-built strings
// ("<endpoint>:<ip>"). Which implementation runs is decided once at startup:
// NewRedis when a store is configured, NewDisabled otherwise. The disabled
// implementation always allows, since the service prefers staying up over
// enforcing limits without its store.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type disabled struct{}

func NewDisabled() Limiter {
	return disabled{}
}

func (disabled) Allow(ctx context.Context, key string) (bool, error) {
	return true, nil
}

// ClientIP derives the rate-limit identity from proxy headers: first entry
// of X-Forwarded-For, then X-Real-Ip, else "unknown".
func ClientIP(h http.Header) string {
	if forwarded := h.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	if real := h.Get("X-Real-Ip"); real != "" {
		return real
	}
	return "unknown"
}
