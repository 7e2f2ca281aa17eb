package validators

import (
	"net/http"
	"strconv"
	"strings"
)

// QueryIntOr reads an integer query parameter, coercing missing or
// non-numeric values to the fallback.
func QueryIntOr(r *http.Request, key string, fallback int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// QueryStringOr reads a string query parameter with a fallback for the
// empty value.
func QueryStringOr(r *http.Request, key, fallback string) string {
	if raw := r.URL.Query().Get(key); raw != "" {
		return raw
	}
	return fallback
}
