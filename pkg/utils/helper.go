package utils

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseID parses a positive path id.
func ParseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// ParseFloat returns false for empty, malformed or non-finite input.
func ParseFloat(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// BaseURL returns scheme://host of the incoming request.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.SplitN(proto, ",", 2)[0])
	}
	return scheme + "://" + r.Host
}
