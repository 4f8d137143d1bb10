package utils

import (
	"math"
	"net/http"
	"strconv"
)

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// CalculateOffset saturates at math.MaxInt instead of wrapping, so an
// absurd page lands past the last row rather than on a negative OFFSET.
func CalculateOffset(page, perPage int) int {
	if page < 1 || perPage < 1 {
		return 0
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

// PageSize falls back to def on missing or invalid input and caps at max.
func PageSize(value string, def, max int) int {
	size := ParseInt(value, def)
	if max > 0 && size > max {
		return max
	}
	return size
}

// PageURL rebuilds the request URL pointing at page, keeping every other
// query param. Page 1 drops the param entirely.
func PageURL(r *http.Request, page int) string {
	q := r.URL.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}

	u := BaseURL(r) + r.URL.Path
	if encoded := q.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}
