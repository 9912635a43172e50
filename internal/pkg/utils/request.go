package utils

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ParseListQuery reads the free-text filter and 1-based pagination parameters
// used by the admin list endpoints. Out-of-range values are clamped, never rejected.
func ParseListQuery(r *http.Request) (q string, page, size int) {
	q = strings.TrimSpace(r.URL.Query().Get("q"))

	page = 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 1 {
		page = v
	}

	size = defaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v >= 1 {
		size = v
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return q, page, size
}
