// Package pagination resolves page-number/page-size requests into bounded
// slices and writes the total row count header on list responses.
package pagination

import (
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultPage is the page used when none, or a non-positive one, is given.
	DefaultPage = 1
	// DefaultPageSize is the page size used when none is given.
	DefaultPageSize = 10
	// MaxPageSize caps the page size a client can request.
	MaxPageSize = 50

	// PageParam and PageSizeParam are the query-string keys.
	PageParam     = "pagina"
	PageSizeParam = "recordPorPagina"

	// TotalCountHeader carries the unpaged row count on list responses.
	TotalCountHeader = "cantidadTotalRegistros"
)

// Request is a normalized page request. Build it with New or ParseRequest
// so the clamping rules always hold.
type Request struct {
	Page     int
	PageSize int
}

// New normalizes raw page and size values.
func New(page, pageSize int) Request {
	if page <= 0 {
		page = DefaultPage
	}
	switch {
	case pageSize <= 0:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return Request{Page: page, PageSize: pageSize}
}

// Default returns the first page with the default size.
func Default() Request {
	return New(DefaultPage, DefaultPageSize)
}

// ParseRequest reads the pagination parameters from the request's query string.
func ParseRequest(r *http.Request) Request {
	return FromQuery(r.URL.Query())
}

// FromQuery reads the pagination parameters from a query string.
// Malformed integers are treated as absent.
func FromQuery(q url.Values) Request {
	return New(intParam(q, PageParam), intParam(q, PageSizeParam))
}

// Offset is the number of rows to skip.
func (p Request) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit is the number of rows to return.
func (p Request) Limit() int {
	return p.PageSize
}

// Slice returns the page of an already-sorted in-memory slice.
// Pages past the end yield an empty, non-nil slice.
func Slice[T any](items []T, req Request) []T {
	start := req.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + req.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// WriteTotalHeader sets the total count header. It must run before the
// status line is written.
func WriteTotalHeader(w http.ResponseWriter, total int) {
	w.Header().Set(TotalCountHeader, strconv.Itoa(total))
}

func intParam(q url.Values, key string) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return 0
	}
	return v
}
