// Package pagination implements Django-REST-Framework-style pagination over
// in-memory lists. Two strategies are provided: page-number pagination
// (page/page_size query parameters) and limit/offset pagination (limit/offset
// query parameters). Both return the same response envelope with full next and
// previous page URLs rebuilt from the current request, or null when no such
// page exists.
package pagination

import (
	"net/http"
	"strconv"
)

// Response is the paginated response envelope
type Response struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []any   `json:"results"`
}

// IPaginator is the interface for all pagination strategies
type IPaginator interface {
	// Paginate slices items according to the request's query parameters and
	// returns the paginated response envelope
	Paginate(items []any, r *http.Request) Response
}

// WantsLimitOffset reports whether the request selects limit/offset pagination
func WantsLimitOffset(r *http.Request) bool {
	q := r.URL.Query()
	return q.Has("limit") || q.Has("offset")
}

// --------------------------------------------------------------------------
// Page-number pagination
// --------------------------------------------------------------------------

// PageNumberPaginator paginates by page number. The page size is read from the
// request, clamped to MaxPageSize; pages are 1-indexed.
type PageNumberPaginator struct {
	PageSize           int
	MaxPageSize        int
	PageQueryParam     string
	PageSizeQueryParam string
}

// NewPageNumberPaginator creates a page-number paginator with the given
// defaults. pageSize is used when the request carries no (or an invalid)
// page_size parameter; maxPageSize caps whatever the request asks for.
func NewPageNumberPaginator(pageSize, maxPageSize int) *PageNumberPaginator {
	return &PageNumberPaginator{
		PageSize:           pageSize,
		MaxPageSize:        maxPageSize,
		PageQueryParam:     "page",
		PageSizeQueryParam: "page_size",
	}
}

var _ IPaginator = (*PageNumberPaginator)(nil)

// --------------------------------------------------------------------------
// Interface Methods (docu see pagination.IPaginator)
// --------------------------------------------------------------------------

func (p *PageNumberPaginator) Paginate(items []any, r *http.Request) Response {
	pageSize := p.pageSize(r)
	page := p.pageNumber(r)
	count := len(items)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	resp := Response{
		Count:   count,
		Results: resultsSlice(items, start, end),
	}
	if page*pageSize < count {
		resp.Next = buildLink(r, map[string]string{
			p.PageQueryParam:     strconv.Itoa(page + 1),
			p.PageSizeQueryParam: strconv.Itoa(pageSize),
		})
	}
	if page > 1 {
		resp.Previous = buildLink(r, map[string]string{
			p.PageQueryParam: strconv.Itoa(page - 1),
		})
	}
	return resp
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// pageSize returns the requested page size clamped to MaxPageSize. Malformed
// or non-positive values fall back to the default.
func (p *PageNumberPaginator) pageSize(r *http.Request) int {
	size, err := strconv.Atoi(r.URL.Query().Get(p.PageSizeQueryParam))
	if err != nil || size <= 0 {
		return p.PageSize
	}
	return min(size, p.MaxPageSize)
}

// pageNumber returns the requested page number (1-indexed, minimum 1)
func (p *PageNumberPaginator) pageNumber(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get(p.PageQueryParam))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// --------------------------------------------------------------------------
// Limit/offset pagination
// --------------------------------------------------------------------------

// LimitOffsetPaginator paginates by an item limit and a start offset
type LimitOffsetPaginator struct {
	DefaultLimit     int
	MaxLimit         int
	LimitQueryParam  string
	OffsetQueryParam string
}

// NewLimitOffsetPaginator creates a limit/offset paginator with the given
// defaults
func NewLimitOffsetPaginator(defaultLimit, maxLimit int) *LimitOffsetPaginator {
	return &LimitOffsetPaginator{
		DefaultLimit:     defaultLimit,
		MaxLimit:         maxLimit,
		LimitQueryParam:  "limit",
		OffsetQueryParam: "offset",
	}
}

var _ IPaginator = (*LimitOffsetPaginator)(nil)

// --------------------------------------------------------------------------
// Interface Methods (docu see pagination.IPaginator)
// --------------------------------------------------------------------------

func (p *LimitOffsetPaginator) Paginate(items []any, r *http.Request) Response {
	limit := p.limit(r)
	offset := p.offset(r)
	count := len(items)

	start := min(offset, count)
	end := min(offset+limit, count)

	resp := Response{
		Count:   count,
		Results: resultsSlice(items, start, end),
	}
	if offset+limit < count {
		resp.Next = buildLink(r, map[string]string{
			p.LimitQueryParam:  strconv.Itoa(limit),
			p.OffsetQueryParam: strconv.Itoa(offset + limit),
		})
	}
	if offset > 0 {
		resp.Previous = buildLink(r, map[string]string{
			p.LimitQueryParam:  strconv.Itoa(limit),
			p.OffsetQueryParam: strconv.Itoa(max(0, offset-limit)),
		})
	}
	return resp
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// limit returns the requested limit clamped to MaxLimit. Malformed or
// non-positive values fall back to the default.
func (p *LimitOffsetPaginator) limit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get(p.LimitQueryParam))
	if err != nil || limit <= 0 {
		return p.DefaultLimit
	}
	return min(limit, p.MaxLimit)
}

// offset returns the requested offset (minimum 0)
func (p *LimitOffsetPaginator) offset(r *http.Request) int {
	offset, err := strconv.Atoi(r.URL.Query().Get(p.OffsetQueryParam))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// --------------------------------------------------------------------------
// Results construction
// --------------------------------------------------------------------------

// resultsSlice returns the [start, end) window of items. The result is never
// nil, so the envelope always encodes results as a JSON list even for a nil
// items slice.
func resultsSlice(items []any, start, end int) []any {
	results := items[start:end]
	if results == nil {
		return []any{}
	}
	return results
}

// --------------------------------------------------------------------------
// Link construction
// --------------------------------------------------------------------------

// buildLink rebuilds the full URL of the current request with the given query
// parameters replaced
func buildLink(r *http.Request, overrides map[string]string) *string {
	u := *r.URL
	q := u.Query()
	for key, value := range overrides {
		q.Set(key, value)
	}
	u.RawQuery = q.Encode()

	if u.Host == "" {
		u.Host = r.Host
	}
	if u.Scheme == "" {
		if r.TLS != nil {
			u.Scheme = "https"
		} else {
			u.Scheme = "http"
		}
	}

	link := u.String()
	return &link
}
