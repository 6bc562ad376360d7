package catalog

import "strings"

// SortField enumerates the columns a listing may be ordered by.
type SortField string

const (
	SortName      SortField = "name"
	SortPrice     SortField = "price"
	SortCreatedAt SortField = "createdAt"
)

// Direction is the listing sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

const (
	// DefaultPageSize is used when the caller supplies no page size.
	DefaultPageSize = 20
	// MaxPageSize caps the page size regardless of what the caller asked for.
	MaxPageSize = 100
)

// ListingQuery is the canonical set of listing parameters. Build one with
// NewListingQuery, or call Canonicalize on a hand-built value before use.
type ListingQuery struct {
	Keyword   string
	Page      int
	PageSize  int
	Sort      SortField
	Direction Direction
}

// NewListingQuery canonicalizes caller-supplied, possibly malformed listing
// parameters. It never fails: listings are best-effort, so unrecognized sort
// fields and directions fall back to defaults instead of erroring, the page
// is clamped to >= 1 and the page size into [1, MaxPageSize].
func NewListingQuery(keyword string, page, pageSize int, sort, direction string) ListingQuery {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize <= 0:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return ListingQuery{
		Keyword:   strings.TrimSpace(keyword),
		Page:      page,
		PageSize:  pageSize,
		Sort:      parseSortField(sort),
		Direction: parseDirection(direction),
	}
}

// Canonicalize re-applies the clamping and fallback rules, making any
// hand-built ListingQuery safe to execute and to derive cache keys from.
func (q ListingQuery) Canonicalize() ListingQuery {
	return NewListingQuery(q.Keyword, q.Page, q.PageSize, string(q.Sort), string(q.Direction))
}

// Offset returns the zero-based row offset for the store scan.
func (q ListingQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

func parseSortField(s string) SortField {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortName
	case "price":
		return SortPrice
	default:
		return SortCreatedAt
	}
}

func parseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Asc)) {
		return Asc
	}
	return Desc
}
