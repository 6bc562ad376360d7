package catalog

// PagedResult is one page of a filtered listing together with pagination
// metadata computed from the unpaginated total.
type PagedResult[T any] struct {
	Items           []T  `json:"items"`
	Total           int  `json:"total"`
	Page            int  `json:"page"`
	PageSize        int  `json:"page_size"`
	PageCount       int  `json:"page_count"`
	HasPreviousPage bool `json:"has_previous_page"`
	HasNextPage     bool `json:"has_next_page"`
}

// NewPagedResult assembles a page and its metadata. PageCount is
// ceil(total/pageSize), zero when the filter matched nothing.
func NewPagedResult[T any](items []T, total, page, pageSize int) PagedResult[T] {
	pageCount := 0
	if total > 0 && pageSize > 0 {
		pageCount = (total + pageSize - 1) / pageSize
	}
	return PagedResult[T]{
		Items:           items,
		Total:           total,
		Page:            page,
		PageSize:        pageSize,
		PageCount:       pageCount,
		HasPreviousPage: page > 1,
		HasNextPage:     page < pageCount,
	}
}
