package query

// DefaultPageSize is the fixed page size for every listing in the system.
const DefaultPageSize = 10

// PageWindow holds the computed pagination bounds for one listing request.
// An empty result set still presents one page of zero rows: TotalPages is
// never 0 and Page is never 0.
type PageWindow struct {
	Total      int
	Page       int
	TotalPages int
	Offset     int
	PageSize   int
}

// NewPageWindow clamps the requested page into [1, totalPages] and derives
// the fetch offset. total=0 yields page 1 of 1 with offset 0.
func NewPageWindow(total, requested, pageSize int) PageWindow {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return PageWindow{
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Offset:     (page - 1) * pageSize,
		PageSize:   pageSize,
	}
}

// Links returns a sliding window of up to 5 page numbers centered on the
// current page, clamped to [1, TotalPages]. Near an edge the window shifts
// toward the boundary instead of shrinking.
func (w PageWindow) Links() []int {
	start := w.Page - 2
	if start < 1 {
		start = 1
	}
	end := start + 4
	if end > w.TotalPages {
		end = w.TotalPages
	}
	if end-start < 4 {
		start = end - 4
		if start < 1 {
			start = 1
		}
	}

	links := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		links = append(links, i)
	}
	return links
}
