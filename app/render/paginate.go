package render

// Pagination describes the page window over a comment list. Start and End
// are half-open slice indices into the full list.
type Pagination struct {
	TotalPages int
	Current    int
	Start      int
	End        int
	HasPrev    bool
	HasNext    bool
}

// Paginate computes the page window for a list of totalCount entries.
// The total page count is ceiling division; the current page is clamped
// into range. Previous/Next are disabled at the respective boundary.
func Paginate(totalCount, pageSize, currentPage int) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (totalCount + pageSize - 1) / pageSize

	if currentPage < 1 {
		currentPage = 1
	}
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	start := (currentPage - 1) * pageSize
	if start > totalCount {
		start = totalCount
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}

	return Pagination{
		TotalPages: totalPages,
		Current:    currentPage,
		Start:      start,
		End:        end,
		HasPrev:    currentPage > 1,
		HasNext:    currentPage < totalPages,
	}
}
