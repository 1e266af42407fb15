package client

import "cosmicdevspace/app/models"

// SortOrder selects the comment ordering shown to the visitor.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// Param maps the sort order onto the API's sort query parameter.
func (s SortOrder) Param() string {
	if s == SortOldest {
		return "createdAt"
	}
	return "-createdAt"
}

const (
	// PageSize is the number of comments shown per page
	PageSize = 5

	// maxFetch caps how many comments one load pulls from the server
	maxFetch = 50
)

// PageState is the transient view state for one item's comment section.
// It is owned by the CommentSection and replaced wholesale on every
// reload; pagination slices it client-side without further requests.
type PageState struct {
	ItemID   string
	Page     int
	Sort     SortOrder
	Comments []*models.Comment
}

// TotalPages reports the page count via ceiling division
func (st *PageState) TotalPages() int {
	return (len(st.Comments) + PageSize - 1) / PageSize
}

// Window returns the slice of comments visible on the current page
func (st *PageState) Window() []*models.Comment {
	start := (st.Page - 1) * PageSize
	if start < 0 || start >= len(st.Comments) {
		return nil
	}
	end := start + PageSize
	if end > len(st.Comments) {
		end = len(st.Comments)
	}
	return st.Comments[start:end]
}
