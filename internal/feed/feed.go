// Package feed assembles paginated post feeds.
//
// Every feed in the application (home, group, profile, following) runs
// through the same fixed-size paginator. Page numbers are 1-based and
// out-of-range requests clamp to the nearest valid page instead of failing.
package feed

import (
	"inkwell/internal/models"
)

// PageSize is the fixed number of posts per feed page.
const PageSize = 10

// Window is the clamped database window for a requested page.
type Window struct {
	Number     int
	Offset     int
	Limit      int
	TotalPages int
}

// Page is one assembled feed page with pagination metadata.
type Page struct {
	Posts      []*models.Post `json:"posts"`
	Number     int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Total      int64          `json:"total"`
	HasNext    bool           `json:"has_next"`
	HasPrev    bool           `json:"has_prev"`
}

// TotalPages returns the number of pages needed for total items.
// An empty feed still has one (empty) page.
func TotalPages(total int64) int {
	if total <= 0 {
		return 1
	}
	return int((total + PageSize - 1) / PageSize)
}

// Clamp snaps a requested page number into [1, totalPages].
func Clamp(requested, totalPages int) int {
	if requested < 1 {
		return 1
	}
	if requested > totalPages {
		return totalPages
	}
	return requested
}

// WindowFor computes the clamped LIMIT/OFFSET window for a requested page.
func WindowFor(total int64, requested int) Window {
	totalPages := TotalPages(total)
	number := Clamp(requested, totalPages)
	return Window{
		Number:     number,
		Offset:     (number - 1) * PageSize,
		Limit:      PageSize,
		TotalPages: totalPages,
	}
}

// NewPage assembles a Page from the posts fetched for a window.
func NewPage(posts []*models.Post, total int64, w Window) *Page {
	if posts == nil {
		posts = []*models.Post{}
	}
	return &Page{
		Posts:      posts,
		Number:     w.Number,
		TotalPages: w.TotalPages,
		Total:      total,
		HasNext:    w.Number < w.TotalPages,
		HasPrev:    w.Number > 1,
	}
}
