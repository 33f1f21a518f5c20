package feed

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		want  int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 1},
		{11, 2},
		{13, 2},
		{20, 2},
		{21, 3},
		{100, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total), "total=%d", tt.total)
	}
}

func TestWindowFor_Clamping(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		requested  int
		wantNumber int
		wantOffset int
	}{
		{"absent page defaults to first", 25, 1, 1, 0},
		{"zero clamps to first", 25, 0, 1, 0},
		{"negative clamps to first", 25, -3, 1, 0},
		{"in range", 25, 2, 2, 10},
		{"last page", 25, 3, 3, 20},
		{"past the end clamps to last", 25, 99, 3, 20},
		{"empty feed has one page", 0, 5, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WindowFor(tt.total, tt.requested)
			assert.Equal(t, tt.wantNumber, w.Number)
			assert.Equal(t, tt.wantOffset, w.Offset)
			assert.Equal(t, PageSize, w.Limit)
		})
	}
}

func TestWindowFor_ThirteenPosts(t *testing.T) {
	// 13 posts split 10 + 3.
	w1 := WindowFor(13, 1)
	assert.Equal(t, 0, w1.Offset)
	assert.Equal(t, 2, w1.TotalPages)

	w2 := WindowFor(13, 2)
	assert.Equal(t, 10, w2.Offset)
	assert.Equal(t, 2, w2.TotalPages)
}

func TestNewPage_Metadata(t *testing.T) {
	posts := []*models.Post{{ID: 1}, {ID: 2}}

	t.Run("middle page", func(t *testing.T) {
		p := NewPage(posts, 25, WindowFor(25, 2))
		assert.Equal(t, 2, p.Number)
		assert.Equal(t, 3, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("first page", func(t *testing.T) {
		p := NewPage(posts, 25, WindowFor(25, 1))
		assert.True(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("last page", func(t *testing.T) {
		p := NewPage(posts, 25, WindowFor(25, 3))
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("single page", func(t *testing.T) {
		p := NewPage(nil, 0, WindowFor(0, 1))
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
		assert.NotNil(t, p.Posts)
		assert.Empty(t, p.Posts)
	})
}
