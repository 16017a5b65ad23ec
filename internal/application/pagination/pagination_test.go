package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name      string
		page      int
		pageSize  int
		wantItems []int
		wantPages int
		wantTotal int
	}{
		{"first page", 1, 2, []int{1, 2}, 3, 5},
		{"middle page", 2, 2, []int{3, 4}, 3, 5},
		{"last page remainder", 3, 2, []int{5}, 3, 5},
		{"page beyond range", 9, 2, []int{}, 3, 5},
		{"page size covers all", 1, 10, []int{1, 2, 3, 4, 5}, 1, 5},
		{"page below one clamps", 0, 2, []int{1, 2}, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(items, tt.page, tt.pageSize)
			assert.Equal(t, tt.wantItems, p.Items)
			assert.Equal(t, tt.wantTotal, p.Total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}

func TestNewEmptySnapshot(t *testing.T) {
	p := New([]string{}, 1, 2)
	assert.Empty(t, p.Items)
	assert.Zero(t, p.Total)
	assert.Zero(t, p.TotalPages)
}

func TestCyclicNavigation(t *testing.T) {
	// 三页时的环形移动
	assert.Equal(t, 2, Next(1, 3))
	assert.Equal(t, 1, Next(3, 3))
	assert.Equal(t, 3, Prev(1, 3))
	assert.Equal(t, 1, Prev(2, 3))

	// 单页保持原地
	assert.Equal(t, 1, Next(1, 1))
	assert.Equal(t, 1, Prev(1, 1))
}
