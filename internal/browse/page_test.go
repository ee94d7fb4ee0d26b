package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateWindowInvariant(t *testing.T) {
	for _, tc := range []struct {
		total, pageSize, totalPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{47, 10, 5},
		{47, 7, 7},
	} {
		records := staff(tc.total)
		seen := 0
		pages := tc.totalPages
		if pages == 0 {
			pages = 1
		}
		for page := 1; page <= pages; page++ {
			pg := Paginate(records, page, tc.pageSize)
			assert.Equal(t, tc.total, pg.Window.Total)
			assert.Equal(t, tc.totalPages, pg.Window.TotalPages)
			seen += len(pg.Data)
		}
		assert.Equal(t, tc.total, seen, "pages must cover the collection exactly (total=%d size=%d)", tc.total, tc.pageSize)
	}
}

func TestPaginateOutOfRangePage(t *testing.T) {
	records := staff(12)

	pg := Paginate(records, 9, 10)
	assert.Empty(t, pg.Data)
	assert.Equal(t, 12, pg.Window.Total)
	assert.Equal(t, 2, pg.Window.TotalPages)
	assert.Equal(t, 9, pg.Window.Page)
}

func TestPaginateEmptyCollection(t *testing.T) {
	pg := Paginate([]employee{}, 1, 10)
	assert.Empty(t, pg.Data)
	assert.Equal(t, 0, pg.Window.Total)
	assert.Equal(t, 0, pg.Window.TotalPages)
	assert.Equal(t, 1, pg.Window.Page)
}

func TestPaginateSlicesInOrder(t *testing.T) {
	records := staff(25)

	second := Paginate(records, 2, 10)
	require.Len(t, second.Data, 10)
	assert.Equal(t, "e11", second.Data[0].ID)
	assert.Equal(t, "e20", second.Data[9].ID)

	last := Paginate(records, 3, 10)
	require.Len(t, last.Data, 5)
	assert.Equal(t, "e25", last.Data[4].ID)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 50, 10))
	assert.Equal(t, 3, ClampPage(3, 50, 10))
	assert.Equal(t, 5, ClampPage(9, 50, 10))
	assert.Equal(t, 1, ClampPage(4, 0, 10))
}
