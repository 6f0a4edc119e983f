package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFilterSubstringMatching(t *testing.T) {
	tests := []struct {
		name    string
		items   []string
		query   string
		visible []string
	}{
		{
			name:    "substring match is case-insensitive",
			items:   []string{"Apple", "Banana", "Cherry"},
			query:   "an",
			visible: []string{"Banana"},
		},
		{
			name:    "matches anywhere, not just the prefix",
			items:   []string{"Apple", "Banana", "Cherry"},
			query:   "rry",
			visible: []string{"Cherry"},
		},
		{
			name:    "uppercase query matches lowercase item",
			items:   []string{"apple", "banana"},
			query:   "APP",
			visible: []string{"apple"},
		},
		{
			name:    "empty query matches everything",
			items:   []string{"Apple", "Banana"},
			query:   "",
			visible: []string{"Apple", "Banana"},
		},
		{
			name:    "no match leaves nothing visible",
			items:   []string{"Apple", "Banana"},
			query:   "xyz",
			visible: []string{},
		},
		{
			name:    "empty item list never has visible rows",
			items:   []string{},
			query:   "a",
			visible: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState(tt.items, 8)
			s.applyFilter(tt.query)

			got := make([]string, 0)
			for _, idx := range s.visibleIndices() {
				got = append(got, s.items[idx])
			}
			assert.Equal(t, tt.visible, got)
			assert.Equal(t, len(tt.visible) > 0, s.hasVisible())
		})
	}
}

func TestMoveDownWrapsToFirstVisible(t *testing.T) {
	s := newState([]string{"Apple", "Banana", "Cherry"}, 8)
	s.show()

	// No active item: down selects the first visible row
	require.True(t, s.moveDown())
	assert.Equal(t, 0, s.active)

	require.True(t, s.moveDown())
	assert.Equal(t, 1, s.active)

	require.True(t, s.moveDown())
	assert.Equal(t, 2, s.active)

	// From the last row, down wraps to the first
	require.True(t, s.moveDown())
	assert.Equal(t, 0, s.active)
}

func TestMoveUpWrapsToLastVisible(t *testing.T) {
	s := newState([]string{"Apple", "Banana", "Cherry"}, 8)
	s.show()

	// No active item: up selects the last visible row
	require.True(t, s.moveUp())
	assert.Equal(t, 2, s.active)

	require.True(t, s.moveUp())
	assert.Equal(t, 1, s.active)

	require.True(t, s.moveUp())
	assert.Equal(t, 0, s.active)

	// From the first row, up wraps to the last
	require.True(t, s.moveUp())
	assert.Equal(t, 2, s.active)
}

func TestDownThenUpIsNotAnInverse(t *testing.T) {
	// Down from nothing lands on the first visible row; up from there wraps
	// to the last, it never returns to "no highlight".
	s := newState([]string{"Apple", "Banana", "Cherry"}, 8)
	s.show()

	s.moveDown()
	require.Equal(t, 0, s.active)
	s.moveUp()
	assert.Equal(t, 2, s.active)
}

func TestNavigationSkipsFilteredRows(t *testing.T) {
	s := newState([]string{"Apple", "Avocado", "Banana", "Apricot"}, 8)
	s.show()
	s.applyFilter("ap")

	// Visible: Apple (0), Apricot (3)
	require.Equal(t, []int{0, 3}, s.visibleIndices())

	s.moveDown()
	assert.Equal(t, 0, s.active)
	s.moveDown()
	assert.Equal(t, 3, s.active)
	s.moveDown()
	assert.Equal(t, 0, s.active)
}

func TestNavigationWithNoVisibleRows(t *testing.T) {
	s := newState([]string{"Apple"}, 8)
	s.show()
	s.applyFilter("zzz")

	assert.False(t, s.moveDown())
	assert.False(t, s.moveUp())
	assert.Equal(t, -1, s.active)
	assert.False(t, s.shownWithItems())
}

func TestShownWithItemsGating(t *testing.T) {
	s := newState([]string{"Apple"}, 8)

	// Closed panel never counts as shown, matches or not
	assert.False(t, s.shownWithItems())

	s.show()
	assert.True(t, s.shownWithItems())

	s.applyFilter("nothing")
	assert.False(t, s.shownWithItems())
}

func TestHideDropsHighlight(t *testing.T) {
	s := newState([]string{"Apple", "Banana"}, 8)
	s.show()
	s.moveDown()
	require.Equal(t, 0, s.active)

	s.hide()
	assert.False(t, s.open)
	assert.Equal(t, -1, s.active)
}

func TestExactMatchScansFullCollection(t *testing.T) {
	s := newState([]string{"Red", "Green"}, 8)

	// Filter Red out; the exact-match scan still finds it
	s.applyFilter("green")
	require.Equal(t, []int{1}, s.visibleIndices())

	assert.True(t, s.exactMatch("Red"))
	assert.True(t, s.exactMatch("red"))
	assert.True(t, s.exactMatch("GREEN"))
	assert.False(t, s.exactMatch("Blue"))
	assert.False(t, s.exactMatch(""))
}

func TestViewportCentersActiveRowWhenScrolling(t *testing.T) {
	items := []string{"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9"}
	s := newState(items, 4)
	s.show()

	// Walk down into the second half of the list
	for i := 0; i < 8; i++ {
		s.moveDown()
	}
	require.Equal(t, 7, s.active)

	rows := s.viewportRows()
	require.Len(t, rows, 4)
	assert.Contains(t, rows, 7)

	// Scrolling recentered the viewport around the row when it last fell
	// outside, rather than pinning it to an edge
	assert.Equal(t, []int{4, 5, 6, 7}, rows)
}

func TestViewportDoesNotScrollWhileActiveRowFits(t *testing.T) {
	items := []string{"a0", "a1", "a2", "a3", "a4", "a5"}
	s := newState(items, 4)
	s.show()

	s.moveDown()
	s.moveDown()
	require.Equal(t, 1, s.active)

	assert.Equal(t, []int{0, 1, 2, 3}, s.viewportRows())
	assert.Equal(t, 0, s.offset)
}
