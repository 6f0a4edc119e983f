package autocomplete

import (
	"strings"

	"github.com/samber/lo"
)

// state holds the filtering and navigation state for one widget instance.
// Visibility and highlight are plain typed fields; rendering projects them
// onto styles and never stores anything of its own.
type state struct {
	items   []string
	visible []bool // index-aligned with items
	active  int    // index into items of the highlighted row, -1 if none
	open    bool   // whether the suggestion panel is shown
	offset  int    // scroll offset into the visible sequence
	height  int    // rows the panel can show before scrolling
}

// newState generates the row state for a list of items. Every row starts
// visible, nothing is highlighted and the panel is closed.
func newState(items []string, height int) state {
	visible := make([]bool, len(items))
	for i := range visible {
		visible[i] = true
	}
	return state{
		items:   items,
		visible: visible,
		active:  -1,
		height:  height,
	}
}

// applyFilter recomputes per-row visibility against the typed text. A row is
// visible when its text contains the query, case-insensitively. Show/hide of
// the panel itself is the caller's concern.
func (s *state) applyFilter(query string) {
	q := strings.ToLower(query)
	for i, item := range s.items {
		s.visible[i] = strings.Contains(strings.ToLower(item), q)
	}
}

// hasVisible reports whether at least one row survived the current filter.
func (s *state) hasVisible() bool {
	return lo.Contains(s.visible, true)
}

// shownWithItems gates all keyboard navigation: the panel must be open and
// have at least one matching row.
func (s *state) shownWithItems() bool {
	return s.open && s.hasVisible()
}

// visibleIndices returns the live visible sequence in item order.
func (s *state) visibleIndices() []int {
	out := make([]int, 0, len(s.items))
	for i, v := range s.visible {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// exactMatch reports whether text equals any item in the full collection,
// case-insensitively. The scan deliberately covers rows that are currently
// filtered out.
func (s *state) exactMatch(text string) bool {
	return lo.SomeBy(s.items, func(item string) bool {
		return strings.EqualFold(item, text)
	})
}

// moveDown advances the highlight to the next visible row, wrapping to the
// first visible row when nothing is highlighted or the end is reached.
// Returns false when there is no visible row to land on.
func (s *state) moveDown() bool {
	vis := s.visibleIndices()
	if len(vis) == 0 {
		return false
	}
	next := vis[0]
	if s.active >= 0 {
		for _, idx := range vis {
			if idx > s.active {
				next = idx
				break
			}
		}
	}
	s.active = next
	s.ensureActiveVisible()
	return true
}

// moveUp is symmetric to moveDown: previous visible row, wrapping to the last.
func (s *state) moveUp() bool {
	vis := s.visibleIndices()
	if len(vis) == 0 {
		return false
	}
	prev := vis[len(vis)-1]
	if s.active >= 0 {
		for i := len(vis) - 1; i >= 0; i-- {
			if vis[i] < s.active {
				prev = vis[i]
				break
			}
		}
	}
	s.active = prev
	s.ensureActiveVisible()
	return true
}

// activeText returns the text of the highlighted row, or "" if none.
func (s *state) activeText() string {
	if s.active < 0 || s.active >= len(s.items) {
		return ""
	}
	return s.items[s.active]
}

// show opens the panel.
func (s *state) show() {
	s.open = true
}

// hide closes the panel and drops the highlight.
func (s *state) hide() {
	s.open = false
	s.active = -1
}

// ensureActiveVisible scrolls the panel so the highlighted row is on screen.
// The panel only moves when the row fell outside the viewport, and then it
// centers the row.
func (s *state) ensureActiveVisible() {
	if s.height <= 0 || s.active < 0 {
		return
	}
	vis := s.visibleIndices()
	pos := -1
	for i, idx := range vis {
		if idx == s.active {
			pos = i
			break
		}
	}
	if pos < 0 {
		return
	}
	if pos >= s.offset && pos < s.offset+s.height {
		return
	}
	s.offset = pos - s.height/2
	maxOffset := len(vis) - s.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// viewportRows returns the slice of the visible sequence that fits in the
// panel viewport at the current scroll offset.
func (s *state) viewportRows() []int {
	vis := s.visibleIndices()
	if s.height <= 0 || len(vis) <= s.height {
		return vis
	}
	offset := s.offset
	maxOffset := len(vis) - s.height
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return vis[offset : offset+s.height]
}
