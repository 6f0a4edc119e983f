// Package autocomplete implements a typeahead widget for Bubble Tea programs:
// a caller-supplied text input plus a suggestion panel that filters a fixed
// list of strings as the user types, supports arrow-key navigation and
// commits the highlighted suggestion back into the input.
package autocomplete

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
)

// Phase is the lifecycle state of a widget instance.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseActive
	PhaseDestroyed
)

// String returns the phase name for diagnostics.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseDestroyed:
		return "destroyed"
	default:
		return "uninitialized"
	}
}

// Widget wires a suggestion panel around an existing text input. The input
// model is supplied by the caller and stays theirs; the widget only owns the
// state it generates around it. Destroy releases that state and hands the
// input back untouched.
type Widget struct {
	input  *textinput.Model
	opts   Options
	styles Styles
	logger *log.Logger

	phase Phase
	st    state

	// lastValue is the input text the filter was last computed against,
	// used to detect typing after the input model processed a key.
	lastValue string

	// Render geometry, recorded by View for mouse hit-testing.
	originX, originY int
	width            int
	lastInputHeight  int
	lastPanelHeight  int
	lastWidth        int
	lastRows         []int // item index per rendered panel row, top to bottom
}

// New creates a widget around the given input and initializes it immediately;
// there is no separate uninitialized state exposed. A nil styles pointer
// selects DefaultStyles.
func New(input *textinput.Model, opts Options, styles *Styles) *Widget {
	st := DefaultStyles()
	if styles != nil {
		st = *styles
	}
	w := &Widget{
		input:  input,
		opts:   applyDefaults(opts),
		styles: st,
		logger: log.Default(),
		width:  40,
	}
	w.Init()
	return w
}

// SetLogger redirects the widget's diagnostic output. The two guard
// conditions (double init, double destroy) are reported here and nowhere
// else; they never return an error.
func (w *Widget) SetLogger(logger *log.Logger) {
	if logger != nil {
		w.logger = logger
	}
}

// Init activates the widget: generates one row of state per item and invokes
// OnInit. Calling Init on an already-active widget is a no-op reported on the
// diagnostic channel.
func (w *Widget) Init() {
	if w.phase == PhaseActive {
		w.logger.Error("autocomplete: init called on an already initialized widget")
		return
	}
	w.st = newState(w.opts.Items, w.opts.MaxPanelRows)
	w.lastValue = w.input.Value()
	w.phase = PhaseActive
	if w.opts.OnInit != nil {
		w.opts.OnInit()
	}
}

// Destroy releases the generated state and invokes OnDestroy. The input model
// keeps its value and position; it was never owned by the widget. Calling
// Destroy on a widget that is not active is a no-op reported on the
// diagnostic channel.
func (w *Widget) Destroy() {
	if w.phase != PhaseActive {
		w.logger.Errorf("autocomplete: destroy called on %s widget", w.phase)
		return
	}
	w.st = state{}
	w.lastRows = nil
	w.phase = PhaseDestroyed
	if w.opts.OnDestroy != nil {
		w.opts.OnDestroy()
	}
}

// Phase returns the current lifecycle phase.
func (w *Widget) Phase() Phase {
	return w.phase
}

// Input returns the caller's input model.
func (w *Widget) Input() *textinput.Model {
	return w.input
}

// Items returns the current suggestion list.
func (w *Widget) Items() []string {
	return w.opts.Items
}

// PanelOpen reports whether the suggestion panel is shown.
func (w *Widget) PanelOpen() bool {
	return w.st.open
}

// ActiveIndex returns the item index of the highlighted row, -1 if none.
func (w *Widget) ActiveIndex() int {
	return w.st.active
}

// VisibleItems returns the items matching the current filter, in list order.
func (w *Widget) VisibleItems() []string {
	indices := w.st.visibleIndices()
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = w.st.items[idx]
	}
	return out
}

// SetWidth sets the render width of the widget content.
func (w *Widget) SetWidth(width int) {
	if width > 0 {
		w.width = width
	}
}

// SetPosition tells the widget where its top-left corner sits on screen, in
// cells. Mouse hit-testing is relative to this origin.
func (w *Widget) SetPosition(x, y int) {
	w.originX, w.originY = x, y
}

// SetItems wholesale-replaces the suggestion list and regenerates the row
// state from scratch. Filter and highlight state are lost; the panel closes.
// The caller re-derives visibility with the next keystroke or SetInput call.
func (w *Widget) SetItems(items []string) {
	if w.phase != PhaseActive {
		return
	}
	w.opts.Items = append([]string(nil), items...)
	w.st = newState(w.opts.Items, w.opts.MaxPanelRows)
	w.lastRows = nil
}

// SetInput sets the input text, re-runs the filter against it and hides the
// panel. Used by the Enter commit and row clicks, and available to hosts.
func (w *Widget) SetInput(text string) tea.Cmd {
	if w.phase != PhaseActive {
		return nil
	}
	w.input.SetValue(text)
	w.input.CursorEnd()
	w.lastValue = text
	w.handleInput(text)
	return w.hideItems()
}

// Update routes terminal events through the widget. Arrow keys and Enter are
// consumed while the panel is shown with at least one match; every other key
// goes to the input model and re-filters on text change. Mouse clicks either
// commit a row or, outside the widget bounds, dismiss the panel.
func (w *Widget) Update(msg tea.Msg) tea.Cmd {
	if w.phase != PhaseActive {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return w.handleKey(msg)
	case tea.MouseMsg:
		return w.handleMouse(msg)
	}
	return nil
}

// handleKey implements the keyboard state machine.
func (w *Widget) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "down":
		if w.st.shownWithItems() {
			w.st.moveDown()
			return nil
		}
	case "up":
		if w.st.shownWithItems() {
			w.st.moveUp()
			return nil
		}
	case "enter":
		if w.st.shownWithItems() {
			if w.st.active >= 0 {
				text := w.st.activeText()
				return tea.Batch(w.SetInput(text), selectedCmd(text))
			}
			// Shown without a highlight: swallow the key, commit nothing
			return nil
		}
	}

	// Everything else belongs to the input model
	updated, cmd := w.input.Update(msg)
	*w.input = updated
	if value := w.input.Value(); value != w.lastValue {
		w.lastValue = value
		return tea.Batch(cmd, w.handleInput(value))
	}
	return cmd
}

// handleInput recomputes the widget state for the current input text: empty
// text hides the panel, anything else shows it, and row visibility is
// recomputed either way.
func (w *Widget) handleInput(value string) tea.Cmd {
	var cmd tea.Cmd
	if value == "" {
		cmd = w.hideItems()
	} else {
		cmd = w.showItems()
	}
	w.st.applyFilter(value)
	return cmd
}

// showItems opens the panel.
func (w *Widget) showItems() tea.Cmd {
	if w.st.open {
		return nil
	}
	w.st.show()
	return shownCmd()
}

// hideItems closes the panel and clears the highlight. With ValueMatchItem
// set, the input is wiped unless its text exactly equals one of the items;
// the check runs over the full collection, not just the filtered rows.
func (w *Widget) hideItems() tea.Cmd {
	wasOpen := w.st.open
	w.st.hide()

	var cmds []tea.Cmd
	if wasOpen {
		cmds = append(cmds, hiddenCmd())
	}
	if w.opts.ValueMatchItem {
		if value := w.input.Value(); value != "" && !w.st.exactMatch(value) {
			w.input.SetValue("")
			w.lastValue = ""
			cmds = append(cmds, clearedCmd(value))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// handleMouse commits on a row click and dismisses on any click outside the
// widget bounds. Clicks on the input line are inside and ignored.
func (w *Widget) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	x := msg.X - w.originX
	y := msg.Y - w.originY
	inside := x >= 0 && x < w.lastWidth &&
		y >= 0 && y < w.lastInputHeight+w.lastPanelHeight

	if !inside {
		return w.hideItems()
	}

	// Map a click in the panel body to its rendered row
	if w.st.open && y >= w.lastInputHeight {
		frame := w.styles.panelStyle(true)
		rowY := y - w.lastInputHeight - frame.GetBorderTopSize() - frame.GetPaddingTop()
		if rowY >= 0 && rowY < len(w.lastRows) {
			item := w.st.items[w.lastRows[rowY]]
			return tea.Batch(w.SetInput(item), selectedCmd(item))
		}
	}
	return nil
}

// View renders the input line with the suggestion panel below it. Only rows
// matching the filter are rendered; the highlighted row is kept in the panel
// viewport by the navigation code.
func (w *Widget) View() string {
	if w.phase != PhaseActive {
		return w.input.View()
	}

	inputView := w.styles.Input.Render(w.input.View())
	w.lastInputHeight = lipgloss.Height(inputView)
	w.lastRows = nil

	sections := []string{inputView}
	if w.st.open {
		if panel := w.renderPanel(); panel != "" {
			sections = append(sections, panel)
		}
	}

	view := w.styles.Wrapper.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	w.lastWidth = lipgloss.Width(view)
	w.lastPanelHeight = lipgloss.Height(view) - w.lastInputHeight
	return view
}

// renderPanel projects the visible rows onto styled lines. An open panel with
// zero matching rows renders as nothing; the open flag itself is unaffected.
func (w *Widget) renderPanel() string {
	rows := w.st.viewportRows()
	if len(rows) == 0 {
		return ""
	}

	lines := make([]string, len(rows))
	for i, idx := range rows {
		style := w.styles.rowStyle(idx == w.st.active)
		text := runewidth.Truncate(w.st.items[idx], w.width, "…")
		lines[i] = style.Width(w.width).Render(text)
	}
	w.lastRows = rows

	return w.styles.panelStyle(true).Render(strings.Join(lines, "\n"))
}

func selectedCmd(value string) tea.Cmd {
	return func() tea.Msg { return SelectedMsg{Value: value} }
}

func shownCmd() tea.Cmd {
	return func() tea.Msg { return ShownMsg{} }
}

func hiddenCmd() tea.Cmd {
	return func() tea.Msg { return HiddenMsg{} }
}

func clearedCmd(rejected string) tea.Cmd {
	return func() tea.Msg { return ClearedMsg{Rejected: rejected} }
}
