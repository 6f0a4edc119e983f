package autocomplete

// SelectedMsg is emitted when a suggestion is committed into the input,
// either with Enter or with a mouse click on its row.
type SelectedMsg struct {
	Value string
}

// ShownMsg is emitted when the suggestion panel becomes visible.
type ShownMsg struct{}

// HiddenMsg is emitted when the suggestion panel is dismissed.
type HiddenMsg struct{}

// ClearedMsg is emitted when the value-match rule wiped the input on hide
// because the typed text matched no known suggestion.
type ClearedMsg struct {
	Rejected string
}
