package domain

// SuggestionList is a named, ordered list of candidate strings
type SuggestionList struct {
	Name  string
	Items []string
}

// Selection records a committed suggestion
type Selection struct {
	Value string
	List  string // name of the list the value came from
}
