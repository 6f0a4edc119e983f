package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSuggestionChosen EventType = "SuggestionChosen"
	EventPanelShown       EventType = "PanelShown"
	EventPanelHidden      EventType = "PanelHidden"
	EventInputCleared     EventType = "InputCleared"
	EventListChanged      EventType = "ListChanged"
	EventWidgetReady      EventType = "WidgetReady"
	EventWidgetDestroyed  EventType = "WidgetDestroyed"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SuggestionChosenEvent is emitted when a suggestion is committed into the input,
// either with Enter or with a mouse click on a row
type SuggestionChosenEvent struct {
	Value string
	List  string // name of the active suggestion list
}

func (e SuggestionChosenEvent) Type() EventType { return EventSuggestionChosen }

// PanelShownEvent is emitted when the suggestion panel becomes visible
type PanelShownEvent struct {
	Query string
}

func (e PanelShownEvent) Type() EventType { return EventPanelShown }

// PanelHiddenEvent is emitted when the suggestion panel is dismissed
type PanelHiddenEvent struct{}

func (e PanelHiddenEvent) Type() EventType { return EventPanelHidden }

// InputCleared is emitted when the value-match rule wiped the input on hide
type InputClearedEvent struct {
	Rejected string // the text that matched no suggestion
}

func (e InputClearedEvent) Type() EventType { return EventInputCleared }

// ListChangedEvent is emitted when the suggestion list is wholesale replaced
type ListChangedEvent struct {
	Name  string
	Count int
}

func (e ListChangedEvent) Type() EventType { return EventListChanged }

// WidgetReadyEvent is emitted once the widget finished initializing
type WidgetReadyEvent struct {
	ItemCount int
}

func (e WidgetReadyEvent) Type() EventType { return EventWidgetReady }

// WidgetDestroyedEvent is emitted after the widget released its state
type WidgetDestroyedEvent struct{}

func (e WidgetDestroyedEvent) Type() EventType { return EventWidgetDestroyed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Lists map[string][]string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
