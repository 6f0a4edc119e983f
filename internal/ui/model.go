package ui

import (
	"fmt"
	"sort"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"typeahead/autocomplete"
	"typeahead/internal/config"
	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
	"typeahead/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *log.Logger

	width  int
	height int
	help   help.Model
	keys   KeyMap

	input  textinput.Model
	widget *autocomplete.Widget

	lists     []domain.SuggestionList // stable cycle order
	listIndex int

	lastPick *domain.Selection
	status   string
	detached bool

	renderer *views.Renderer

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, logger *log.Logger) *Model {
	lists := make([]domain.SuggestionList, 0, len(cfg.Lists))
	for name, items := range cfg.Lists {
		lists = append(lists, domain.SuggestionList{Name: name, Items: items})
	}
	sort.Slice(lists, func(i, j int) bool { return lists[i].Name < lists[j].Name })

	listIndex := 0
	for i, list := range lists {
		if list.Name == cfg.Widget.DefaultList {
			listIndex = i
			break
		}
	}

	m := &Model{
		bus:       bus,
		config:    cfg,
		logger:    logger,
		help:      help.New(),
		keys:      DefaultKeyMap(),
		lists:     lists,
		listIndex: listIndex,
		renderer:  views.NewRenderer(),
	}

	m.input = textinput.New()
	m.input.Placeholder = "Type to search..."
	m.input.Prompt = "> "
	m.input.Focus()

	items := []string{}
	if len(lists) > 0 {
		items = lists[listIndex].Items
	}

	m.widget = autocomplete.New(&m.input, autocomplete.Options{
		ValueMatchItem: cfg.Widget.ValueMatchItem,
		Items:          items,
		MaxPanelRows:   cfg.Widget.MaxPanelRows,
		OnInit: func() {
			// New runs this before m.widget is assigned
			count := len(items)
			if m.widget != nil {
				count = len(m.widget.Items())
			}
			m.publish(eventbus.WidgetReadyEvent{ItemCount: count})
		},
		OnDestroy: func() {
			m.publish(eventbus.WidgetDestroyedEvent{})
		},
	}, nil)
	if logger != nil {
		m.widget.SetLogger(logger)
	}

	x, y := m.renderer.WidgetOrigin()
	m.widget.SetPosition(x, y)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// currentList returns the name of the active suggestion list
func (m *Model) currentList() string {
	if len(m.lists) == 0 {
		return ""
	}
	return m.lists[m.listIndex].Name
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		widgetWidth := msg.Width - 4 // main container padding
		if widgetWidth > 48 {
			widgetWidth = 48
		}
		if widgetWidth > 0 {
			m.widget.SetWidth(widgetWidth)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.CycleList):
			return m, m.cycleList()

		case key.Matches(msg, m.keys.Copy):
			text := m.input.Value()
			if text == "" {
				m.status = "Nothing to copy"
				return m, nil
			}
			if err := clipboard.WriteAll(text); err != nil {
				m.publish(eventbus.ErrorEvent{Message: "clipboard write failed", Err: err})
				m.status = fmt.Sprintf("Copy failed: %v", err)
				return m, nil
			}
			m.status = fmt.Sprintf("Copied %q", text)
			return m, nil

		case key.Matches(msg, m.keys.Detach):
			if !m.detached {
				m.widget.Destroy()
				m.detached = true
				m.status = "Widget detached"
			}
			return m, nil

		case key.Matches(msg, m.keys.Attach):
			if m.detached {
				m.widget.Init()
				m.detached = false
				m.status = "Widget re-attached"
			}
			return m, nil

		case key.Matches(msg, m.keys.Help):
			return m, m.fetchHelpPager()
		}

		return m, m.widget.Update(msg)

	case tea.MouseMsg:
		return m, m.widget.Update(msg)

	case autocomplete.SelectedMsg:
		m.lastPick = &domain.Selection{Value: msg.Value, List: m.currentList()}
		m.status = fmt.Sprintf("Picked %q", msg.Value)
		m.publish(eventbus.SuggestionChosenEvent{Value: msg.Value, List: m.currentList()})
		return m, nil

	case autocomplete.ShownMsg:
		m.publish(eventbus.PanelShownEvent{Query: m.input.Value()})
		return m, nil

	case autocomplete.HiddenMsg:
		m.publish(eventbus.PanelHiddenEvent{})
		return m, nil

	case autocomplete.ClearedMsg:
		m.status = fmt.Sprintf("%q matches no suggestion, input cleared", msg.Rejected)
		m.publish(eventbus.InputClearedEvent{Rejected: msg.Rejected})
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Help pager error: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		m.status = fmt.Sprintf("Error: %s", e.Message)
	case eventbus.ConfigSavedEvent:
		m.status = "Configuration saved"
	}
	return m, nil
}

// cycleList switches the widget to the next named suggestion list
func (m *Model) cycleList() tea.Cmd {
	if len(m.lists) < 2 || m.detached {
		return nil
	}
	m.listIndex = (m.listIndex + 1) % len(m.lists)
	list := m.lists[m.listIndex]
	m.widget.SetItems(list.Items)
	m.status = fmt.Sprintf("Switched to list %q (%d items)", list.Name, len(list.Items))
	m.publish(eventbus.ListChangedEvent{Name: list.Name, Count: len(list.Items)})
	return nil
}

// publish sends an event to the bus if one is wired up
func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager() tea.Cmd {
	return func() tea.Msg {
		err := m.showHelpInPager(helpContent())
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := m.config.UI.Title
	if title == "" {
		title = "typeahead"
	}

	selection := ""
	if m.lastPick != nil {
		selection = m.lastPick.Value
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         title,
		WidgetView:    m.widget.View(),
		ListName:      m.currentList(),
		ItemCount:     len(m.widget.Items()),
		Selection:     selection,
		StatusMessage: m.status,
		Detached:      m.detached,
		ShowStatusBar: m.config.UI.ShowStatusBar,
		HelpModel:     m.help,
		Keys:          m.keys,
	})
}
