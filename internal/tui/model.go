package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/displayctl/display"
	"github.com/1broseidon/displayctl/x11"
)

// displayItem implements list.Item for the display picker.
type displayItem struct {
	d display.Display
}

func (i displayItem) Title() string {
	prefix := "  "
	if i.d.Primary {
		prefix = "* "
	}
	return fmt.Sprintf("%s%d: %s", prefix, i.d.ID, i.d.Name)
}

func (i displayItem) Description() string {
	if !i.d.Active {
		if i.d.Connected {
			return "  connected, not active"
		}
		return "  disconnected"
	}
	s := i.d.Settings
	return fmt.Sprintf("  %s at %s, %d Hz", s.Resolution, s.Position, s.Frequency)
}

func (i displayItem) FilterValue() string { return i.d.Name }

// statusMsg reports the outcome of an apply action.
type statusMsg struct {
	text string
}

// refreshedMsg carries a fresh display enumeration.
type refreshedMsg struct {
	displays []display.Display
	err      error
}

// model is the root bubbletea model for the TUI.
type model struct {
	list     list.Model
	displays []display.Display

	// Edit mode
	editing bool
	form    *huh.Form
	editID  int

	// Form-bound values (strings for huh, converted on submit)
	fPosition    string
	fResolution  string
	fOrientation string
	fFixedOutput string
	fFrequency   string

	statusText string

	width  int
	height int
}

func newModel() (model, error) {
	displays, err := queryDisplays()
	if err != nil {
		return model{}, err
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(displayItems(displays), delegate, 0, 0)
	l.Title = "Displays"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return model{list: l, displays: displays}, nil
}

func displayItems(displays []display.Display) []list.Item {
	items := make([]list.Item, 0, len(displays))
	for _, d := range displays {
		items = append(items, displayItem{d: d})
	}
	return items
}

// queryDisplays reads the current display set over a fresh connection.
func queryDisplays() ([]display.Display, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	set, err := conn.QueryDisplays()
	if err != nil {
		return nil, err
	}
	return set.Displays(), nil
}

// changeDisplays mirrors the CLI flow: fresh connection, query, stage, apply.
func changeDisplays(fn func(*x11.Set) error) error {
	conn, err := x11.NewConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	set, err := conn.QueryDisplays()
	if err != nil {
		return err
	}
	if err := fn(set); err != nil {
		return err
	}
	return set.Apply()
}

// applyCmd runs one staged change and reports the result as a statusMsg.
func applyCmd(okText string, fn func(*x11.Set) error) tea.Cmd {
	return func() tea.Msg {
		if err := changeDisplays(fn); err != nil {
			return statusMsg{text: err.Error()}
		}
		return statusMsg{text: okText}
	}
}

func refreshCmd() tea.Cmd {
	return func() tea.Msg {
		displays, err := queryDisplays()
		return refreshedMsg{displays: displays, err: err}
	}
}

func (m model) selected() (display.Display, bool) {
	if it, ok := m.list.SelectedItem().(displayItem); ok {
		return it.d, true
	}
	return display.Display{}, false
}

// contentHeight returns the height available for the list or form.
func (m model) contentHeight() int {
	// status bar (1) + help bar (1)
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateEditing(msg)
	}
	return m.updateBrowsing(msg)
}

func (m model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "enter", "e":
			d, ok := m.selected()
			if !ok {
				return m, nil
			}
			if !d.Active {
				m.statusText = fmt.Sprintf("%s is not active", d.Name)
				return m, nil
			}
			m.startEditing(d)
			return m, m.form.Init()

		case "p":
			d, ok := m.selected()
			if !ok {
				return m, nil
			}
			m.statusText = ""
			return m, applyCmd(fmt.Sprintf("%s is now the primary display", d.Name), func(set *x11.Set) error {
				return set.SetPrimary(d.ID)
			})

		case "r":
			m.statusText = ""
			return m, refreshCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, m.contentHeight())
		return m, nil

	case statusMsg:
		m.statusText = msg.text
		// Re-read so the list reflects what the server actually did.
		return m, refreshCmd()

	case refreshedMsg:
		if msg.err != nil {
			m.statusText = msg.err.Error()
			return m, nil
		}
		m.displays = msg.displays
		return m, m.list.SetItems(displayItems(msg.displays))
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.editing = false
			m.form = nil
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		applyCmd := m.applyForm()
		m.editing = false
		m.form = nil
		return m, applyCmd
	}

	return m, cmd
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var content string
	if m.editing {
		content = m.form.View()
	} else {
		content = m.list.View()
	}

	statusBar := statusStyle.Width(m.width).Render(m.statusText)
	helpBar := renderHelpBar(m.width, m.editing)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar, helpBar)
}

var statusStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("235")).
	Foreground(lipgloss.Color("250")).
	Padding(0, 1)

var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Padding(0, 1)

// renderHelpBar renders the bottom help/keybinding bar.
func renderHelpBar(width int, editing bool) string {
	help := "enter/e: edit  p: set primary  r: refresh  q/ctrl-c: quit"
	if editing {
		help = "enter: next field  esc: cancel  ctrl-c: quit"
	}
	return helpStyle.Width(width).Render(help)
}
