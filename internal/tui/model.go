package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/argsbar/internal/argsbar"
	"github.com/muurk/argsbar/internal/logging"
	"github.com/muurk/argsbar/internal/ui"
)

// pasteMsg carries clipboard contents back into Update. target is the
// field that was focused when ctrl+v was pressed.
type pasteMsg struct {
	target *argsbar.InputValue
	text   string
	err    error
}

// Result is what the user left the bar with.
type Result struct {
	Submitted bool              // Enter was pressed; false when cancelled
	Values    map[string]string // Field values with defaults applied
	Fields    []argsbar.Field   // The same values in bar order
	Missing   []string          // Required fields without a value
}

// Option configures a Model
type Option func(*Model)

// WithClipboard replaces the clipboard reader used by ctrl+v.
func WithClipboard(read func() (string, error)) Option {
	return func(m *Model) { m.readClipboard = read }
}

// WithDescriptions shows field descriptions under each field.
func WithDescriptions(show bool) Option {
	return func(m *Model) { m.showDescriptions = show }
}

// WithWidth fixes the render width until the first window size message.
func WithWidth(width int) Option {
	return func(m *Model) { m.Width = width }
}

// WithTitle sets the header title and source line.
func WithTitle(title, source string) Option {
	return func(m *Model) { m.title, m.source = title, source }
}

// Model routes key events into an argsbar.Bar.
type Model struct {
	bar *argsbar.Bar

	// UI state
	Width  int
	Height int

	title            string
	source           string
	showDescriptions bool
	readClipboard    func() (string, error)

	submitted bool
	done      bool
	lastError error

	Help help.Model
	Keys keyMap
}

// New creates a model over bar. The clipboard defaults to the system one.
func New(bar *argsbar.Bar, opts ...Option) Model {
	m := Model{
		bar:           bar,
		title:         "Arguments",
		readClipboard: clipboard.ReadAll,
		Help:          help.New(),
		Keys:          defaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case pasteMsg:
		if msg.err != nil {
			logging.Warn("Clipboard read failed", zap.Error(msg.err))
			m.lastError = msg.err
			return m, nil
		}
		m.lastError = nil
		pushString(msg.target, msg.text)
		return m, nil

	case tea.KeyMsg:
		if m.done {
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.done = true
		logging.Debug("Bar cancelled")
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Submit):
		m.done = true
		m.submitted = true
		logging.LogSubmit(m.bar.Values(), m.bar.MissingRequired())
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Next):
		m.bar.ToggleNext()

	case key.Matches(msg, m.Keys.Prev):
		m.bar.TogglePrev()

	case key.Matches(msg, m.Keys.Backspace):
		if in := m.bar.ActiveInput(); in != nil {
			in.PopChar()
		}

	case key.Matches(msg, m.Keys.Touch):
		if in := m.bar.ActiveInput(); in != nil {
			in.Touch()
		}

	case key.Matches(msg, m.Keys.ResetField):
		if in := m.bar.ActiveInput(); in != nil {
			in.Reset()
		}

	case key.Matches(msg, m.Keys.ResetAll):
		m.bar.Reset()

	case key.Matches(msg, m.Keys.Paste):
		target := m.bar.ActiveInput()
		if target == nil {
			return m, nil
		}
		read := m.readClipboard
		return m, func() tea.Msg {
			text, err := read()
			return pasteMsg{target: target, text: text, err: err}
		}

	case msg.Type == tea.KeySpace:
		pushString(m.bar.ActiveInput(), " ")

	case msg.Type == tea.KeyRunes && !msg.Alt:
		pushString(m.bar.ActiveInput(), string(msg.Runes))
	}

	return m, nil
}

// pushString feeds s into in one rune at a time. Line breaks in pasted
// text are dropped. A nil in ignores the text.
func pushString(in *argsbar.InputValue, s string) {
	if in == nil {
		return
	}
	for _, ch := range s {
		if ch == '\n' || ch == '\r' {
			continue
		}
		in.PushChar(ch)
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.done {
		return ""
	}

	width := m.Width
	if width <= 0 {
		width = ui.GetTerminalWidth()
	}

	var b strings.Builder
	header := ui.NewHeader(m.title, m.source, []ui.Detail{
		{Key: "Focus", Value: m.focusLabel()},
	}).SetWidth(width)
	b.WriteString(header.Render())
	b.WriteString("\n")
	b.WriteString(ui.RenderBar(m.bar, ui.RenderOptions{Width: width, ShowDescriptions: m.showDescriptions}))
	b.WriteString("\n")
	if m.lastError != nil {
		b.WriteString(ui.ErrorMessageStyle.Render("  Paste failed: " + m.lastError.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.Help.View(m.Keys))
	return b.String()
}

func (m Model) focusLabel() string {
	in := m.bar.ActiveInput()
	if in == nil {
		return "none"
	}
	return in.Param().Name()
}

// Bar returns the underlying bar
func (m Model) Bar() *argsbar.Bar {
	return m.bar
}

// Result reports how the user left the bar.
func (m Model) Result() Result {
	return Result{
		Submitted: m.submitted,
		Values:    m.bar.Values(),
		Fields:    m.bar.Fields(),
		Missing:   m.bar.MissingRequired(),
	}
}
