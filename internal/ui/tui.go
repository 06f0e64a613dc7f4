package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ashleyclx/yapper/internal/parser"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

type tuiConfig struct {
	altScreen bool
	history   int
	output    io.Writer
	input     io.Reader
}

// WithAltScreen controls whether the TUI takes over the whole terminal.
func WithAltScreen(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.altScreen = enabled
	}
}

// WithHistory sets how many past exchanges the transcript keeps.
func WithHistory(n int) TUIOption {
	return func(c *tuiConfig) {
		if n > 0 {
			c.history = n
		}
	}
}

// WithIO sets the terminal streams. The default is stdin and stdout.
func WithIO(in io.Reader, out io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.input = in
		c.output = out
	}
}

// RunTUI starts the terminal UI on p. Ctrl+C and bye both save and quit;
// cancelling ctx also saves.
func RunTUI(ctx context.Context, p *parser.Parser, opts ...TUIOption) error {
	c := &tuiConfig{
		altScreen: true,
		history:   50,
		output:    os.Stdout,
		input:     os.Stdin,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(c.output) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(p, c.history)
	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(c.input),
		tea.WithOutput(c.output),
	}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(model, programOpts...).Run()
	if !model.exited {
		resp, _ := p.Parse(string(parser.CmdBye))
		fmt.Fprintln(c.output, resp.Text)
	} else {
		fmt.Fprintln(c.output, model.farewell)
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	inputStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

type exchange struct {
	input  string
	output string
	failed bool
}

type tuiModel struct {
	parser     *parser.Parser
	input      []rune
	transcript []exchange
	history    int
	height     int
	exited     bool
	farewell   string
}

func newTUIModel(p *parser.Parser, history int) *tuiModel {
	return &tuiModel{
		parser:     p,
		history:    history,
		transcript: []exchange{{output: Greeting}},
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.input = []rune(string(parser.CmdBye))
			return m, m.submit()
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeyCtrlU:
			m.input = nil
		case tea.KeySpace:
			m.input = append(m.input, ' ')
		case tea.KeyRunes:
			m.input = appendRunes(m.input, msg.Runes)
		}
	}
	return m, nil
}

// appendRunes adds typed or pasted runes to input. Each run of line breaks
// becomes one space so a paste stays a single command line.
func appendRunes(input, runes []rune) []rune {
	inBreak := false
	for _, r := range runes {
		if r == '\r' || r == '\n' {
			if !inBreak {
				input = append(input, ' ')
			}
			inBreak = true
			continue
		}
		inBreak = false
		input = append(input, r)
	}
	return input
}

// submit applies the input line and returns tea.Quit once bye has run.
func (m *tuiModel) submit() tea.Cmd {
	line := string(m.input)
	m.input = nil
	if strings.TrimSpace(line) == "" {
		return nil
	}

	resp, err := m.parser.Parse(line)
	ex := exchange{input: line}
	if err != nil {
		ex.output = err.Error()
		ex.failed = true
	} else {
		ex.output = resp.Text
	}
	m.transcript = append(m.transcript, ex)
	if len(m.transcript) > m.history {
		m.transcript = m.transcript[len(m.transcript)-m.history:]
	}

	if resp.Exit {
		m.exited = true
		m.farewell = resp.Text
		return tea.Quit
	}
	return nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("yapper") + "\n\n")

	lines := m.transcriptLines()
	// title (2), prompt (2), footer (1)
	if avail := m.height - 5; m.height > 0 && len(lines) > avail && avail > 0 {
		lines = lines[len(lines)-avail:]
	}
	for _, line := range lines {
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + promptStyle.Render("> ") + inputStyle.Render(string(m.input)) + "█\n")
	b.WriteString(footerStyle.Render("enter: submit • ctrl+u: clear • ctrl+c: save and quit"))
	return b.String()
}

func (m *tuiModel) transcriptLines() []string {
	var lines []string
	for _, ex := range m.transcript {
		if ex.input != "" {
			lines = append(lines, promptStyle.Render("> ")+ex.input)
		}
		style := lipgloss.NewStyle()
		if ex.failed {
			style = errorStyle
		}
		for _, line := range strings.Split(ex.output, "\n") {
			lines = append(lines, style.Render(line))
		}
		lines = append(lines, "")
	}
	return lines
}
