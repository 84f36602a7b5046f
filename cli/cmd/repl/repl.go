// Package repl implements an interactive terminal browser over the merged
// view of the loaded configuration sources.
//
// The browser presents a fuzzy-filtered list of section names. Typing
// narrows the list, Tab / Shift-Tab move the selection, and Enter resolves
// the selected section and prints its merged key/value content. Ctrl+C on
// an empty line (or Ctrl+D, or Esc) exits.
package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/inuse/log"
	"github.com/ardnew/inuse/resolve"
)

const browsePrompt = "➜ "

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	sectionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	keyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

const defaultWidth = 80

// model is the Bubble Tea model for the section browser.
type model struct {
	ctxFunc    func() context.Context
	input      textinput.Model
	engine     *resolve.Engine
	logger     log.Logger
	candidates []string      // all section names, in definition order
	matches    fuzzy.Matches // current fuzzy match results
	selIdx     int           // selected candidate index
	width      int           // terminal width for ellipsization
	quitting   bool
}

// Run starts the interactive browser over the given engine's sections.
func Run(
	ctx context.Context,
	engine *resolve.Engine,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	sections := engine.Provider().Sections()
	if len(sections) == 0 {
		return ErrNoSections
	}

	logger.TraceContext(ctx, "browser start",
		slog.Int("section_count", len(sections)),
	)

	m := newModel(ctx, engine, sections, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

func newModel(
	ctx context.Context,
	engine *resolve.Engine,
	sections []string,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(browsePrompt)
	ti.TextStyle = inputStyle
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		engine:     engine,
		logger:     logger,
		candidates: sections,
		matches:    matchSections("", sections),
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(browsePrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.selIdx, m.width))
		b.WriteString("\n")

	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(hintStyle.Render(
			"Type to filter sections, Enter to show, Esc to exit"))
		b.WriteString("\n")

	default:
		b.WriteString(hintStyle.Render("no matching sections"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "browser keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.refresh()

		return m, nil

	case tea.KeyCtrlD, tea.KeyEsc:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		return m.showSelected()

	case tea.KeyTab, tea.KeyDown:
		if len(m.matches) > 0 {
			m.selIdx = (m.selIdx + 1) % len(m.matches)
		}

		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		if len(m.matches) > 0 {
			m.selIdx = (m.selIdx + len(m.matches) - 1) % len(m.matches)
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refresh()

	return m, cmd
}

// refresh recomputes the fuzzy matches for the current input and clamps
// the selection.
func (m *model) refresh() {
	m.matches = matchSections(m.input.Value(), m.candidates)

	if m.selIdx >= len(m.matches) {
		m.selIdx = 0
	}
}

// showSelected resolves the selected section and prints its merged
// content above the input line.
func (m model) showSelected() (model, tea.Cmd) {
	if len(m.matches) == 0 {
		return m, nil
	}

	name := m.matches[m.selIdx].Str

	m.logger.TraceContext(m.ctxFunc(), "browser show section",
		slog.String("section", name),
	)

	body, err := m.renderSection(name)
	if err != nil {
		return m, tea.Println(errorStyle.Render("error: " + err.Error()))
	}

	m.input.SetValue("")
	m.refresh()

	return m, tea.Println(body)
}

// renderSection resolves name through the engine's merged view and formats
// it as a styled INI-style block.
func (m model) renderSection(name string) (string, error) {
	items, err := m.engine.View().Items(name)
	if err != nil {
		return "", NewError("resolve section").Wrap(err).
			With(slog.String("section", name))
	}

	var b strings.Builder

	b.WriteString(sectionStyle.Render("[" + name + "]"))

	for key, value := range items {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s: %s", keyStyle.Render(key), value)
	}

	return b.String(), nil
}
