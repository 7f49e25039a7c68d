// Package ui implements the terminal front end of adpf: a header, a section
// navigation bar and a scrollable display of the active section's content.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/adpf/pkg/config"
	"github.com/vanderheijden86/adpf/pkg/content"
	"github.com/vanderheijden86/adpf/pkg/debug"
	"github.com/vanderheijden86/adpf/pkg/export"
	"github.com/vanderheijden86/adpf/pkg/metrics"
	"github.com/vanderheijden86/adpf/pkg/section"
)

// ConfigReloadedMsg is sent when the config file changes on disk.
type ConfigReloadedMsg struct {
	Config config.Config
	Err    error
}

// Option configures a Model.
type Option func(*Model)

// WithRenderMode selects config.RenderNative or config.RenderMarkdown.
// Unknown modes are ignored.
func WithRenderMode(mode string) Option {
	return func(m *Model) {
		if validRenderMode(mode) {
			m.renderMode = mode
		}
	}
}

// WithShowHelp starts with the full key help expanded.
func WithShowHelp(show bool) Option {
	return func(m *Model) { m.help.ShowAll = show }
}

// WithTheme replaces the default theme.
func WithTheme(t Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.copy = write }
}

// WithSize sets the initial terminal size, before any WindowSizeMsg.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width = width
		m.height = height
	}
}

// Model is the bubbletea model for the section viewer. The active section
// lives in the injected selector; the model only renders it.
type Model struct {
	reg   *content.Registry
	sel   *section.Selector
	theme Theme
	keys  keyMap
	help  help.Model

	viewport viewport.Model
	md       *MarkdownRenderer

	renderMode string
	width      int
	height     int

	// What the viewport currently shows, to skip needless re-renders.
	shownID    section.ID
	shownMode  string
	shownWidth int

	statusMsg     string
	statusIsError bool

	copy     func(string) error
	quitting bool
}

// NewModel creates the viewer over reg, driven by sel. A nil registry uses
// content.Default; a nil selector starts at section.Default.
func NewModel(reg *content.Registry, sel *section.Selector, opts ...Option) Model {
	if reg == nil {
		reg = content.Default()
	}
	if sel == nil {
		sel = section.NewSelector(section.Default)
	}

	m := Model{
		reg:        reg,
		sel:        sel,
		theme:      DefaultTheme(lipgloss.DefaultRenderer()),
		keys:       defaultKeyMap(),
		help:       help.New(),
		renderMode: config.RenderNative,
		width:      defaultWidth,
		height:     defaultHeight,
		shownID:    -1,
		copy:       clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.applyHelpStyles()
	m.md = NewMarkdownRendererWithTheme(m.contentWidth(), m.theme)
	m.viewport = viewport.New(m.width, m.bodyHeight())
	m.refresh()
	return m
}

func validRenderMode(mode string) bool {
	return mode == config.RenderNative || mode == config.RenderMarkdown
}

func (m *Model) applyHelpStyles() {
	r := m.theme.Renderer
	keyStyle := r.NewStyle().Bold(true).Foreground(m.theme.Primary)
	descStyle := r.NewStyle().Foreground(m.theme.Subtext)
	sepStyle := r.NewStyle().Foreground(m.theme.Muted)
	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.ShortDesc = descStyle
	m.help.Styles.ShortSeparator = sepStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.FullDesc = descStyle
	m.help.Styles.FullSeparator = sepStyle
	m.help.Styles.Ellipsis = sepStyle
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.reg.Site().Title)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		m.sel.Select(section.ID(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Next):
		m.sel.Next()

	case key.Matches(msg, m.keys.Prev):
		m.sel.Prev()

	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()

	case key.Matches(msg, m.keys.ToggleMode):
		if m.renderMode == config.RenderMarkdown {
			m.renderMode = config.RenderNative
		} else {
			m.renderMode = config.RenderMarkdown
		}
		m.setStatus("render mode: "+m.renderMode, false)

	case key.Matches(msg, m.keys.Copy):
		m.copyActive()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeViewport()
	}

	m.refresh()
	return m, nil
}

func (m *Model) applyConfig(msg ConfigReloadedMsg) {
	if msg.Err != nil {
		m.setStatus(fmt.Sprintf("config: %v", msg.Err), true)
	} else {
		m.setStatus("config reloaded", false)
	}
	if validRenderMode(msg.Config.UI.RenderMode) {
		m.renderMode = msg.Config.UI.RenderMode
	}
	m.help.ShowAll = msg.Config.UI.ShowHelp
	m.resizeViewport()
	m.refresh()
}

func (m *Model) copyActive() {
	e := m.reg.Lookup(m.sel.Active())
	if err := m.copy(export.SectionMarkdown(e)); err != nil {
		m.setStatus(fmt.Sprintf("❌ Clipboard error: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("📋 Copied %s to clipboard", e.ID.Label()), false)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsError = isErr
}

// SetSize updates the layout for a new terminal size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.md.SetWidth(m.contentWidth())
	m.resizeViewport()
	m.refresh()
}

func (m *Model) resizeViewport() {
	m.viewport.Width = m.width
	m.viewport.Height = m.bodyHeight()
}

// contentWidth is the wrap width of section content.
func (m Model) contentWidth() int {
	return clampWidth(m.width - 2*SpaceXS)
}

// bodyHeight is what remains for the viewport after the chrome.
func (m Model) bodyHeight() int {
	chrome := lipgloss.Height(m.renderHeader()) +
		lipgloss.Height(m.renderNav()) +
		lipgloss.Height(m.renderFooter())
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	return h
}

// refresh re-renders the active section into the viewport when the section,
// render mode or width changed since the last render.
func (m *Model) refresh() {
	id := m.sel.Active()
	width := m.contentWidth()
	if id == m.shownID && m.renderMode == m.shownMode && width == m.shownWidth {
		return
	}
	defer metrics.TimerWithCallback(metrics.UIRender, func(d time.Duration) {
		debug.LogTiming("render "+id.String()+" ("+m.renderMode+")", d)
	})()
	sectionChanged := id != m.shownID

	m.viewport.SetContent(m.renderSection(id, width))
	if sectionChanged {
		m.viewport.GotoTop()
		debug.Log("showing section %s (%s)", id, m.renderMode)
	}
	m.shownID, m.shownMode, m.shownWidth = id, m.renderMode, width
}

func (m Model) renderSection(id section.ID, width int) string {
	e, ok := m.reg.Get(id)
	if !ok {
		return ""
	}

	var body string
	if m.renderMode == config.RenderMarkdown {
		out, err := m.md.Render(export.SectionMarkdown(e))
		if err != nil {
			debug.Log("markdown render failed for %s: %v", id, err)
		}
		body = out
	} else {
		body = RenderEntry(e, m.theme, width)
	}
	return lipgloss.NewStyle().PaddingLeft(SpaceXS).Render(body)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderNav(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	site := m.reg.Site()
	logo := m.theme.Renderer.NewStyle().Foreground(m.theme.Accent).Render("⬡")
	title := m.theme.Header.Render(truncate(site.Title, m.width-4))
	tagline := m.theme.Subtitle.Render(truncate(site.Tagline, m.width-2))
	return logo + " " + title + "\n" + tagline
}

func (m Model) renderNav() string {
	active := m.sel.Active()
	items := make([]string, 0, section.Count)
	for i, id := range section.All() {
		label := fmt.Sprintf("%d %s %s", i+1, id.Icon(), id.Label())
		style := m.theme.NavItem
		if id == active {
			style = m.theme.NavActive
		}
		items = append(items, style.Render(label))
	}
	return wrapBoxes(items, m.width, 1)
}

func (m Model) renderFooter() string {
	var lines []string

	status := ""
	if m.statusMsg != "" {
		if m.statusIsError {
			status = m.theme.StatusError.Render(m.statusMsg)
		} else {
			status = m.theme.StatusOK.Render(m.statusMsg)
		}
	}
	scroll := m.theme.MutedText.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	gap := m.width - lipgloss.Width(status) - lipgloss.Width(scroll)
	if gap < 1 {
		gap = 1
	}
	lines = append(lines, RenderDivider(m.width, m.theme))
	lines = append(lines, status+strings.Repeat(" ", gap)+scroll)

	h := m.help
	h.Width = m.width
	lines = append(lines, h.View(m.keys))

	if footer := m.reg.Site().Footer; len(footer) > 0 {
		lines = append(lines, m.theme.MutedText.Render(truncate(strings.Join(footer, "  "), m.width)))
	}
	return strings.Join(lines, "\n")
}

// ActiveSection returns the section currently shown.
func (m Model) ActiveSection() section.ID {
	return m.sel.Active()
}

// RenderMode returns config.RenderNative or config.RenderMarkdown.
func (m Model) RenderMode() string {
	return m.renderMode
}

// StatusMessage returns the footer status text and whether it is an error.
func (m Model) StatusMessage() (string, bool) {
	return m.statusMsg, m.statusIsError
}

// Content returns the rendered content of the active section.
func (m Model) Content() string {
	return m.renderSection(m.sel.Active(), m.contentWidth())
}
