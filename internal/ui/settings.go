package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/iiroan/moderntranslator/internal/i18n"
	"github.com/iiroan/moderntranslator/internal/opener"
	"github.com/iiroan/moderntranslator/internal/platform"
	"github.com/iiroan/moderntranslator/internal/purchase"
	"github.com/iiroan/moderntranslator/internal/settings"
	"github.com/iiroan/moderntranslator/internal/view"
)

const snackbarTimeout = 4 * time.Second

// PurchaseRunner runs the purchase flows. *purchase.Flow satisfies it.
type PurchaseRunner interface {
	RemoveAds(ctx context.Context, strings i18n.Strings) purchase.Result
	RestorePurchase(ctx context.Context, strings i18n.Strings) purchase.Result
}

// SettingsDeps wires the settings screen to the rest of the app.
type SettingsDeps struct {
	Store    *settings.Store
	Flow     PurchaseRunner
	Opener   opener.Opener
	Platform platform.Descriptor
	Version  string
	Logger   *log.Logger
	Dense    bool
	NoColor  bool
}

type settingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newSettingsKeyMap() settingsKeyMap {
	return settingsKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter/space", "select")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close menu")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k settingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

func (k settingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Quit}}
}

type picker struct {
	row   view.Row
	index int
}

type purchaseDoneMsg struct {
	result purchase.Result
}

type snackbarExpiredMsg struct {
	seq int
}

// SettingsModel is the interactive settings screen.
type SettingsModel struct {
	deps    SettingsDeps
	handler view.Handler

	ctx    context.Context
	cancel context.CancelFunc

	rows   []view.Row
	cursor int
	picker *picker

	snackbar    string
	snackbarSeq int
	inFlight    int
	spinner     spinner.Model

	help     help.Model
	keys     settingsKeyMap
	width    int
	quitting bool
}

// NewSettingsModel builds the screen. In-flight purchases are cancelled when
// the screen exits or ctx is done.
func NewSettingsModel(ctx context.Context, deps SettingsDeps) SettingsModel {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	ctx, cancel := context.WithCancel(ctx)

	s := spinner.New()
	s.Spinner = spinner.Dot

	helpModel := help.New()

	m := SettingsModel{
		deps:    deps,
		handler: view.Handler{Dispatcher: deps.Store},
		ctx:     ctx,
		cancel:  cancel,
		spinner: s,
		help:    helpModel,
		keys:    newSettingsKeyMap(),
		width:   terminalWidth(),
	}
	m.reload()
	m.rebuild("")
	return m
}

// reload re-themes the whole screen from the current settings.
func (m *SettingsModel) reload() {
	st := m.deps.Store.Snapshot()
	ApplyPreferences(PreferencesFrom(st.Settings, m.deps.Dense, m.deps.NoColor))

	m.spinner.Style = fg(string(Primary))
	keyStyle := fg(string(Accent)).Bold(true)
	hintStyle := fg(string(Muted))
	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.ShortDesc = hintStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.FullDesc = hintStyle
	m.help.Styles.Ellipsis = hintStyle
}

// rebuild recomputes the rows, keeping the cursor on focus when it survives.
func (m *SettingsModel) rebuild(focus view.RowID) {
	if focus == "" && m.cursor < len(m.rows) {
		focus = m.rows[m.cursor].ID
	}

	m.rows = view.Build(view.Input{
		State:    m.deps.Store.Snapshot(),
		Platform: m.deps.Platform,
		Version:  m.deps.Version,
	})

	m.cursor = -1
	for i, row := range m.rows {
		if row.ID == focus && row.Focusable() {
			m.cursor = i
			break
		}
	}
	if m.cursor < 0 {
		m.cursor = m.nextFocusable(-1, 1)
	}
}

func (m SettingsModel) nextFocusable(from int, step int) int {
	for i := from + step; i >= 0 && i < len(m.rows); i += step {
		if m.rows[i].Focusable() {
			return i
		}
	}
	if from >= 0 && from < len(m.rows) {
		return from
	}
	return 0
}

// Rows returns the rows currently on screen.
func (m SettingsModel) Rows() []view.Row {
	return m.rows
}

// Focused returns the row under the cursor.
func (m SettingsModel) Focused() view.Row {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return view.Row{}
	}
	return m.rows[m.cursor]
}

// Snackbar returns the notification currently shown.
func (m SettingsModel) Snackbar() string {
	return m.snackbar
}

func (m SettingsModel) Init() tea.Cmd {
	return nil
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case purchaseDoneMsg:
		m.inFlight--
		m.deps.Logger.Debug("purchase flow finished", "attempt", msg.result.AttemptID, "kind", msg.result.Kind)
		m.rebuild("")
		return m, m.showNotifications()
	case snackbarExpiredMsg:
		if msg.seq == m.snackbarSeq {
			m.snackbar = ""
		}
		return m, nil
	case spinner.TickMsg:
		if m.inFlight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	}

	if m.picker != nil {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = m.nextFocusable(m.cursor, -1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = m.nextFocusable(m.cursor, 1)
	case key.Matches(msg, m.keys.Back):
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select):
		row := m.Focused()
		if !row.Focusable() {
			return m, nil
		}
		if row.Kind == view.KindMenu {
			m.picker = &picker{row: row, index: selectedOption(row)}
			return m, nil
		}
		effect, err := m.handler.Activate(row)
		if err != nil {
			return m, m.fail(err)
		}
		return m, m.apply(row.ID, effect)
	}
	return m, nil
}

func (m SettingsModel) handlePickerKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	options := m.picker.row.Options
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.picker.index > 0 {
			m.picker.index--
		}
	case key.Matches(msg, m.keys.Down):
		if m.picker.index < len(options)-1 {
			m.picker.index++
		}
	case key.Matches(msg, m.keys.Back):
		m.picker = nil
	case key.Matches(msg, m.keys.Select):
		row, index := m.picker.row, m.picker.index
		m.picker = nil
		if len(options) == 0 {
			return m, nil
		}
		effect, err := m.handler.Select(m.deps.Store.Snapshot(), row.ID, options[index].ID)
		if err != nil {
			return m, m.fail(err)
		}
		return m, m.apply(row.ID, effect)
	}
	return m, nil
}

func (m *SettingsModel) apply(focus view.RowID, effect view.Effect) tea.Cmd {
	var cmds []tea.Cmd

	if effect.Reload {
		m.reload()
	}
	m.rebuild(focus)

	if effect.ReloadStrings != "" {
		m.deps.Logger.Debug("display language changed", "lang", effect.ReloadStrings)
	}

	if effect.OpenURI != "" && m.deps.Opener != nil {
		uri := effect.OpenURI
		o := m.deps.Opener
		logger := m.deps.Logger
		cmds = append(cmds, func() tea.Msg {
			opener.Fire(o, uri, logger)
			return nil
		})
	}

	if effect.Purchase != view.PurchaseNone && m.deps.Flow != nil {
		cmds = append(cmds, m.startPurchase(effect.Purchase))
	}

	return tea.Batch(cmds...)
}

func (m *SettingsModel) startPurchase(action view.PurchaseAction) tea.Cmd {
	ctx := m.ctx
	flow := m.deps.Flow
	table := m.deps.Store.Snapshot().Strings

	run := func() tea.Msg {
		var res purchase.Result
		switch action {
		case view.PurchaseRestore:
			res = flow.RestorePurchase(ctx, table)
		default:
			res = flow.RemoveAds(ctx, table)
		}
		return purchaseDoneMsg{result: res}
	}

	m.inFlight++
	if m.inFlight == 1 {
		return tea.Batch(run, m.spinner.Tick)
	}
	return run
}

func (m *SettingsModel) showNotifications() tea.Cmd {
	messages := m.deps.Store.Notifications()
	if len(messages) == 0 {
		return nil
	}
	return m.setSnackbar(messages[len(messages)-1])
}

func (m *SettingsModel) fail(err error) tea.Cmd {
	m.deps.Logger.Error("settings interaction failed", "err", err)
	return m.setSnackbar(m.deps.Store.Snapshot().Strings.Get("somethingWentWrong"))
}

func (m *SettingsModel) setSnackbar(text string) tea.Cmd {
	m.snackbarSeq++
	m.snackbar = text
	seq := m.snackbarSeq
	return tea.Tick(snackbarTimeout, func(time.Time) tea.Msg {
		return snackbarExpiredMsg{seq: seq}
	})
}

func selectedOption(row view.Row) int {
	for i, opt := range row.Options {
		if opt.Selected {
			return i
		}
	}
	return 0
}

func (m SettingsModel) View() tea.View {
	if m.quitting {
		return tea.View{}
	}

	st := m.deps.Store.Snapshot()
	width := m.width
	if width <= 0 {
		width = 80
	}

	lines := make([]string, 0, len(m.rows)*2)
	for i, row := range m.rows {
		lines = append(lines, RenderRow(row, i == m.cursor, width)...)
		if m.picker != nil && i == m.cursor {
			lines = append(lines, renderPicker(m.picker, width)...)
		}
	}
	if !m.deps.Dense {
		lines = append(lines, "")
	}

	status := ""
	if m.inFlight > 0 {
		status = m.spinner.View() + " " + st.Strings.Get("processing")
	}
	if m.snackbar != "" {
		snack := fg(string(Accent)).Bold(true).Render(m.snackbar)
		if status != "" {
			status += "  "
		}
		status += snack
	}
	if status != "" {
		lines = append(lines, status)
	}

	footer := m.help.View(m.keys)
	v := tea.NewView(Frame(strings.ToUpper(st.Strings.Get("settings")), "", strings.Join(lines, "\n"), footer))
	v.AltScreen = true
	return v
}

// RenderRow renders a row as one or two lines.
func RenderRow(row view.Row, focused bool, width int) []string {
	if row.Kind == view.KindDivider {
		return []string{fg(string(Border)).Render(strings.Repeat("─", max(4, width-4)))}
	}

	titleStyle := fg(string(Foreground))
	prefix := "  "
	if focused {
		prefix = "> "
		titleStyle = fg(string(Primary)).Bold(true)
	}

	value := ""
	switch row.Kind {
	case view.KindToggle:
		if row.Checked {
			value = fg(string(Accent)).Render("● on")
		} else {
			value = fg(string(Muted)).Render("○ off")
		}
	case view.KindMenu:
		value = fg(string(Accent)).Render("‹ " + row.Secondary + " ›")
	case view.KindLink:
		value = fg(string(Muted)).Render("↗")
	case view.KindAction:
		value = fg(string(Muted)).Render("›")
	}

	available := max(10, width-6-lipgloss.Width(value))
	line := prefix + titleStyle.Render(ansi.Truncate(row.Primary, available, "..."))
	if value != "" {
		line += " " + value
	}

	lines := []string{line}
	if row.Secondary != "" && row.Kind != view.KindMenu {
		secondary := fg(string(Muted)).Render(ansi.Truncate(row.Secondary, max(10, width-6), "..."))
		lines = append(lines, "    "+secondary)
	}
	return lines
}

func renderPicker(p *picker, width int) []string {
	lines := make([]string, 0, len(p.row.Options))
	for i, opt := range p.row.Options {
		marker := "  "
		style := fg(string(Foreground))
		if opt.Selected {
			marker = "• "
		}
		if i == p.index {
			style = fg(string(Accent)).Bold(true)
			marker = "› "
		}
		lines = append(lines, "      "+marker+style.Render(ansi.Truncate(opt.Label, max(10, width-10), "...")))
	}
	return lines
}

// PrintRows writes the rows for non-interactive output, downsampling colors
// to what w supports.
func PrintRows(w io.Writer, rows []view.Row, width int) {
	for _, row := range rows {
		for _, line := range RenderRow(row, false, width) {
			lipgloss.Fprintln(w, line) //nolint:errcheck
		}
	}
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// ErrNotInteractive is returned when the settings screen needs a terminal.
var ErrNotInteractive = errors.New("settings screen requires an interactive terminal")

// RunSettings runs the settings screen until the user quits.
func RunSettings(ctx context.Context, deps SettingsDeps) error {
	if !IsInteractiveTerminal() {
		return ErrNotInteractive
	}

	model := NewSettingsModel(ctx, deps)
	defer model.cancel()

	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("settings screen: %w", err)
	}
	return nil
}
