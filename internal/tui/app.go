// Package tui provides the interactive Bubble Tea budget planner.
package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/config"
	"github.com/theirongolddev/cbudget/internal/controller"
	"github.com/theirongolddev/cbudget/internal/export"
	"github.com/theirongolddev/cbudget/internal/model"
	"github.com/theirongolddev/cbudget/internal/store"
	"github.com/theirongolddev/cbudget/internal/tui/components"
	"github.com/theirongolddev/cbudget/internal/tui/theme"
)

var errNothingToExport = errors.New("calculate a budget before exporting")

// exportDoneMsg reports the outcome of a workbook export.
type exportDoneMsg struct {
	path string
	err  error
}

// App is the root Bubble Tea model.
type App struct {
	ctrl     *controller.Controller
	renderer *ChartRenderer
	cfg      config.Config
	ctx      context.Context

	// Input state. focus 0 is income, 1..n the expense rows, n+1 the goal.
	keys   keyMap
	editor textinput.Model
	focus  int

	// Derived from the history ledger after each calculation.
	history  table.Model
	entries  []model.HistoryEntry
	totals   map[model.Category]decimal.Decimal
	balances []float64

	status    string
	exportDir string

	// UI state
	width    int
	height   int
	showHelp bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5
	wideWidth        = 140
	labelWidth       = 22
	goalBarWidth     = 24
)

// NewApp creates the TUI around a fresh session controller backed by history.
func NewApp(history *store.History, cfg config.Config, needSetup bool) App {
	renderer := &ChartRenderer{
		Height:   cfg.Appearance.ChartHeight,
		Currency: config.CurrencySymbol(cfg),
	}
	ctrl := controller.New(history, renderer, controller.WithInitialRows(cfg.General.InitialRows))
	ctrl.SetIncome(cfg.Budget.DefaultIncome)
	ctrl.SetSavingsGoal(cfg.Budget.DefaultSavingsGoal)

	a := App{
		ctrl:      ctrl,
		renderer:  renderer,
		cfg:       cfg,
		ctx:       context.Background(),
		keys:      defaultKeyMap(),
		editor:    newEditor(),
		history:   newHistoryTable(),
		exportDir: filepath.Join(config.StateDir(), "exports"),
		needSetup: needSetup,
	}
	a.loadEditor()
	a.editor.Focus()

	if needSetup {
		a.setupVals = &SetupValues{
			Theme:    cfg.Appearance.Theme,
			Currency: config.CurrencySymbol(cfg),
		}
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a
}

// WithExportDir sets where ctrl+e writes workbooks.
func (a App) WithExportDir(dir string) App {
	a.exportDir = dir
	return a
}

func newEditor() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 24
	ti.Width = 20
	return ti
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		a.history.SetColumns(historyColumns(components.CardInnerWidth(a.historyWidth())))
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Msg("export failed")
			a.status = "Export failed: " + msg.err.Error()
		} else {
			a.status = "Exported " + msg.path
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		return a.updateKeys(msg)
	}

	// Forward unhandled messages (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The notification is modal.
	if _, ok := a.ctrl.Notice(); ok {
		if key.Matches(msg, a.keys.Dismiss, a.keys.Calculate) {
			a.ctrl.DismissNotice()
		}
		return a, nil
	}

	// Any key closes help.
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		return a, nil
	case key.Matches(msg, a.keys.Dismiss):
		a.status = ""
		return a, nil
	case key.Matches(msg, a.keys.Next):
		a.setFocus(a.focus + 1)
		return a, nil
	case key.Matches(msg, a.keys.Prev):
		a.setFocus(a.focus - 1)
		return a, nil
	case key.Matches(msg, a.keys.CatNext):
		a.cycleCategory(1)
		return a, nil
	case key.Matches(msg, a.keys.CatPrev):
		a.cycleCategory(-1)
		return a, nil
	case key.Matches(msg, a.keys.Add):
		idx := a.ctrl.AddExpense()
		a.setFocus(idx + 1)
		return a, nil
	case key.Matches(msg, a.keys.Calculate):
		a.calculate()
		return a, nil
	case key.Matches(msg, a.keys.Export):
		return a, a.exportCmd()
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	a.storeEditor()
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := ApplySetup(&a.cfg, *a.setupVals); err != nil {
			a.status = "Could not save config; settings apply to this session only"
		}
		a.renderer.Currency = config.CurrencySymbol(a.cfg)
		a.history.SetStyles(historyStyles())
		a.needSetup = false
		a.setupForm = nil
		return a, textinput.Blink
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, textinput.Blink
	}
	return a, cmd
}

// ─── Field focus ────────────────────────────────────────────────

func (a App) fieldCount() int {
	return a.ctrl.Form().Len() + 2
}

func (a App) goalField() int {
	return a.fieldCount() - 1
}

// rowAt maps a field index to an expense row index.
func (a App) rowAt(field int) (int, bool) {
	row := field - 1
	return row, row >= 0 && row < a.ctrl.Form().Len()
}

func (a *App) setFocus(field int) {
	n := a.fieldCount()
	a.focus = ((field % n) + n) % n
	a.loadEditor()
}

func (a App) fieldText(field int) string {
	switch {
	case field == 0:
		return a.ctrl.Income()
	case field == a.goalField():
		return a.ctrl.SavingsGoal()
	}
	row, _ := a.rowAt(field)
	r, err := a.ctrl.Form().Row(row)
	if err != nil {
		return ""
	}
	return r.Amount
}

func (a *App) loadEditor() {
	a.editor.SetValue(a.fieldText(a.focus))
	a.editor.CursorEnd()
	a.editor.Placeholder = "0.00"
}

func (a *App) storeEditor() {
	v := a.editor.Value()
	switch {
	case a.focus == 0:
		a.ctrl.SetIncome(v)
	case a.focus == a.goalField():
		a.ctrl.SetSavingsGoal(v)
	default:
		row, _ := a.rowAt(a.focus)
		if err := a.ctrl.Form().SetAmount(row, v); err != nil {
			log.Error().Err(err).Int("row", row).Msg("storing amount")
		}
	}
}

func (a *App) cycleCategory(delta int) {
	row, ok := a.rowAt(a.focus)
	if !ok {
		return
	}
	if err := a.ctrl.Form().CycleCategory(row, delta); err != nil {
		log.Error().Err(err).Int("row", row).Msg("cycling category")
	}
}

// ─── Actions ────────────────────────────────────────────────────

func (a *App) calculate() {
	// The controller sets the notification for both outcomes.
	if _, err := a.ctrl.Calculate(a.ctx); err != nil {
		return
	}
	a.refreshHistory()
}

func (a *App) refreshHistory() {
	entries, err := a.ctrl.History(a.ctx)
	if err != nil {
		log.Error().Err(err).Msg("reading history")
		a.status = "History unavailable"
		return
	}
	totals, err := a.ctrl.CategoryTotals(a.ctx)
	if err != nil {
		log.Error().Err(err).Msg("reading category totals")
	}

	a.entries = entries
	a.totals = totals
	a.balances = balanceSeries(entries)
	a.history.SetRows(historyRows(entries, a.renderer.Currency))
	a.history.GotoBottom()
}

func (a App) exportCmd() tea.Cmd {
	res, ok := a.ctrl.LastResult()
	if !ok {
		return func() tea.Msg { return exportDoneMsg{err: errNothingToExport} }
	}
	entries := append([]model.HistoryEntry(nil), a.entries...)
	path := filepath.Join(a.exportDir, fmt.Sprintf("cbudget-%s.xlsx", time.Now().Format("20060102-150405")))
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: export.WriteFile(path, res, entries)}
	}
}

// ─── Views ──────────────────────────────────────────────────────

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// isWide reports whether the history and session cards fit side by side.
func (a App) isWide() bool {
	return a.contentWidth() >= wideWidth
}

func (a App) historyWidth() int {
	if !a.isWide() {
		return a.contentWidth()
	}
	return components.LayoutRow(a.contentWidth(), 3)[0] * 2
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if n, ok := a.ctrl.Notice(); ok {
		return a.viewNotice(n)
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  cbudget needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewNotice(n model.Notification) string {
	t := theme.Active
	color := t.NoticeColor(n.Kind)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Background(t.Surface).
		Padding(1, 3).
		Width(56)
	titleStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render(n.Title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(n.Message))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press Esc or Enter to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []string{"Navigation", "Actions"}
	for i, group := range a.keys.fullHelp() {
		b.WriteString(sectionStyle.Render(sections[i]))
		b.WriteString("\n")
		for _, bind := range group {
			h := bind.Help()
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", h.Key)),
				descStyle.Render(h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := a.renderHeader(w)
	statusBar := components.RenderStatusBar(w, a.hintLine(), a.summaryLine())

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	topWidths := components.LayoutRow(cw, 2)
	top := components.CardRow([]string{
		components.ContentCard("Budget", a.renderForm(components.CardInnerWidth(topWidths[0])), topWidths[0], true),
		components.ContentCard("", a.renderChart(), topWidths[1], false),
	})

	histW := a.historyWidth()
	sideW := histW
	if a.isWide() {
		sideW = cw - histW
	}
	session := components.ContentCard("Session", a.renderSession(components.CardInnerWidth(sideW)), sideW, false)

	var bottom string
	if a.isWide() {
		tableH := contentH - lipgloss.Height(top) - 4
		history := components.ContentCard("History", a.renderHistory(tableH), histW, false)
		bottom = components.CardRow([]string{history, session})
	} else {
		tableH := contentH - lipgloss.Height(top) - lipgloss.Height(session) - 4
		history := components.ContentCard("History", a.renderHistory(tableH), histW, false)
		bottom = lipgloss.JoinVertical(lipgloss.Left, history, session)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderHeader(w int) string {
	t := theme.Active
	logo := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("◈ cbudget")
	sub := lipgloss.NewStyle().Foreground(t.TextMuted).Render(" · Budget Planner")
	return lipgloss.NewStyle().Width(w).Padding(0, 1).Render(logo + sub)
}

func (a App) renderForm(innerW int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(labelWidth)
	focusLabel := labelStyle.Foreground(t.Accent).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	placeholder := lipgloss.NewStyle().Foreground(t.TextDim)
	sectionStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	field := func(idx int, label string) string {
		ls := labelStyle
		var value string
		switch {
		case idx == a.focus:
			ls = focusLabel
			value = a.editor.View()
		case a.fieldText(idx) == "":
			value = placeholder.Render("0.00")
		default:
			value = valueStyle.Render(a.fieldText(idx))
		}
		return ls.Render(label) + value
	}

	var b strings.Builder
	b.WriteString(field(0, "Income"))
	b.WriteString("\n\n")
	b.WriteString(sectionStyle.Render("Expenses"))
	b.WriteString("\n")
	for i, row := range a.ctrl.Form().Rows() {
		label := fmt.Sprintf("%d. %s", i+1, row.Category)
		if a.focus == i+1 {
			label = fmt.Sprintf("%d. ‹%s›", i+1, row.Category)
		}
		b.WriteString(field(i+1, label))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(field(a.goalField(), "Savings Goal"))
	b.WriteString("\n\n")

	barW := max(min(goalBarWidth, innerW-labelWidth-9), 4)
	b.WriteString(components.GoalBar("Goal progress", a.ctrl.Progress(), labelWidth-1, barW))
	return b.String()
}

func (a App) renderChart() string {
	img := a.ctrl.Chart()
	if !img.IsZero() {
		return img.String()
	}
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(chart.Title)
	hint := lipgloss.NewStyle().Foreground(t.TextMuted).Render(
		"Enter your income, expenses and savings goal,\nthen press enter to calculate.")
	return title + "\n\n" + hint
}

func (a App) renderHistory(height int) string {
	if len(a.entries) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("No calculations yet.")
	}
	tbl := a.history
	tbl.SetHeight(max(height, 3))
	return tbl.View()
}

func (a App) renderSession(innerW int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	currency := a.renderer.Currency

	var bars []components.Bar
	for _, c := range model.Categories {
		total, ok := a.totals[c]
		if !ok {
			continue
		}
		bars = append(bars, components.Bar{
			Label: string(c),
			Value: total.InexactFloat64(),
			Text:  cli.FormatMoney(total, currency),
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", muted.Render("Calculations:"), a.ctrl.Calculations())
	if res, ok := a.ctrl.LastResult(); ok {
		balanceColor := t.Success
		if res.Balance.IsNegative() {
			balanceColor = t.Error
		}
		b.WriteString(components.MetricRow([]components.Metric{
			{Label: "Income", Value: cli.FormatMoney(res.Income, currency)},
			{Label: "Total Expenses", Value: cli.FormatMoney(res.TotalExpenses, currency)},
			{Label: "Balance", Value: cli.FormatMoney(res.Balance, currency), Color: balanceColor},
		}, innerW))
		b.WriteString("\n")
	}
	if len(bars) > 0 {
		b.WriteString("\n")
		b.WriteString(muted.Render("Spending by category"))
		b.WriteString("\n")
		b.WriteString(components.HorizontalBars(bars, t.Palette, innerW))
		b.WriteString("\n")
	}
	if len(a.balances) > 1 {
		b.WriteString("\n")
		b.WriteString(muted.Render("Balance trend "))
		b.WriteString(components.Sparkline(a.balances, t.Accent))
	}
	return b.String()
}

func (a App) hintLine() string {
	parts := make([]string, 0, len(a.keys.shortHelp()))
	for _, bind := range a.keys.shortHelp() {
		h := bind.Help()
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

func (a App) summaryLine() string {
	if a.status != "" {
		return a.status
	}
	return fmt.Sprintf("%d calculations · %d history rows", a.ctrl.Calculations(), len(a.entries))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
