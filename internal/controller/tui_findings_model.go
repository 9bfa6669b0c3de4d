package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/cstyle/internal/model"
)

// findingDelegate renders one finding per row.
type findingDelegate struct {
	styles    styles
	showPaths bool
}

func (d findingDelegate) Height() int  { return 1 }
func (d findingDelegate) Spacing() int { return 0 }
func (d findingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d findingDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	it, ok := item.(findingItem)
	if !ok {
		return
	}

	f := it.finding

	text := fmt.Sprintf("%s: %s", f.Subject, f.Note)
	if f.Note == "" {
		text = f.Subject
	}

	if d.showPaths {
		text = fmt.Sprintf("%s  %s", it.path, text)
	}

	// line (6) + severity (9) + detector (18) + spacing (6)
	width := lm.Width() - 39

	if index == lm.Index() {
		row := fmt.Sprintf("%6d  %-9s  %-18s  %s", f.Line, "["+string(f.Severity)+"]", f.Detector, truncateToWidth(text, width))
		_, _ = fmt.Fprint(w, d.styles.selected.Render(row))

		return
	}

	line := fmt.Sprintf("%s  %s  %s  %s",
		d.styles.line.Render(fmt.Sprintf("%d", f.Line)),
		d.styles.severity(f.Severity).Width(9).Render("["+string(f.Severity)+"]"),
		d.styles.detector.Width(18).Render(f.Detector),
		truncateToWidth(text, width),
	)
	_, _ = fmt.Fprint(w, line)
}

// findingsModel is an interactive browser over the findings of one or
// more reports.
type findingsModel struct {
	width    int
	height   int
	title    string
	errors   int
	warnings int
	status   string
	styles   styles
	list     list.Model
}

func newFindingsModel(title string, st styles, reports ...m.Report) findingsModel {
	items := findingItems(reports...)

	listItems := make([]list.Item, 0, len(items))
	for _, item := range items {
		listItems = append(listItems, item)
	}

	errs, warns := 0, 0
	for _, report := range reports {
		errs += report.CountBySeverity(m.SeverityError)
		warns += report.CountBySeverity(m.SeverityWarning)
	}

	delegate := findingDelegate{styles: st, showPaths: len(reports) > 1}

	findings := list.New(listItems, delegate, 80, 20)
	findings.SetShowPagination(false)
	findings.SetShowFilter(true)
	findings.SetShowHelp(false)
	findings.SetShowTitle(false)
	findings.SetShowStatusBar(false)
	findings.FilterInput.Placeholder = "Filter by detector, subject or note…"

	return findingsModel{
		title:    title,
		errors:   errs,
		warnings: warns,
		styles:   st,
		list:     findings,
	}
}

func (fm findingsModel) Init() tea.Cmd {
	return nil
}

func (fm findingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fm.width = msg.Width
		fm.height = msg.Height

	case reportSavedMsg:
		fm.status = fmt.Sprintf("report saved to %s", msg.path)

	case tea.KeyMsg:
		if fm.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return fm, tea.Quit
			}
		} else if msg.String() == "ctrl+c" {
			return fm, tea.Quit
		}

		fm.list, cmd = fm.list.Update(msg)
	}

	return fm, cmd
}

func (fm findingsModel) View() string {
	title := fm.styles.title.Render("cstyle " + fm.title)

	summary := fm.styles.summary.Render(fmt.Sprintf(
		"Errors: %s   Warnings: %s",
		fm.styles.errorTag.Render(fmt.Sprintf("%d", fm.errors)),
		fm.styles.warningTag.Render(fmt.Sprintf("%d", fm.warnings)),
	))

	var body string
	if len(fm.list.Items()) == 0 {
		body = fm.styles.summary.Render("No findings.")
	} else {
		body = fm.renderTable()
	}

	parts := []string{title, summary, body}
	if fm.status != "" {
		parts = append(parts, fm.styles.accent.Render("  "+fm.status))
	}

	footer := fm.styles.faint.
		Align(lipgloss.Center).
		Width(fm.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	parts = append(parts, footer)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (fm findingsModel) renderTable() string {
	// title (2) + summary (2) + footer (1) + border (2) + header (2)
	listHeight := max(fm.height-9, 5)
	// margin (2) + border (2) + padding (2)
	listWidth := max(fm.width-6, 40)

	fm.list.SetHeight(listHeight)
	fm.list.SetWidth(listWidth)

	headers := fm.styles.faint.
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%6s  %-9s  %-18s  %s", "Line", "Severity", "Detector", "Finding"))

	return fm.styles.border.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			fm.list.View(),
		),
	)
}
