package controller

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	m "github.com/mouse-blink/cstyle/internal/model"
)

type styles struct {
	errorTag   lipgloss.Style
	warningTag lipgloss.Style
	detector   lipgloss.Style
	line       lipgloss.Style
	path       lipgloss.Style
	selected   lipgloss.Style
	title      lipgloss.Style
	summary    lipgloss.Style
	accent     lipgloss.Style
	faint      lipgloss.Style
	border     lipgloss.Style
}

// newStyles binds every style to a renderer for w. Without color the
// renderer is forced to plain ASCII so no escape sequences are written.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		errorTag:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warningTag: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		detector:   r.NewStyle().Foreground(lipgloss.Color("5")),
		line:       r.NewStyle().Foreground(lipgloss.Color("11")).Width(6).Align(lipgloss.Right),
		path:       r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		selected: r.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true),
		title: r.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2),
		summary: r.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2),
		accent: r.NewStyle().Foreground(lipgloss.Color("6")),
		faint:  r.NewStyle().Foreground(lipgloss.Color("8")),
		border: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Margin(0, 1).
			Padding(0, 1),
	}
}

func (s styles) severity(sev m.Severity) lipgloss.Style {
	if sev == m.SeverityError {
		return s.errorTag
	}

	return s.warningTag
}

// formatFinding renders f in its text form with the severity tag styled.
func (s styles) formatFinding(f m.Finding) string {
	text := f.String()
	tag := "[" + string(f.Severity) + "]"

	return s.severity(f.Severity).Render(tag) + strings.TrimPrefix(text, tag)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
