package presenters

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
)

var (
	colorDim    = lipgloss.Color("240")
	colorGray   = lipgloss.Color("245")
	colorRed    = lipgloss.Color("203")
	colorYellow = lipgloss.Color("221")
	colorGreen  = lipgloss.Color("114")

	headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

func renderTable(w io.Writer, report *entities.Report) error {
	var b strings.Builder

	if len(report.Findings) == 0 {
		b.WriteString("All checked dependencies are up to date.\n")
	} else {
		rows := make([][]string, 0, len(report.Findings))
		for _, f := range report.Findings {
			rows = append(rows, []string{
				f.Name, string(f.Group), f.Installed.String(), f.Latest.String(), bumpLabel(f.BumpType),
			})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(dimStyle).
			Headers("Package", "Group", "Installed", "Latest", "Bump").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle.Padding(0, 1)
				}
				base := lipgloss.NewStyle().Padding(0, 1)
				if col == 4 && row >= 0 && row < len(report.Findings) {
					return base.Foreground(bumpColor(report.Findings[row].BumpType))
				}
				return base
			})

		b.WriteString(t.Render())
		b.WriteString("\n")
	}

	if len(report.Skipped) > 0 {
		b.WriteString("\nSkipped:\n")
		for _, s := range report.Skipped {
			fmt.Fprintf(&b, "  - %s (%s, %q): %s\n", skippedName(s), s.Group, s.DeclaredRange, s.Reason)
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(summary(report)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func bumpColor(bump entities.BumpType) lipgloss.Color {
	switch bump {
	case entities.BumpMajor:
		return colorRed
	case entities.BumpMinor:
		return colorYellow
	default:
		return colorGreen
	}
}

func skippedName(s entities.SkippedDependency) string {
	if s.Name == "" {
		return "<unnamed>"
	}
	return s.Name
}
