// Package presenters renders a staleness report for the terminal or for tools.
package presenters

import (
	"fmt"
	"io"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
)

const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Render writes report to w in the requested format.
func Render(w io.Writer, report *entities.Report, format string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, report)
	case FormatMarkdown:
		return renderMarkdown(w, report)
	case FormatTable, "":
		return renderTable(w, report)
	default:
		return fmt.Errorf("unknown output format %q (expected table, json or markdown)", format)
	}
}

func bumpLabel(bump entities.BumpType) string {
	switch bump {
	case entities.BumpMajor:
		return "🔴 Major"
	case entities.BumpMinor:
		return "🟡 Minor"
	default:
		return "🟢 Patch"
	}
}

func summary(report *entities.Report) string {
	return fmt.Sprintf(
		"Total: %d checked, %d outdated (%d major, %d minor, %d patch), %d pinned, %d skipped",
		report.Checked,
		len(report.Findings),
		report.CountByBump(entities.BumpMajor),
		report.CountByBump(entities.BumpMinor),
		report.CountByBump(entities.BumpPatch),
		report.Pinned,
		len(report.Skipped),
	)
}
