package presenters

import (
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
)

func renderMarkdown(w io.Writer, report *entities.Report) error {
	var b strings.Builder

	b.WriteString("| Package | Group | Installed | Latest | Bump |\n")
	b.WriteString("|---------|-------|-----------|--------|------|\n")
	for _, f := range report.Findings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			f.Name, f.Group, f.Installed, f.Latest, bumpLabel(f.BumpType))
	}

	if len(report.Skipped) > 0 {
		b.WriteString("\n**Skipped**\n\n")
		for _, s := range report.Skipped {
			fmt.Fprintf(&b, "- `%s` (%s, `%s`): %s\n", skippedName(s), s.Group, s.DeclaredRange, s.Reason)
		}
	}

	b.WriteString("\n")
	b.WriteString(summary(report))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
