package presenters

import (
	"encoding/json"
	"io"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
)

type jsonFinding struct {
	Name      string `json:"name"`
	Group     string `json:"group"`
	Installed string `json:"installed"`
	Latest    string `json:"latest"`
	BumpType  string `json:"bumpType"`
}

type jsonSkipped struct {
	Name   string `json:"name"`
	Group  string `json:"group"`
	Range  string `json:"range"`
	Reason string `json:"reason"`
	Error  string `json:"error,omitempty"`
}

type jsonReport struct {
	Findings []jsonFinding `json:"findings"`
	Skipped  []jsonSkipped `json:"skipped"`
	Checked  int           `json:"checked"`
	Pinned   int           `json:"pinned"`
}

func renderJSON(w io.Writer, report *entities.Report) error {
	out := jsonReport{
		Findings: make([]jsonFinding, 0, len(report.Findings)),
		Skipped:  make([]jsonSkipped, 0, len(report.Skipped)),
		Checked:  report.Checked,
		Pinned:   report.Pinned,
	}

	for _, f := range report.Findings {
		out.Findings = append(out.Findings, jsonFinding{
			Name:      f.Name,
			Group:     string(f.Group),
			Installed: f.Installed.String(),
			Latest:    f.Latest.String(),
			BumpType:  string(f.BumpType),
		})
	}
	for _, s := range report.Skipped {
		skipped := jsonSkipped{
			Name:   s.Name,
			Group:  string(s.Group),
			Range:  s.DeclaredRange,
			Reason: string(s.Reason),
		}
		if s.Err != nil {
			skipped.Error = s.Err.Error()
		}
		out.Skipped = append(out.Skipped, skipped)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
