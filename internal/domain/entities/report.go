package entities

import "slices"

// SkipReason explains why a dependency is missing from the findings.
type SkipReason string

const (
	SkipMalformedVersion    SkipReason = "malformed-version"
	SkipInvalidName         SkipReason = "invalid-name"
	SkipPackageNotFound     SkipReason = "package-not-found"
	SkipRegistryUnavailable SkipReason = "registry-unavailable"
)

// SkippedDependency is a dependency that could not be checked.
type SkippedDependency struct {
	Name          string
	Group         DependencyGroup
	DeclaredRange string
	Reason        SkipReason
	Err           error
}

// StalenessFinding is one dependency whose latest version is ahead of the installed one.
type StalenessFinding struct {
	Name      string
	Group     DependencyGroup
	Installed SemanticVersion
	Latest    SemanticVersion
	BumpType  BumpType
}

// Report is the result of one staleness check.
type Report struct {
	Findings []StalenessFinding
	Skipped  []SkippedDependency
	Checked  int // Dependencies that were resolved against the registry
	Pinned   int // Dependencies excluded from the check because they are pinned
}

// BuildReport classifies every resolved dependency and keeps the stale ones.
// Runtime findings come before development findings; within a group the
// order of resolved is kept.
func BuildReport(resolved []ResolvedDependency, skipped []SkippedDependency, pinned int) *Report {
	report := &Report{
		Findings: make([]StalenessFinding, 0, len(resolved)),
		Skipped:  slices.Clone(skipped),
		Checked:  len(resolved),
		Pinned:   pinned,
	}

	for _, group := range []DependencyGroup{GroupRuntime, GroupDevelopment} {
		for _, dep := range resolved {
			if dep.Group != group {
				continue
			}

			bump := Classify(dep.InstalledVersion, dep.LatestVersion)
			if bump == BumpNone {
				continue
			}

			report.Findings = append(report.Findings, StalenessFinding{
				Name:      dep.Name,
				Group:     dep.Group,
				Installed: dep.InstalledVersion,
				Latest:    dep.LatestVersion,
				BumpType:  bump,
			})
		}
	}

	return report
}

// FilterByBump keeps only the findings whose bump type is allowed.
// An empty allow list keeps everything.
func (r *Report) FilterByBump(allowed []BumpType) {
	if len(allowed) == 0 {
		return
	}
	r.Findings = slices.DeleteFunc(r.Findings, func(f StalenessFinding) bool {
		return !slices.Contains(allowed, f.BumpType)
	})
}

// CountByBump returns how many findings have the given bump type.
func (r *Report) CountByBump(bump BumpType) int {
	count := 0
	for _, f := range r.Findings {
		if f.BumpType == bump {
			count++
		}
	}
	return count
}
