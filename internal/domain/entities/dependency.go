package entities

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DependencyGroup tags the manifest section a dependency was declared in.
type DependencyGroup string

const (
	GroupRuntime     DependencyGroup = "runtime"
	GroupDevelopment DependencyGroup = "development"
)

// DependencyRecord is one declared dependency of the manifest.
type DependencyRecord struct {
	Name             string          // Package name, unique within its group
	DeclaredRange    string          // Range as written in the manifest (e.g. "^1.2.3")
	IsPinned         bool            // True when the range has no floating operator
	InstalledVersion SemanticVersion // Version named by the declared range
	Group            DependencyGroup
}

// ResolvedDependency is a DependencyRecord whose latest published version is known.
type ResolvedDependency struct {
	DependencyRecord
	LatestVersion SemanticVersion
}

// ExtractDependencies turns one raw name->range group of the manifest into
// typed records. A nil group yields no records. Entries whose range cannot be
// parsed are returned as skipped and never abort the extraction.
// Records are ordered by name.
func ExtractDependencies(
	deps map[string]string,
	group DependencyGroup,
	policy RangePolicy,
) ([]DependencyRecord, []SkippedDependency) {
	names := slices.Sorted(maps.Keys(deps))

	records := make([]DependencyRecord, 0, len(names))
	var skipped []SkippedDependency

	for _, name := range names {
		declared := deps[name]
		if strings.TrimSpace(name) == "" {
			skipped = append(skipped, SkippedDependency{
				Group:         group,
				DeclaredRange: declared,
				Reason:        SkipInvalidName,
				Err:           fmt.Errorf("%w: empty dependency name", ErrMalformedManifest),
			})
			continue
		}

		version, pinned, err := ParseVersionRange(declared, policy)
		if err != nil {
			skipped = append(skipped, SkippedDependency{
				Name:          name,
				Group:         group,
				DeclaredRange: declared,
				Reason:        SkipMalformedVersion,
				Err:           err,
			})
			continue
		}

		records = append(records, DependencyRecord{
			Name:             name,
			DeclaredRange:    declared,
			IsPinned:         pinned,
			InstalledVersion: version,
			Group:            group,
		})
	}

	return records, skipped
}

// PartitionPinned splits records into the ones eligible for a registry lookup
// and the pinned ones, keeping the input order in both.
func PartitionPinned(records []DependencyRecord) ([]DependencyRecord, []DependencyRecord) {
	floating := make([]DependencyRecord, 0, len(records))
	var pinned []DependencyRecord
	for _, record := range records {
		if record.IsPinned {
			pinned = append(pinned, record)
			continue
		}
		floating = append(floating, record)
	}
	return floating, pinned
}
