//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependency records with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name          string
	declaredRange string
	pinned        bool
	installed     entities.SemanticVersion
	group         entities.DependencyGroup
	latest        entities.SemanticVersion
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults:
// a floating runtime dependency "^1.0.0" whose latest version is 2.0.0.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		name:          "test-dependency",
		declaredRange: "^1.0.0",
		installed:     entities.SemanticVersion{Major: 1},
		group:         entities.GroupRuntime,
		latest:        entities.SemanticVersion{Major: 2},
	}
}

// WithName sets the dependency name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithRange sets the declared range and derives the installed version and
// pinning from it. An unparsable range leaves the installed version untouched.
func (b *DependencyBuilder) WithRange(declared string) *DependencyBuilder {
	b.declaredRange = declared
	if version, pinned, err := entities.ParseVersionRange(declared, entities.TildePinned); err == nil {
		b.installed = version
		b.pinned = pinned
	}
	return b
}

// WithInstalled sets the installed version.
func (b *DependencyBuilder) WithInstalled(major, minor, patch int) *DependencyBuilder {
	b.installed = entities.SemanticVersion{Major: major, Minor: minor, Patch: patch}
	return b
}

// WithLatest sets the latest version used by BuildResolved.
func (b *DependencyBuilder) WithLatest(major, minor, patch int) *DependencyBuilder {
	b.latest = entities.SemanticVersion{Major: major, Minor: minor, Patch: patch}
	return b
}

// WithGroup sets the dependency group.
func (b *DependencyBuilder) WithGroup(group entities.DependencyGroup) *DependencyBuilder {
	b.group = group
	return b
}

// Pinned marks the dependency as pinned.
func (b *DependencyBuilder) Pinned() *DependencyBuilder {
	b.pinned = true
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildRecord()
}

// BuildRecord creates the dependency record with a concrete return type.
func (b *DependencyBuilder) BuildRecord() entities.DependencyRecord {
	return entities.DependencyRecord{
		Name:             b.name,
		DeclaredRange:    b.declaredRange,
		IsPinned:         b.pinned,
		InstalledVersion: b.installed,
		Group:            b.group,
	}
}

// BuildResolved creates the resolved dependency carrying the latest version.
func (b *DependencyBuilder) BuildResolved() entities.ResolvedDependency {
	return entities.ResolvedDependency{
		DependencyRecord: b.BuildRecord(),
		LatestVersion:    b.latest,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-dependency"
	b.declaredRange = "^1.0.0"
	b.pinned = false
	b.installed = entities.SemanticVersion{Major: 1}
	b.group = entities.GroupRuntime
	b.latest = entities.SemanticVersion{Major: 2}
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:          b.name,
		declaredRange: b.declaredRange,
		pinned:        b.pinned,
		installed:     b.installed,
		group:         b.group,
		latest:        b.latest,
	}
}
