package entities

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

const (
	caretOperator = "^"
	tildeOperator = "~"
	versionFields = 3
)

// SemanticVersion is an immutable MAJOR.MINOR.PATCH triple.
type SemanticVersion struct {
	Major int
	Minor int
	Patch int
}

// String renders the version as "MAJOR.MINOR.PATCH".
func (v SemanticVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// RangePolicy decides how "~" ranges are treated when detecting pinning.
type RangePolicy string

const (
	// TildePinned treats "~" ranges as pinned. Only "^" marks a floating range.
	TildePinned RangePolicy = "pinned"
	// TildeFloating treats "~" ranges as floating, like "^".
	TildeFloating RangePolicy = "floating"
)

// Valid reports whether the policy is one of the known values.
func (p RangePolicy) Valid() bool {
	return p == TildePinned || p == TildeFloating
}

// ParseVersionRange converts a declared range such as "^1.2.3", "~1.2.3" or
// "1.2.3" into the version it names and whether the range is pinned.
//
// The version is the segment after the last "^" or "~" and must be exactly
// three numeric fields; pre-release and build suffixes are rejected.
func ParseVersionRange(raw string, policy RangePolicy) (SemanticVersion, bool, error) {
	pinned := !strings.Contains(raw, caretOperator)
	if policy == TildeFloating && strings.Contains(raw, tildeOperator) {
		pinned = false
	}

	last := raw[strings.LastIndexAny(raw, caretOperator+tildeOperator)+1:]
	if strings.TrimSpace(last) == "" {
		return SemanticVersion{}, pinned, fmt.Errorf("%w: %q has no version", ErrMalformedVersion, raw)
	}

	version, err := ParseVersion(last)
	if err != nil {
		return SemanticVersion{}, pinned, err
	}
	return version, pinned, nil
}

// ParseVersion parses a bare "MAJOR.MINOR.PATCH" string. Surrounding
// whitespace and a leading "v" are accepted. Fields with leading zeros
// ("01.2.3"), pre-release and build suffixes are rejected with
// ErrMalformedVersion.
func ParseVersion(raw string) (SemanticVersion, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	canonical := "v" + trimmed

	if !semver.IsValid(canonical) ||
		semver.Prerelease(canonical) != "" ||
		semver.Build(canonical) != "" {
		return SemanticVersion{}, fmt.Errorf("%w: %q", ErrMalformedVersion, raw)
	}

	fields := strings.Split(trimmed, ".")
	if len(fields) != versionFields {
		return SemanticVersion{}, fmt.Errorf(
			"%w: %q must have %d numeric fields", ErrMalformedVersion, raw, versionFields,
		)
	}

	numbers := make([]int, versionFields)
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return SemanticVersion{}, fmt.Errorf("%w: %q: %w", ErrMalformedVersion, raw, err)
		}
		numbers[i] = n
	}

	return SemanticVersion{Major: numbers[0], Minor: numbers[1], Patch: numbers[2]}, nil
}
