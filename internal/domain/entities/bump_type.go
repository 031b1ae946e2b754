package entities

// BumpType classifies how far an installed version lags the latest one.
type BumpType string

const (
	BumpNone  BumpType = ""
	BumpMajor BumpType = "major"
	BumpMinor BumpType = "minor"
	BumpPatch BumpType = "patch"
)

// ParseBumpType maps "major", "minor" or "patch" to its BumpType.
func ParseBumpType(raw string) (BumpType, bool) {
	switch BumpType(raw) {
	case BumpMajor, BumpMinor, BumpPatch:
		return BumpType(raw), true
	default:
		return BumpNone, false
	}
}

// Classify compares installed against latest in priority order: a greater
// major is a major bump, else a greater minor is a minor bump, else a greater
// patch is a patch bump. Each field is checked on its own, so a latest with a
// lower major but a greater minor (a moved-back dist-tag) is still a minor bump.
func Classify(installed, latest SemanticVersion) BumpType {
	switch {
	case latest.Major > installed.Major:
		return BumpMajor
	case latest.Minor > installed.Minor:
		return BumpMinor
	case latest.Patch > installed.Patch:
		return BumpPatch
	default:
		return BumpNone
	}
}

// IsStale reports whether latest is ahead of installed. It shares the
// ordering of Classify so the two can never disagree.
func IsStale(installed, latest SemanticVersion) bool {
	return Classify(installed, latest) != BumpNone
}
