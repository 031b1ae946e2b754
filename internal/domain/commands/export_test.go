package commands

// ResolveLatest exports resolveLatest for testing.
var ResolveLatest = resolveLatest //nolint:gochecknoglobals // test export

// SkipReasonFor exports skipReasonFor for testing.
var SkipReasonFor = skipReasonFor //nolint:gochecknoglobals // test export
