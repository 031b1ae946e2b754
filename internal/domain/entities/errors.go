package entities

import "errors"

var (
	// ErrMalformedVersion is returned when a version string does not decompose
	// into exactly three numeric fields.
	ErrMalformedVersion = errors.New("malformed version")

	// ErrRegistryUnavailable is returned when the registry could not answer a lookup.
	ErrRegistryUnavailable = errors.New("registry unavailable")

	// ErrPackageNotFound is returned when the registry does not know the package.
	ErrPackageNotFound = errors.New("package not found")

	// ErrMalformedManifest is returned when a dependency group of the manifest
	// is present but is not an object. It is the only error that aborts a run.
	ErrMalformedManifest = errors.New("malformed manifest")
)
