package entities

// Manifest is the dependency snapshot read from a project manifest.
// A group that the manifest does not declare is nil.
type Manifest struct {
	Path        string
	Name        string
	Runtime     map[string]string
	Development map[string]string
}
