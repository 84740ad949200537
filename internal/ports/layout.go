package ports

// LayoutPort locates conventional project directories when neither an
// explicit value nor a layout preset supplies them. Implementations probe
// read-only and always return a usable path, falling back to the
// conventional default when nothing is found.
type LayoutPort interface {
	FindSourcesDir(root string) string
	FindArtifactsDir(root string) string
	FindLibraryDirs(root string) []string
}
