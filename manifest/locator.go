package manifest

import (
	"os"
	"path/filepath"
)

const (
	// EnvManifestPath is the variable consulted for an explicit override
	// document path. It has the highest locator priority.
	EnvManifestPath = "SKIKT_MANIFEST"

	// CanonicalName is the default override document filename.
	CanonicalName = "deployment-manifest.yaml"

	// AlternateName is the alternate-extension override document filename.
	AlternateName = "deployment-manifest.yml"
)

// Locator resolves the override document path by fixed priority.
// The zero value uses the process environment and the current directory.
type Locator struct {
	// WorkDir is the directory searched for the canonical filenames.
	// Empty means the current working directory.
	WorkDir string

	// LookupEnv is consulted for EnvManifestPath. Nil means os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// Locate returns the first candidate path that exists as a regular file,
// in priority order: explicit variable, canonical filename, alternate
// extension. The second return is false when no candidate exists, which is
// the normal case for a deployment relying solely on the base
// configuration.
func (l Locator) Locate() (string, bool) {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if explicit, ok := lookup(EnvManifestPath); ok && explicit != "" {
		path := filepath.Clean(explicit)
		if isRegularFile(path) {
			return path, true
		}
	}

	for _, name := range []string{CanonicalName, AlternateName} {
		path := filepath.Join(l.WorkDir, name)
		if isRegularFile(path) {
			return path, true
		}
	}

	return "", false
}

func isRegularFile(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}

	return stat.Mode().IsRegular()
}
