package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

const ProjectFileName = ".envdiff.yaml"

var MarkerFiles = []string{
	ProjectFileName,
	"pnpm-workspace.yaml",
	"turbo.json",
	"lerna.json",
	"go.work",
	"go.mod",
	"package.json",
	"settings.gradle",
	"settings.gradle.kts",
	".git",
}

// FindRoot walks up from dir to the nearest directory holding a marker file.
// When none is found it returns dir itself as an absolute path.
func FindRoot(dir string) (string, error) {
	original, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	dir = original

	for {
		if FindMarker(dir) != "" {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return original, nil
		}
		dir = parent
	}
}

func IsWorkspace(dir string) bool {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	return FindMarker(dir) != ""
}

func FindMarker(root string) string {
	for _, marker := range MarkerFiles {
		if _, err := os.Stat(filepath.Join(root, marker)); err == nil {
			return marker
		}
	}
	return ""
}

func FormatMarkerForDisplay(marker string) string {
	switch marker {
	case "":
		return "unknown"
	case ".git":
		return "git repository"
	case ProjectFileName:
		return "envdiff config"
	}
	return marker
}
