package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type Kind int

const (
	KindNone Kind = iota
	KindEnv
	KindTemplate
)

func (k Kind) String() string {
	switch k {
	case KindEnv:
		return "env"
	case KindTemplate:
		return "template"
	}
	return "none"
}

var TemplateSuffixes = []string{"example", "sample", "template", "dist", "defaults"}

var DefaultExcludeDirs = []string{
	".git",
	"node_modules",
	"vendor",
	".cache",
	".turbo",
	".next",
}

// Classify reports whether name is a dotenv file, a dotenv template such as
// .env.example, or neither.
func Classify(name string) Kind {
	if name == ".env" {
		return KindEnv
	}
	suffix, ok := strings.CutPrefix(name, ".env.")
	if !ok || suffix == "" {
		return KindNone
	}
	for _, t := range TemplateSuffixes {
		if suffix == t {
			return KindTemplate
		}
	}
	return KindEnv
}

type EnvFile struct {
	Path string
	Rel  string
	Kind Kind
}

// ListEnvFiles walks root and returns dotenv files and templates sorted by
// relative path. When pattern is not empty only relative paths matching the
// doublestar pattern are kept.
func ListEnvFiles(root, pattern string) ([]EnvFile, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("get absolute path: %w", err)
	}

	excludeSet := make(map[string]bool)
	for _, d := range DefaultExcludeDirs {
		excludeSet[d] = true
	}

	var files []EnvFile
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != root && excludeSet[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		kind := Classify(d.Name())
		if kind == KindNone {
			return nil
		}
		if pattern != "" {
			ok, err := doublestar.Match(pattern, rel)
			if err != nil {
				return fmt.Errorf("match %q: %w", pattern, err)
			}
			if !ok {
				return nil
			}
		}
		files = append(files, EnvFile{Path: path, Rel: rel, Kind: kind})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Rel < files[j].Rel })
	return files, nil
}

// Pair is a dotenv file and the template in the same directory it should be
// validated against.
type Pair struct {
	Template EnvFile
	Env      EnvFile
}

// Pairs matches every dotenv file with each template in its directory.
func Pairs(files []EnvFile) []Pair {
	templates := make(map[string][]EnvFile)
	for _, f := range files {
		if f.Kind == KindTemplate {
			dir := filepath.Dir(f.Path)
			templates[dir] = append(templates[dir], f)
		}
	}

	var pairs []Pair
	for _, f := range files {
		if f.Kind != KindEnv {
			continue
		}
		for _, t := range templates[filepath.Dir(f.Path)] {
			pairs = append(pairs, Pair{Template: t, Env: f})
		}
	}
	return pairs
}
