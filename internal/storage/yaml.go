package storage

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrNotExist = errors.New("file does not exist")

type YAMLFile struct {
	path string
}

func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{path: path}
}

func (y *YAMLFile) Path() string {
	return y.path
}

func (y *YAMLFile) Exists() bool {
	info, err := os.Stat(y.path)
	return err == nil && !info.IsDir()
}

// Load decodes the file into dest. Unknown fields are rejected and an empty
// file leaves dest untouched.
func (y *YAMLFile) Load(dest interface{}) error {
	f, err := os.Open(y.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotExist, y.path)
		}
		return fmt.Errorf("read file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse yaml %s: %w", y.path, err)
	}
	return nil
}
