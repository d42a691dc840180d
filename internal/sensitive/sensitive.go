// Package sensitive decides which values a report should mask.
// Masking only changes what is displayed, never the compared values.
package sensitive

import (
	"strings"
)

var DefaultKeyParts = []string{
	"secret",
	"password",
	"key",
	"token",
	"auth",
	"credential",
	"private",
}

type Detector struct {
	keyParts []string
	patterns []Pattern
}

// NewDetector matches key names containing any of DefaultKeyParts or extra,
// case-insensitively, and values matching ValuePatterns.
func NewDetector(extra ...string) *Detector {
	parts := make([]string, 0, len(DefaultKeyParts)+len(extra))
	parts = append(parts, DefaultKeyParts...)
	for _, p := range extra {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			parts = append(parts, p)
		}
	}
	return &Detector{keyParts: parts, patterns: ValuePatterns}
}

func (d *Detector) IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, p := range d.keyParts {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// MatchValue returns the first value pattern that matches.
func (d *Detector) MatchValue(value string) (Pattern, bool) {
	for _, p := range d.patterns {
		if p.Regex.MatchString(value) {
			return p, true
		}
	}
	return Pattern{}, false
}

func (d *Detector) IsSensitive(key, value string) bool {
	if d.IsSensitiveKey(key) {
		return true
	}
	_, ok := d.MatchValue(value)
	return ok
}

// Mask keeps the first and last two characters of values longer than four.
func Mask(value string) string {
	r := []rune(value)
	if len(r) <= 4 {
		return "****"
	}
	return string(r[:2]) + "****" + string(r[len(r)-2:])
}
