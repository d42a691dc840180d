package envfile

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrNotFound   = errors.New("file not found")
	ErrUnreadable = errors.New("file unreadable")
)

// File is the parsed form of a dotenv file. It is not modified after Parse returns.
type File struct {
	path     string
	entries  map[string]Entry
	order    []string
	comments []string
}

func newFile(path string) *File {
	return &File{
		path:    path,
		entries: make(map[string]Entry),
	}
}

// Load reads path and parses it. A missing file matches ErrNotFound; any other
// read failure matches ErrUnreadable.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return Parse(string(data), path), nil
}

// Parse turns dotenv text into a File. Lines that are not assignments or
// comments are dropped.
func Parse(content, path string) *File {
	f := newFile(path)
	for i, line := range strings.Split(content, "\n") {
		f.parseLine(line, i+1)
	}
	return f
}

func (f *File) parseLine(line string, num int) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	if strings.HasPrefix(trimmed, "#") {
		f.comments = append(f.comments, trimmed)
		return
	}

	idx := strings.Index(trimmed, "=")
	if idx <= 0 {
		return
	}

	entry := Entry{
		Key:  strings.TrimSpace(trimmed[:idx]),
		Line: num,
	}
	raw := trimmed[idx+1:]

	if value, ok := unquote(raw); ok {
		entry.Value = strings.TrimSpace(value)
	} else if !startsWithQuote(raw) {
		entry.Value, entry.InlineComment, entry.HasComment = parseInlineComment(raw)
	} else {
		entry.Value = strings.TrimSpace(raw)
	}

	f.set(entry)
}

func (f *File) set(e Entry) {
	if _, exists := f.entries[e.Key]; !exists {
		f.order = append(f.order, e.Key)
	}
	f.entries[e.Key] = e
}

func startsWithQuote(s string) bool {
	return len(s) > 0 && (s[0] == '"' || s[0] == '\'')
}

func unquote(s string) (string, bool) {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1], true
		}
	}
	return s, false
}

// parseInlineComment splits at the first '#' when whitespace precedes it.
// "bar#baz" and "a#b #c" have no comment; "bar #baz" has value "bar" and
// comment "baz".
func parseInlineComment(raw string) (value, comment string, ok bool) {
	commentIdx := findInlineCommentStart(raw)
	if commentIdx == -1 {
		return strings.TrimSpace(raw), "", false
	}
	value = strings.TrimSpace(raw[:commentIdx])
	comment = strings.TrimLeft(raw[commentIdx+1:], " \t\v\f\r")
	return value, comment, true
}

func findInlineCommentStart(s string) int {
	i := strings.IndexByte(s, '#')
	if i < 1 || !isSpace(s[i-1]) {
		return -1
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r'
}

// Path is the identifier the file was parsed under.
func (f *File) Path() string {
	return f.path
}

// Get returns the last assignment of key.
func (f *File) Get(key string) (Entry, bool) {
	e, ok := f.entries[key]
	return e, ok
}

// Keys returns keys in the order they first appeared.
func (f *File) Keys() []string {
	keys := make([]string, len(f.order))
	copy(keys, f.order)
	return keys
}

// Entries returns entries in the order their keys first appeared.
func (f *File) Entries() []Entry {
	entries := make([]Entry, 0, len(f.order))
	for _, k := range f.order {
		entries = append(entries, f.entries[k])
	}
	return entries
}

// Len is the number of distinct keys.
func (f *File) Len() int {
	return len(f.entries)
}

// Comments returns the full-line comments in file order.
func (f *File) Comments() []string {
	comments := make([]string, len(f.comments))
	copy(comments, f.comments)
	return comments
}

// Without returns a copy of f that omits every key for which drop reports true.
func (f *File) Without(drop func(key string) bool) *File {
	out := newFile(f.path)
	out.comments = f.Comments()
	for _, k := range f.order {
		if drop(k) {
			continue
		}
		out.set(f.entries[k])
	}
	return out
}
