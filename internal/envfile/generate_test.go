package envfile

import (
	"testing"
)

func TestFormatAssignment(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"A", "1", "A=1"},
		{"A", "", `A=""`},
		{"A", "two words", `A="two words"`},
		{"A", "a#b", `A="a#b"`},
		{"A", `"quoted"`, `A=""quoted""`},
		{"A", "'x", `A="'x"`},
		{"URL", "https://example.com/?q=1", "URL=https://example.com/?q=1"},
	}
	for _, tt := range tests {
		if got := FormatAssignment(tt.key, tt.value); got != tt.want {
			t.Errorf("FormatAssignment(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.want)
		}
	}
}

func TestGenerateRoundTrip(t *testing.T) {
	entries := []Entry{
		{Key: "PLAIN", Value: "value"},
		{Key: "EMPTY", Value: ""},
		{Key: "SPACES", Value: "hello world"},
		{Key: "HASH", Value: "a#b"},
		{Key: "SPACED_HASH", Value: "a # b"},
		{Key: "DOUBLE", Value: `"wrapped"`},
		{Key: "SINGLE", Value: `'wrapped'`},
		{Key: "INNER_QUOTE", Value: `say "hi" now`},
		{Key: "TRAILING_QUOTE", Value: `abc"`},
		{Key: "EQUALS", Value: "a=b=c"},
		{Key: "MY KEY", Value: "v"},
	}

	f := Parse(Generate(entries), "generated.env")

	if f.Len() != len(entries) {
		t.Fatalf("Len() = %d, want %d", f.Len(), len(entries))
	}
	for _, want := range entries {
		got, ok := f.Get(want.Key)
		if !ok {
			t.Errorf("key %q lost in round trip", want.Key)
			continue
		}
		if got.Value != want.Value {
			t.Errorf("%s: value = %q, want %q", want.Key, got.Value, want.Value)
		}
	}
}

func TestGenerateFromParsed(t *testing.T) {
	content := "A=1\nB=\"x y\" \nC=bar # note\nD='q'\n"
	first := Parse(content, "a.env")
	second := Parse(Generate(first.Entries()), "b.env")

	for _, e := range first.Entries() {
		got, ok := second.Get(e.Key)
		if !ok || got.Value != e.Value {
			t.Errorf("%s: got %q (found %v), want %q", e.Key, got.Value, ok, e.Value)
		}
	}
}
