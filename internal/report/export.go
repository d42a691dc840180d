package report

import (
	"fmt"
	"strings"

	"github.com/xmazu/envdiff/internal/compare"
	"github.com/xmazu/envdiff/internal/envfile"
)

type Side string

const (
	First  Side = "first"
	Second Side = "second"
)

func ParseSide(s string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case First:
		return First, nil
	case Second:
		return Second, nil
	}
	return "", fmt.Errorf("invalid side %q: must be first or second", s)
}

// MissingFrom returns the variables present on side but absent from the other file.
func MissingFrom(r *compare.Result, side Side) []compare.Diff {
	if side == Second {
		return r.MissingInFirst
	}
	return r.MissingInSecond
}

// ExportContent renders diffs as dotenv text using the value from side.
// Diffs without a value on that side are written as KEY=.
func ExportContent(diffs []compare.Diff, side Side) string {
	var b strings.Builder
	b.WriteString("# Missing variables - exported by envdiff\n")
	b.WriteString("# Add these to your .env file\n")
	b.WriteString("\n")
	for _, d := range diffs {
		v, ok := d.Value(side == Second)
		if !ok {
			b.WriteString(d.Key + "=\n")
			continue
		}
		b.WriteString(envfile.FormatAssignment(d.Key, v))
		b.WriteString("\n")
	}
	return b.String()
}
