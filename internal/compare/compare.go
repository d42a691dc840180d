// Package compare classifies the keys of two parsed dotenv files.
package compare

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/xmazu/envdiff/internal/envfile"
)

type Status string

const (
	MissingInFirst  Status = "missing-in-first"
	MissingInSecond Status = "missing-in-second"
	Different       Status = "different"
	Identical       Status = "identical"
)

// Diff is the outcome for one key. Values and lines are set only for the
// sides the key is present in; a zero line means absent.
type Diff struct {
	Key         string  `json:"key"`
	Status      Status  `json:"status"`
	FirstValue  *string `json:"firstValue,omitempty"`
	SecondValue *string `json:"secondValue,omitempty"`
	FirstLine   int     `json:"firstLine,omitempty"`
	SecondLine  int     `json:"secondLine,omitempty"`
}

// Value returns the value recorded for the first or second side.
func (d Diff) Value(second bool) (string, bool) {
	v := d.FirstValue
	if second {
		v = d.SecondValue
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

type Result struct {
	FirstFile       string `json:"firstFile"`
	SecondFile      string `json:"secondFile"`
	MissingInFirst  []Diff `json:"missingInFirst"`
	MissingInSecond []Diff `json:"missingInSecond"`
	Different       []Diff `json:"different"`
	Identical       []Diff `json:"identical"`
	TotalFirst      int    `json:"totalFirst"`
	TotalSecond     int    `json:"totalSecond"`
}

type Summary struct {
	Total           int `json:"total"`
	Identical       int `json:"identical"`
	Different       int `json:"different"`
	MissingInFirst  int `json:"missingInFirst"`
	MissingInSecond int `json:"missingInSecond"`
}

// Compare partitions the union of keys of first and second into the four
// statuses. Values are compared byte for byte.
func Compare(first, second *envfile.File) *Result {
	r := &Result{
		FirstFile:       first.Path(),
		SecondFile:      second.Path(),
		MissingInFirst:  []Diff{},
		MissingInSecond: []Diff{},
		Different:       []Diff{},
		Identical:       []Diff{},
		TotalFirst:      first.Len(),
		TotalSecond:     second.Len(),
	}

	for _, key := range first.Keys() {
		a, _ := first.Get(key)
		b, ok := second.Get(key)
		if !ok {
			r.MissingInSecond = append(r.MissingInSecond, Diff{
				Key:        key,
				Status:     MissingInSecond,
				FirstValue: ptr(a.Value),
				FirstLine:  a.Line,
			})
			continue
		}

		d := Diff{
			Key:         key,
			FirstValue:  ptr(a.Value),
			SecondValue: ptr(b.Value),
			FirstLine:   a.Line,
			SecondLine:  b.Line,
		}
		if a.Value == b.Value {
			d.Status = Identical
			r.Identical = append(r.Identical, d)
		} else {
			d.Status = Different
			r.Different = append(r.Different, d)
		}
	}

	for _, key := range second.Keys() {
		if _, ok := first.Get(key); ok {
			continue
		}
		b, _ := second.Get(key)
		r.MissingInFirst = append(r.MissingInFirst, Diff{
			Key:         key,
			Status:      MissingInFirst,
			SecondValue: ptr(b.Value),
			SecondLine:  b.Line,
		})
	}

	sortDiffs(r.MissingInFirst, r.MissingInSecond, r.Different, r.Identical)
	return r
}

// HasDifferences reports whether any key is missing on either side or differs.
func (r *Result) HasDifferences() bool {
	return len(r.MissingInFirst) > 0 || len(r.MissingInSecond) > 0 || len(r.Different) > 0
}

func (r *Result) Summary() Summary {
	return Summary{
		Total:           len(r.MissingInFirst) + len(r.MissingInSecond) + len(r.Different) + len(r.Identical),
		Identical:       len(r.Identical),
		Different:       len(r.Different),
		MissingInFirst:  len(r.MissingInFirst),
		MissingInSecond: len(r.MissingInSecond),
	}
}

func ptr(s string) *string {
	return &s
}

// sortDiffs orders each slice with root-locale collation, falling back to
// byte order when the collator ranks two keys equal.
func sortDiffs(lists ...[]Diff) {
	c := collate.New(language.Und)
	for _, list := range lists {
		sort.Slice(list, func(i, j int) bool {
			return lessKey(c, list[i].Key, list[j].Key)
		})
	}
}

func lessKey(c *collate.Collator, a, b string) bool {
	if n := c.CompareString(a, b); n != 0 {
		return n < 0
	}
	return strings.Compare(a, b) < 0
}

// KeyLess is the ordering Compare uses for every result slice.
func KeyLess(a, b string) bool {
	return lessKey(collate.New(language.Und), a, b)
}
