package compare

import (
	"github.com/xmazu/envdiff/internal/envfile"
)

// Validation reads a comparison of template against concrete as a check of
// the concrete file: template keys it lacks are missing, keys the template
// never declared are extra.
type Validation struct {
	Template string  `json:"template"`
	File     string  `json:"file"`
	Strict   bool    `json:"strict"`
	Missing  []Diff  `json:"missing"`
	Extra    []Diff  `json:"extra"`
	Present  int     `json:"present"`
	Valid    bool    `json:"valid"`
	Result   *Result `json:"-"`
}

func Validate(template, concrete *envfile.File, strict bool) *Validation {
	return NewValidation(Compare(template, concrete), strict)
}

// NewValidation derives a Validation from an existing Compare(template, concrete) result.
func NewValidation(r *Result, strict bool) *Validation {
	v := &Validation{
		Template: r.FirstFile,
		File:     r.SecondFile,
		Strict:   strict,
		Missing:  r.MissingInSecond,
		Extra:    r.MissingInFirst,
		Present:  len(r.Identical) + len(r.Different),
		Result:   r,
	}
	v.Valid = len(v.Missing) == 0 && !(strict && len(v.Extra) > 0)
	return v
}

// ExtraIsError reports whether extra keys count as failures.
func (v *Validation) ExtraIsError() bool {
	return v.Strict && len(v.Extra) > 0
}
