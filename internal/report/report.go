// Package report renders comparison and validation results for people.
package report

import (
	"fmt"
	"io"

	"github.com/xmazu/envdiff/internal/compare"
	"github.com/xmazu/envdiff/internal/sensitive"
	"github.com/xmazu/envdiff/internal/tui"
)

type Options struct {
	ShowValues    bool
	ShowIdentical bool
	Detector      *sensitive.Detector
}

func (o Options) detector() *sensitive.Detector {
	if o.Detector == nil {
		return sensitive.NewDetector()
	}
	return o.Detector
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) blank() {
	p.line("")
}

// Comparison writes the human-readable report for r.
func Comparison(w io.Writer, r *compare.Result, opts Options) error {
	p := &printer{w: w}
	det := opts.detector()

	p.blank()
	p.line("%s", tui.Header("Environment Comparison"))
	p.line("%s", tui.Divider())
	p.blank()
	p.line("%s", tui.Muted("Comparing:"))
	p.line("  1. %s", r.FirstFile)
	p.line("  2. %s", r.SecondFile)
	p.blank()

	if !r.HasDifferences() {
		p.line("%s", tui.Success("Files are identical!"))
		p.line("%s", tui.Muted(fmt.Sprintf("   %d variables match perfectly.", len(r.Identical))))
		p.blank()
		return p.err
	}

	if len(r.MissingInFirst) > 0 {
		p.line("%s", tui.Error(fmt.Sprintf("Missing in %s:", r.FirstFile)))
		for _, d := range r.MissingInFirst {
			p.line("   • %s", tui.Error(d.Key))
			if v, hidden := missingValue(d, true, opts.ShowValues, det); !hidden {
				p.line("     %s %s", tui.Muted("Value in file 2:"), v)
			}
		}
		p.blank()
	}

	if len(r.MissingInSecond) > 0 {
		p.line("%s", tui.Warning(fmt.Sprintf("Missing in %s:", r.SecondFile)))
		for _, d := range r.MissingInSecond {
			p.line("   • %s", tui.Warning(d.Key))
			if v, hidden := missingValue(d, false, opts.ShowValues, det); !hidden {
				p.line("     %s %s", tui.Muted("Value in file 1:"), v)
			}
		}
		p.blank()
	}

	if len(r.Different) > 0 {
		p.line("%s", tui.Changed("Different values:"))
		for _, d := range r.Different {
			p.line("   • %s", tui.Changed(d.Key))
			p.line("     %s %s", tui.Muted("File 1:"), displayValue(d, false, opts.ShowValues, det))
			p.line("     %s %s", tui.Muted("File 2:"), displayValue(d, true, opts.ShowValues, det))
		}
		p.blank()
	}

	if opts.ShowIdentical && len(r.Identical) > 0 {
		p.line("%s", tui.Success(fmt.Sprintf("Identical (%d variables):", len(r.Identical))))
		for _, d := range r.Identical {
			p.line("   • %s", tui.Success(d.Key))
		}
		p.blank()
	} else if len(r.Identical) > 0 {
		p.line("%s", tui.Success(fmt.Sprintf("Identical: %d variables", len(r.Identical))))
		p.blank()
	}

	s := r.Summary()
	p.line("%s", tui.Divider())
	p.line("%s", tui.Label("Summary:"))
	p.line("%s", tui.Error(fmt.Sprintf("   Missing in file 1: %d", s.MissingInFirst)))
	p.line("%s", tui.Warning(fmt.Sprintf("   Missing in file 2: %d", s.MissingInSecond)))
	p.line("%s", tui.Changed(fmt.Sprintf("   Different values:  %d", s.Different)))
	p.line("%s", tui.Success(fmt.Sprintf("   Identical:         %d", s.Identical)))
	p.blank()
	return p.err
}

// Validation writes the human-readable report for v.
func Validation(w io.Writer, v *compare.Validation) error {
	p := &printer{w: w}

	p.blank()
	p.line("%s", tui.Header("Environment Validation"))
	p.line("%s", tui.Divider())
	p.blank()

	if len(v.Missing) > 0 {
		p.line("%s", tui.Error("Missing required variables:"))
		for _, d := range v.Missing {
			p.line("%s", tui.Error("   • "+d.Key))
		}
		p.blank()
	}

	if len(v.Extra) > 0 {
		if v.ExtraIsError() {
			p.line("%s", tui.Error("Extra variables not in example (strict mode):"))
		} else {
			p.line("%s", tui.Warning("Extra variables not in example:"))
		}
		for _, d := range v.Extra {
			p.line("%s", tui.Warning("   • "+d.Key))
		}
		p.blank()
	}

	if v.Valid {
		p.line("%s", tui.Success("Validation passed!"))
		p.line("%s", tui.Muted(fmt.Sprintf("   All %d required variables are present.", v.Present)))
		p.blank()
	}
	return p.err
}

// displayValue never changes the Diff; it only decides what is shown.
func displayValue(d compare.Diff, second, show bool, det *sensitive.Detector) string {
	v, ok := d.Value(second)
	if !ok || v == "" {
		return tui.Muted("(empty)")
	}
	if !show && det.IsSensitive(d.Key, v) {
		return tui.Muted(sensitive.Mask(v))
	}
	return v
}

func missingValue(d compare.Diff, second, show bool, det *sensitive.Detector) (string, bool) {
	v, _ := d.Value(second)
	if !show && det.IsSensitive(d.Key, v) {
		return "", true
	}
	return displayValue(d, second, show, det), false
}
