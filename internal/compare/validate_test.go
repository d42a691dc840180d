package compare

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	template := parse("DB_URL=\nAPI_KEY=\nPORT=3000\n", ".env.example")

	tests := []struct {
		name        string
		concrete    string
		strict      bool
		wantValid   bool
		wantMissing []string
		wantExtra   []string
		wantPresent int
	}{
		{"all present", "DB_URL=x\nAPI_KEY=y\nPORT=3000\n", false, true, []string{}, []string{}, 3},
		{"missing required", "DB_URL=x\n", false, false, []string{"API_KEY", "PORT"}, []string{}, 1},
		{"extra is a warning", "DB_URL=x\nAPI_KEY=y\nPORT=1\nDEBUG=1\n", false, true, []string{}, []string{"DEBUG"}, 3},
		{"extra fails in strict mode", "DB_URL=x\nAPI_KEY=y\nPORT=1\nDEBUG=1\n", true, false, []string{}, []string{"DEBUG"}, 3},
		{"strict without extras passes", "DB_URL=x\nAPI_KEY=y\nPORT=1\n", true, true, []string{}, []string{}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(template, parse(tt.concrete, ".env"), tt.strict)

			if v.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", v.Valid, tt.wantValid)
			}
			if diff := cmp.Diff(tt.wantMissing, keys(v.Missing)); diff != "" {
				t.Errorf("Missing mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantExtra, keys(v.Extra)); diff != "" {
				t.Errorf("Extra mismatch (-want +got):\n%s", diff)
			}
			if v.Present != tt.wantPresent {
				t.Errorf("Present = %d, want %d", v.Present, tt.wantPresent)
			}
			if v.Template != ".env.example" || v.File != ".env" {
				t.Errorf("Template, File = %q, %q", v.Template, v.File)
			}
		})
	}
}

func TestValidateReusesCompare(t *testing.T) {
	template := parse("A=1\nB=2\n", "t")
	concrete := parse("B=2\nC=3\n", "c")

	r := Compare(template, concrete)
	v := Validate(template, concrete, true)

	if diff := cmp.Diff(r, v.Result); diff != "" {
		t.Errorf("Validate result differs from Compare (-compare +validate):\n%s", diff)
	}
	if !v.ExtraIsError() {
		t.Error("ExtraIsError() = false, want true")
	}
}
