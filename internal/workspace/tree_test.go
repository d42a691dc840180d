package workspace

import (
	"bytes"
	"testing"
)

func envFiles(rels ...string) []EnvFile {
	out := make([]EnvFile, 0, len(rels))
	for _, r := range rels {
		out = append(out, EnvFile{Path: "/repo/" + r, Rel: r, Kind: KindEnv})
	}
	return out
}

func TestBuildEnvTree(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		root := BuildEnvTree(envFiles(".env"))
		if root.Name != "." {
			t.Errorf("root.Name = %q, want '.'", root.Name)
		}
		if len(root.Children) != 1 {
			t.Fatalf("len(root.Children) = %d, want 1", len(root.Children))
		}
		if root.Children[0].File == nil || root.Children[0].File.Rel != ".env" {
			t.Errorf("child = %+v, want file .env", root.Children[0])
		}
	})

	t.Run("files before directories", func(t *testing.T) {
		root := BuildEnvTree(envFiles("apps/web/.env", ".env", "apps/.env"))
		if len(root.Children) != 2 {
			t.Fatalf("len(root.Children) = %d, want 2", len(root.Children))
		}
		if root.Children[0].Name != ".env" || root.Children[1].Name != "apps" {
			t.Errorf("children = %q, %q; want .env, apps", root.Children[0].Name, root.Children[1].Name)
		}
		apps := root.Children[1]
		if apps.File != nil {
			t.Error("apps should be a directory")
		}
		if len(apps.Children) != 2 || apps.Children[0].Name != ".env" || apps.Children[1].Name != "web" {
			t.Errorf("apps children unexpected: %+v", apps.Children)
		}
	})
}

func TestPrintEnvTree(t *testing.T) {
	root := BuildEnvTree(envFiles(".env", "apps/.env", "apps/.env.local"))
	var buf bytes.Buffer
	PrintEnvTree(&buf, root, nil)

	want := "├─ .env\n" +
		"└─ apps\n" +
		"   ├─ .env\n" +
		"   └─ .env.local\n"
	if buf.String() != want {
		t.Errorf("PrintEnvTree() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestPrintEnvTreeLabel(t *testing.T) {
	files := []EnvFile{{Path: "/repo/.env.example", Rel: ".env.example", Kind: KindTemplate}}
	var buf bytes.Buffer
	PrintEnvTree(&buf, BuildEnvTree(files), func(f *EnvFile) string {
		return f.Rel + " (template)"
	})
	if buf.String() != "└─ .env.example (template)\n" {
		t.Errorf("PrintEnvTree() = %q", buf.String())
	}
}
