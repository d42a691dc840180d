package mcpserver

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/xmazu/envdiff/internal/compare"
	"github.com/xmazu/envdiff/internal/config"
	"github.com/xmazu/envdiff/internal/envfile"
	"github.com/xmazu/envdiff/internal/logging"
	"github.com/xmazu/envdiff/internal/sensitive"
	"github.com/xmazu/envdiff/internal/workspace"
)

type CompareArgs struct {
	First      string `json:"first" jsonschema:"path of the first dotenv file (e.g. .env)"`
	Second     string `json:"second" jsonschema:"path of the second dotenv file (e.g. .env.production)"`
	ShowValues bool   `json:"show_values,omitempty" jsonschema:"return sensitive values unmasked"`
	Workdir    string `json:"workdir,omitempty" jsonschema:"directory relative paths are resolved against (default: current)"`
}

type ValidateArgs struct {
	File       string `json:"file,omitempty" jsonschema:"dotenv file to validate (default: .env)"`
	Template   string `json:"template,omitempty" jsonschema:"template it must satisfy (default: .env.example)"`
	Strict     bool   `json:"strict,omitempty" jsonschema:"treat variables missing from the template as failures"`
	ShowValues bool   `json:"show_values,omitempty" jsonschema:"return sensitive values unmasked"`
	Workdir    string `json:"workdir,omitempty" jsonschema:"directory relative paths are resolved against (default: current)"`
}

type ListArgs struct {
	Dir     string `json:"dir,omitempty" jsonschema:"directory to search (default: current)"`
	Pattern string `json:"pattern,omitempty" jsonschema:"doublestar glob on relative paths (e.g. apps/**)"`
}

func NewServer(version string) *mcpsdk.Server {
	if version == "" {
		version = "dev"
	}
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "envdiff",
		Version: version,
	}, nil)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "compare_env_files",
		Description: "Compare two dotenv files. Returns the variables missing from each file, the variables whose values differ and the identical ones, sorted by key. Values of sensitive variables are masked unless show_values is set.",
	}, handleCompare)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "validate_env_file",
		Description: "Check a dotenv file against its template (e.g. .env against .env.example). Returns the missing required variables, the extra variables and whether the file is valid. In strict mode extra variables make the file invalid.",
	}, handleValidate)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list_env_files",
		Description: "List dotenv files and templates under a directory, with the template each file should be validated against. Never reads values.",
	}, handleList)

	return server
}

// Run serves the tools on stdio until ctx is done or the client disconnects.
func Run(ctx context.Context, version string) error {
	return NewServer(version).Run(ctx, &mcpsdk.StdioTransport{})
}

func handleCompare(ctx context.Context, req *mcpsdk.CallToolRequest, args CompareArgs) (*mcpsdk.CallToolResult, any, error) {
	if args.First == "" || args.Second == "" {
		return errorResult("first and second are required"), nil, nil
	}
	first, second, cfg, err := loadPair(ctx, resolve(args.Workdir, args.First), resolve(args.Workdir, args.Second))
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	result := compare.Compare(first, second)
	if !args.ShowValues {
		result = maskResult(result, cfg.Detector())
	}
	return successResult(map[string]any{
		"result":         result,
		"summary":        result.Summary(),
		"hasDifferences": result.HasDifferences(),
	}), nil, nil
}

func handleValidate(ctx context.Context, req *mcpsdk.CallToolRequest, args ValidateArgs) (*mcpsdk.CallToolResult, any, error) {
	file := args.File
	if file == "" {
		file = ".env"
	}
	template := args.Template
	if template == "" {
		template = ".env.example"
	}
	tmpl, concrete, cfg, err := loadPair(ctx, resolve(args.Workdir, template), resolve(args.Workdir, file))
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	result := compare.Compare(tmpl, concrete)
	if !args.ShowValues {
		result = maskResult(result, cfg.Detector())
	}
	v := compare.NewValidation(result, args.Strict || cfg.Strict)
	return successResult(v), nil, nil
}

type listedFile struct {
	Path string `json:"path"`
	Rel  string `json:"rel"`
	Kind string `json:"kind"`
}

type listedPair struct {
	Template string `json:"template"`
	File     string `json:"file"`
}

func handleList(ctx context.Context, req *mcpsdk.CallToolRequest, args ListArgs) (*mcpsdk.CallToolResult, any, error) {
	dir := args.Dir
	if dir == "" {
		dir = "."
	}
	files, err := workspace.ListEnvFiles(dir, args.Pattern)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	listed := make([]listedFile, 0, len(files))
	for _, f := range files {
		listed = append(listed, listedFile{Path: f.Path, Rel: f.Rel, Kind: f.Kind.String()})
	}
	pairs := make([]listedPair, 0)
	for _, p := range workspace.Pairs(files) {
		pairs = append(pairs, listedPair{Template: p.Template.Rel, File: p.Env.Rel})
	}
	return successResult(map[string]any{"files": listed, "pairs": pairs}), nil, nil
}

// loadPair reads both files with the config that applies to first.
func loadPair(ctx context.Context, first, second string) (*envfile.File, *envfile.File, *config.Config, error) {
	cfg, err := config.LoadFor(first)
	if err != nil {
		return nil, nil, nil, err
	}
	a, b, err := envfile.LoadPair(ctx, first, second)
	if err != nil {
		return nil, nil, nil, err
	}
	logging.FromContext(ctx).Debug("mcp loaded files", "first", first, "second", second, "config", cfg.Path())
	return cfg.Filter(a), cfg.Filter(b), cfg, nil
}

// maskResult returns a copy of r with sensitive values masked.
func maskResult(r *compare.Result, det *sensitive.Detector) *compare.Result {
	out := *r
	out.MissingInFirst = maskDiffs(r.MissingInFirst, det)
	out.MissingInSecond = maskDiffs(r.MissingInSecond, det)
	out.Different = maskDiffs(r.Different, det)
	out.Identical = maskDiffs(r.Identical, det)
	return &out
}

func maskDiffs(diffs []compare.Diff, det *sensitive.Detector) []compare.Diff {
	out := make([]compare.Diff, len(diffs))
	for i, d := range diffs {
		d.FirstValue = maskValue(d.Key, d.FirstValue, det)
		d.SecondValue = maskValue(d.Key, d.SecondValue, det)
		out[i] = d
	}
	return out
}

func maskValue(key string, v *string, det *sensitive.Detector) *string {
	if v == nil || *v == "" || !det.IsSensitive(key, *v) {
		return v
	}
	masked := sensitive.Mask(*v)
	return &masked
}
