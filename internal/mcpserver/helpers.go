package mcpserver

import (
	"encoding/json"
	"path/filepath"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func successResult(data interface{}) *mcpsdk.CallToolResult {
	b, _ := json.Marshal(data)
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(b)}},
	}
}

func errorResult(msg string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "error: " + msg}},
		IsError: true,
	}
}

// resolve joins a relative path onto workdir.
func resolve(workdir, path string) string {
	if workdir == "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workdir, path)
}
