package tool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileOptions configures the builtin file tools.
type FileOptions struct {
	// WorkDir resolves relative paths. Empty means the process working directory.
	WorkDir string
}

func resolvePath(workDir, path string) string {
	if filepath.IsAbs(path) || workDir == "" {
		return path
	}
	return filepath.Join(workDir, path)
}

// NewReadTool returns the builtin "read" tool: it reads a file and returns
// its contents, with an "(empty file)" sentinel for zero-length files.
func NewReadTool(optFns ...func(o *FileOptions)) *FunctionTool {
	opts := FileOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	return NewFunctionTool(
		"read",
		"Read the contents of a file",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{"type": "string", "description": "Path to the file to read"},
			},
			"required": []string{"path"},
		},
		func(_ context.Context, args map[string]any) (string, error) {
			path, _ := StringArg(args, "path")
			data, err := os.ReadFile(resolvePath(opts.WorkDir, path))
			if err != nil {
				if os.IsNotExist(err) {
					return "", fmt.Errorf("file not found: %s", path)
				}
				return "", fmt.Errorf("reading %s: %w", path, err)
			}
			if len(data) == 0 {
				return "(empty file)", nil
			}
			return string(data), nil
		},
	)
}

// NewWriteTool returns the builtin "write" tool: it creates or overwrites a
// file, creating missing parent directories, and reports the bytes written.
func NewWriteTool(optFns ...func(o *FileOptions)) *FunctionTool {
	opts := FileOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	return NewFunctionTool(
		"write",
		"Write content to a file (creates or overwrites)",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path":    map[string]any{"type": "string", "description": "Path to the file to write"},
				"content": map[string]any{"type": "string", "description": "Content to write to the file"},
			},
			"required": []string{"path", "content"},
		},
		func(_ context.Context, args map[string]any) (string, error) {
			path, _ := StringArg(args, "path")
			content, _ := StringArg(args, "content")
			resolved := resolvePath(opts.WorkDir, path)
			if dir := filepath.Dir(resolved); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return "", fmt.Errorf("creating directory for %s: %w", path, err)
				}
			}
			if err := os.WriteFile(resolved, []byte(content), 0o644); err != nil {
				return "", fmt.Errorf("writing %s: %w", path, err)
			}
			return fmt.Sprintf("Successfully wrote %d bytes to %s", len(content), path), nil
		},
	)
}

// NewEditTool returns the builtin "edit" tool: a literal find-and-replace
// that requires its target to occur exactly once. Zero occurrences is a
// not-found error, more than one an ambiguity error; the file is left
// untouched on failure.
func NewEditTool(optFns ...func(o *FileOptions)) *FunctionTool {
	opts := FileOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	return NewFunctionTool(
		"edit",
		"Edit a file by replacing old_string with new_string. The old_string must match exactly once.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path":       map[string]any{"type": "string", "description": "Path to the file to edit"},
				"old_string": map[string]any{"type": "string", "description": "The exact string to find and replace"},
				"new_string": map[string]any{"type": "string", "description": "The string to replace it with"},
			},
			"required": []string{"path", "old_string", "new_string"},
		},
		func(_ context.Context, args map[string]any) (string, error) {
			path, _ := StringArg(args, "path")
			oldString, _ := StringArg(args, "old_string")
			newString, _ := StringArg(args, "new_string")

			resolved := resolvePath(opts.WorkDir, path)
			data, err := os.ReadFile(resolved)
			if err != nil {
				if os.IsNotExist(err) {
					return "", fmt.Errorf("file not found: %s", path)
				}
				return "", fmt.Errorf("reading %s: %w", path, err)
			}

			content := string(data)
			count := strings.Count(content, oldString)
			if count == 0 {
				return "", fmt.Errorf("old_string not found in %s", path)
			}
			if count > 1 {
				return "", fmt.Errorf("ambiguous match: found %d occurrences in %s, make the search string more specific", count, path)
			}

			updated := strings.Replace(content, oldString, newString, 1)
			if err := os.WriteFile(resolved, []byte(updated), 0o644); err != nil {
				return "", fmt.Errorf("writing %s: %w", path, err)
			}
			return fmt.Sprintf("Successfully edited %s", path), nil
		},
	)
}
