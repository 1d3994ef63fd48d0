package tool

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTool(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), nil, 0o644))

	read := NewReadTool(func(o *FileOptions) { o.WorkDir = dir })

	out, err := read.Call(context.Background(), map[string]any{"path": "a.txt"})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	out, err = read.Call(context.Background(), map[string]any{"path": "empty.txt"})
	require.NoError(t, err)
	assert.Equal(t, "(empty file)", out)

	_, err = read.Call(context.Background(), map[string]any{"path": "missing.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found: missing.txt")
}

func TestWriteTool_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	write := NewWriteTool(func(o *FileOptions) { o.WorkDir = dir })

	out, err := write.Call(context.Background(), map[string]any{
		"path":    "nested/deep/b.txt",
		"content": "content",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "7 bytes")

	data, err := os.ReadFile(filepath.Join(dir, "nested", "deep", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestEditTool_RequiresExactlyOneOccurrence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.txt")
	edit := NewEditTool(func(o *FileOptions) { o.WorkDir = dir })

	require.NoError(t, os.WriteFile(path, []byte("alpha beta alpha"), 0o644))

	// Two occurrences: ambiguity error, file byte-for-byte unchanged.
	_, err := edit.Call(context.Background(), map[string]any{
		"path": "c.txt", "old_string": "alpha", "new_string": "gamma",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous match: found 2 occurrences")
	data, _ := os.ReadFile(path)
	assert.Equal(t, "alpha beta alpha", string(data))

	// Zero occurrences: not-found error.
	_, err = edit.Call(context.Background(), map[string]any{
		"path": "c.txt", "old_string": "delta", "new_string": "gamma",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "old_string not found")

	// Exactly one occurrence: literal substitution.
	out, err := edit.Call(context.Background(), map[string]any{
		"path": "c.txt", "old_string": "beta", "new_string": "gamma",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully edited")
	data, _ = os.ReadFile(path)
	assert.Equal(t, "alpha gamma alpha", string(data))
}

func TestEditTool_MissingFile(t *testing.T) {
	edit := NewEditTool(func(o *FileOptions) { o.WorkDir = t.TempDir() })
	_, err := edit.Call(context.Background(), map[string]any{
		"path": "nope.txt", "old_string": "a", "new_string": "b",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found: nope.txt")
}
