package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dpshade/prompt-workbench/internal/errors"
	"github.com/dpshade/prompt-workbench/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveValueVariable(t *testing.T) {
	r := NewVariableResolver(t.TempDir())

	out, err := r.Resolve(models.ValueVariable("python"))
	require.NoError(t, err)
	assert.Equal(t, "python", out)
}

func TestResolveFileVariableRelative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snippet.txt"), []byte("def main(): pass"), 0644))

	r := NewVariableResolver(dir)
	out, err := r.Resolve(models.FileVariable("snippet.txt"))
	require.NoError(t, err)
	assert.Equal(t, "def main(): pass", out)
}

func TestResolveFileVariableAbsolute(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abs.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	r := NewVariableResolver(t.TempDir()) // different base; absolute path must still win
	out, err := r.Resolve(models.FileVariable(path))
	require.NoError(t, err)
	assert.Equal(t, "content", out)
}

func TestResolveFileVariableMissing(t *testing.T) {
	r := NewVariableResolver(t.TempDir())

	_, err := r.Resolve(models.FileVariable("does-not-exist.txt"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeFileNotFound))
}

func TestResolveAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "code.py"), []byte("print('hi')"), 0644))

	r := NewVariableResolver(dir)
	values, err := r.ResolveAll(map[string]models.Variable{
		"code": models.FileVariable("code.py"),
		"lang": models.ValueVariable("python"),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"code": "print('hi')",
		"lang": "python",
	}, values)
}

func TestResolveAllAggregatesFailures(t *testing.T) {
	r := NewVariableResolver(t.TempDir())

	_, err := r.ResolveAll(map[string]models.Variable{
		"good":  models.ValueVariable("fine"),
		"gone":  models.FileVariable("missing-a.txt"),
		"gone2": models.FileVariable("missing-b.txt"),
	})
	require.Error(t, err)

	var resolveErr *errors.ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, []string{"gone", "gone2"}, resolveErr.Names(),
		"every failing variable is reported, not just the first")
}

func TestResolveAllEmpty(t *testing.T) {
	r := NewVariableResolver(t.TempDir())

	values, err := r.ResolveAll(nil)
	require.NoError(t, err)
	assert.Empty(t, values)
}
