package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
}

func newTestScanner() *Scanner {
	return NewScanner(".txt", ".yaml", DefaultNamingRule())
}

func TestParseStem(t *testing.T) {
	rule := DefaultNamingRule()

	tests := []struct {
		stem string
		role string
		name string
	}{
		{"system-evaluator", "system", "evaluator"},
		{"user-evaluator", "user", "evaluator"},
		{"assistant-chat", "assistant", "chat"},
		{"context-rag", "context", "rag"},
		{"evaluator", "", "evaluator"},
		{"data_analysis", "", "data_analysis"},
		{"banana-split", "", "banana-split"},
		{"system-multi-part-name", "system", "multi-part-name"},
		{"", "", ""},
	}
	for _, tc := range tests {
		role, name := rule.ParseStem(tc.stem)
		assert.Equal(t, tc.role, role, "stem %q", tc.stem)
		assert.Equal(t, tc.name, name, "stem %q", tc.stem)
	}
}

func TestScanTemplates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "system-eval.txt"))
	writeFile(t, filepath.Join(dir, "user-eval.txt"))
	writeFile(t, filepath.Join(dir, "solo.txt"))
	writeFile(t, filepath.Join(dir, "notes.md")) // wrong extension

	files := newTestScanner().ScanTemplates(dir)
	require.Len(t, files, 3)

	byStem := make(map[string]string)
	for _, f := range files {
		byStem[f.Stem] = f.Role
	}
	assert.Equal(t, "system", byStem["system-eval"])
	assert.Equal(t, "user", byStem["user-eval"])
	assert.Equal(t, "", byStem["solo"])
}

func TestScanTemplatesRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "nested", "deep", "system-inner.txt"))

	files := newTestScanner().ScanTemplates(dir)
	require.Len(t, files, 1)
	assert.Equal(t, "inner", files[0].Name)
}

func TestScanExcludesHidden(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".hidden.txt"))
	writeFile(t, filepath.Join(dir, ".hidden", "file.txt"))
	writeFile(t, filepath.Join(dir, "visible.txt"))

	files := newTestScanner().ScanTemplates(dir)
	require.Len(t, files, 1)
	assert.Equal(t, "visible", files[0].Stem)
}

func TestScanMissingDir(t *testing.T) {
	s := newTestScanner()
	assert.Empty(t, s.ScanTemplates(filepath.Join(t.TempDir(), "nope")))
	assert.Empty(t, s.ScanVarConfigs(filepath.Join(t.TempDir(), "nope")))
}

func TestScanVarConfigs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "eval.yaml"))
	writeFile(t, filepath.Join(dir, "legacy.vars"))
	writeFile(t, filepath.Join(dir, "old.yml"))

	files := newTestScanner().ScanVarConfigs(dir)
	require.Len(t, files, 3)

	names := make(map[string]bool)
	for _, f := range files {
		names[f.Name] = true
	}
	assert.True(t, names["eval"])
	assert.True(t, names["legacy"])
	assert.True(t, names["old"])
}

func TestScanVarConfigsDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "eval.yaml"))
	writeFile(t, filepath.Join(dir, "eval.vars"))

	files := newTestScanner().ScanVarConfigs(dir)
	require.Len(t, files, 1, "one logical name, first extension wins")
	assert.Equal(t, "eval", files[0].Name)
	assert.Equal(t, ".yaml", filepath.Ext(files[0].Path), "configured extension scanned first")
}

func TestScanVarConfigsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yaml"))
	writeFile(t, filepath.Join(dir, "a.yaml"))
	writeFile(t, filepath.Join(dir, "c.yaml"))

	s := newTestScanner()
	first := s.ScanVarConfigs(dir)
	second := s.ScanVarConfigs(dir)
	assert.Equal(t, first, second)
}
