package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
}

func TestDetectProjectType(t *testing.T) {
	tests := []struct {
		marker string
		want   ProjectType
	}{
		{"pom.xml", ProjectMaven},
		{"build.gradle", ProjectGradle},
		{"build.gradle.kts", ProjectGradle},
		{"package.json", ProjectNodeJS},
		{"requirements.txt", ProjectPython},
		{"pyproject.toml", ProjectPython},
		{"setup.py", ProjectPython},
	}
	for _, tc := range tests {
		dir := t.TempDir()
		touch(t, dir, tc.marker)
		assert.Equal(t, tc.want, DetectProjectType(dir), "marker %s", tc.marker)
	}
}

func TestDetectUnknown(t *testing.T) {
	assert.Equal(t, ProjectUnknown, DetectProjectType(t.TempDir()))
}

func TestDetectMavenWinsOverNode(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "pom.xml")
	touch(t, dir, "package.json")
	assert.Equal(t, ProjectMaven, DetectProjectType(dir))
}

func TestDiscoverEndToEnd(t *testing.T) {
	root := t.TempDir()
	promptDir := filepath.Join(root, "prompts")
	varDir := filepath.Join(root, "prompts", "vars")
	writeFile(t, filepath.Join(promptDir, "system-eval.txt"))
	writeFile(t, filepath.Join(promptDir, "user-eval.txt"))
	writeFile(t, filepath.Join(promptDir, "orphan.txt"))
	writeFile(t, filepath.Join(varDir, "eval.yaml"))

	d := New(newTestScanner(), NewMatcher(true))
	sets, warnings := d.Discover(promptDir, varDir)

	require.Len(t, sets, 2)
	assert.Equal(t, "eval", sets[0].Name)
	assert.False(t, sets[0].IsOrphaned)
	assert.Equal(t, []string{"system", "user"}, sets[0].RoleKeys())
	assert.Equal(t, "orphan", sets[1].Name)
	assert.True(t, sets[1].IsOrphaned)
	assert.NotEmpty(t, warnings)
}
