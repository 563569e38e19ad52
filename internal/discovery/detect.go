package discovery

import (
	"os"
	"path/filepath"
)

// ProjectType classifies a workspace root by its build files so a sensible
// layout can be suggested before any config exists.
type ProjectType string

const (
	ProjectMaven   ProjectType = "maven"
	ProjectGradle  ProjectType = "gradle"
	ProjectPython  ProjectType = "python"
	ProjectNodeJS  ProjectType = "nodejs"
	ProjectUnknown ProjectType = "unknown"
)

// DetectProjectType inspects well-known build files at the workspace root.
// Maven and Gradle take precedence over Node.js and Python markers since a
// JVM repo frequently also carries a package.json for tooling.
func DetectProjectType(root string) ProjectType {
	exists := func(name string) bool {
		_, err := os.Stat(filepath.Join(root, name))
		return err == nil
	}

	switch {
	case exists("pom.xml"):
		return ProjectMaven
	case exists("build.gradle"), exists("build.gradle.kts"):
		return ProjectGradle
	case exists("package.json"):
		return ProjectNodeJS
	case exists("requirements.txt"), exists("pyproject.toml"), exists("setup.py"):
		return ProjectPython
	default:
		return ProjectUnknown
	}
}
