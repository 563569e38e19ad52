// Package clipboard copies rendered prompt text to the system clipboard by
// shelling out to the platform utility. No cgo, no daemon: the text is piped
// to pbcopy, clip, or whichever of xclip/xsel/wl-copy is installed.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// tools lists the candidate commands per platform, tried in order.
var tools = map[string][][]string{
	"darwin":  {{"pbcopy"}},
	"windows": {{"cmd", "/c", "clip"}},
	"linux": {
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
		{"wl-copy"},
	},
}

// Copy pipes text into the first available clipboard utility.
func Copy(text string) error {
	candidates, ok := tools[runtime.GOOS]
	if !ok {
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}

	var lastErr error
	for _, argv := range candidates {
		if !commandAvailable(argv[0]) {
			continue
		}
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			lastErr = fmt.Errorf("%s failed: %w", argv[0], err)
			continue
		}
		return nil
	}

	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("no clipboard utility found (%s)", installHint())
}

// Available reports whether any clipboard utility can be found.
func Available() bool {
	for _, argv := range tools[runtime.GOOS] {
		if commandAvailable(argv[0]) {
			return true
		}
	}
	return false
}

func commandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func installHint() string {
	if runtime.GOOS == "linux" {
		return "install xclip, xsel, or wl-clipboard"
	}
	return "expected the platform default to be present"
}
