package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Isolate points XDG_STATE_HOME at a temp dir and clears every TSSCAFFOLD_
// variable for the duration of the test. It returns a fresh temp directory
// to use as a project root.
func Isolate(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	t.Setenv("NO_COLOR", "1")

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "TSSCAFFOLD_") {
			// Setenv first so the original value is restored on cleanup
			t.Setenv(name, "")
			if err := os.Unsetenv(name); err != nil {
				t.Fatalf("unsetting %s: %v", name, err)
			}
		}
	}

	root := filepath.Join(base, "project")
	if err := os.Mkdir(root, 0755); err != nil {
		t.Fatalf("creating project root: %v", err)
	}
	return root
}
