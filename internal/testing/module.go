package testing

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateTestModule writes a Go module with the given files into a temporary
// directory and returns its path. The directory is removed when the test ends.
// files maps slash separated paths to contents; go.mod is added unless present.
func CreateTestModule(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	if _, ok := files["go.mod"]; !ok {
		writeFile(t, dir, "go.mod", "module example.com/shapes\n\ngo 1.24\n")
	}
	for name, content := range files {
		writeFile(t, dir, name, content)
	}
	return dir
}

// ReadTestFile returns the contents of name inside dir.
func ReadTestFile(t *testing.T, dir, name string) string {
	t.Helper()

	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(b)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}
