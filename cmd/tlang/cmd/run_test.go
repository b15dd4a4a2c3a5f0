package cmd

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestRunScriptExecutesAPipelineScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tab")
	script := "p = pipeline { a = 1; b = a + 1 }\nprintln(p.b)\n"
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	oldUnsafe, oldMode := runUnsafe, runMode
	defer func() { runUnsafe, runMode = oldUnsafe, oldMode }()
	runUnsafe, runMode = false, "repl"

	out := captureStdout(t, func() {
		if err := runScript(runCmd, []string{path}); err != nil {
			t.Fatalf("runScript: %v", err)
		}
	})

	if strings.TrimSpace(out) != "2" {
		t.Fatalf("script printed %q, want \"2\"", out)
	}
}
