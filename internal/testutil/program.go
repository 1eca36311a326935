package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
)

// RequireShell aborts the calling test when /bin/sh is not available.
func RequireShell(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("skipping: sh not available")
	}
	return path
}

// FakeProgram writes an executable shell script standing in for the
// selection program and returns its path. The script body runs after the
// shebang line.
func FakeProgram(t *testing.T, body string) string {
	t.Helper()
	RequireShell(t)
	path := filepath.Join(t.TempDir(), "fake-rofi")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake program: %v", err)
	}
	return path
}

// RecordingProgram returns a fake program that saves its arguments (one per
// line) and its standard input next to the script, prints stdout and exits
// with code. The returned paths point at the recorded arguments and input.
func RecordingProgram(t *testing.T, stdout string, code int) (program, argsPath, inputPath string) {
	t.Helper()
	dir := t.TempDir()
	argsPath = filepath.Join(dir, "args")
	inputPath = filepath.Join(dir, "input")
	outPath := filepath.Join(dir, "stdout")
	if err := os.WriteFile(outPath, []byte(stdout), 0o644); err != nil {
		t.Fatalf("failed to write fake stdout: %v", err)
	}
	body := "for arg in \"$@\"; do printf '%s\\n' \"$arg\"; done > '" + argsPath + "'\n" +
		"cat > '" + inputPath + "'\n" +
		"cat '" + outPath + "'\n" +
		"exit " + strconv.Itoa(code)
	return FakeProgram(t, body), argsPath, inputPath
}
