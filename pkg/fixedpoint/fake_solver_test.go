package fixedpoint

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// writeFakeSolver writes an executable shell script named name into dir that
// stores its arguments in dir/args, prints output and exits with exitCode.
func writeFakeSolver(t *testing.T, dir, name, output string, exitCode int) string {
	t.Helper()
	script := "#!/bin/sh\n" +
		"printf '%s\\n' \"$@\" > '" + filepath.Join(dir, "args") + "'\n" +
		"printf '%s' '" + output + "'\n" +
		"echo 'solver diagnostics' >&2\n" +
		"exit " + strconv.Itoa(exitCode) + "\n"

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("cannot write fake solver: %v", err)
	}
	return path
}

func readFakeSolverArgs(t *testing.T, dir string) []string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, "args"))
	if err != nil {
		t.Fatalf("cannot read fake solver arguments: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}
