package fixedpoint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/limaJavier/z3fp/pkg/stats"
)

const QueryTimer = "Query"

type Runner struct {
	Stats  *stats.Recorder
	Stderr io.Writer // Solver's standard error is forwarded here; nil discards it
}

func NewRunner(recorder *stats.Recorder) *Runner {
	return &Runner{Stats: recorder, Stderr: os.Stderr}
}

// Run launches inv, waits for it to exit and returns its whole standard
// output. The exit status of the solver is ignored.
func (runner *Runner) Run(inv Invocation) (string, error) {
	defer runner.Stats.Timer(QueryTimer)()

	if len(inv) == 0 {
		return "", &LaunchError{Err: fmt.Errorf("empty invocation")}
	}

	cmd := exec.Command(inv[0], inv[1:]...)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	cmd.Stderr = runner.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", &LaunchError{Executable: inv[0], Err: err}
	}

	return stdOut.String(), nil
}
