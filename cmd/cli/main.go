package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/limaJavier/z3fp/pkg/fixedpoint"
	"github.com/limaJavier/z3fp/pkg/stats"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes one query and writes the statistics to stdout on every path.
func run(args []string, stdout io.Writer) int {
	recorder := stats.NewRecorder()
	defer recorder.Print(stdout)

	// Seeded before parsing so a usage failure still reports a result
	recorder.Put(fixedpoint.ResultStat, fixedpoint.Unknown.Outcome())

	config, err := fixedpoint.ParseArgumentsWithUsage(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitSuccess
	} else if err != nil {
		log.Print(err)
		return exitUsage
	}

	solverConfig, err := loadSolverConfig(config.ConfigPath)
	if err != nil {
		log.Print(err)
		return exitFailure
	}

	workDir, err := os.Getwd()
	if err != nil {
		log.Printf("cannot determine working directory: %v", err)
		return exitFailure
	}

	frontend := fixedpoint.NewFrontend(recorder, workDir, solverConfig)
	if _, err := frontend.Run(config); err != nil {
		var launchErr *fixedpoint.LaunchError
		if errors.As(err, &launchErr) {
			log.Printf("solver could not be run: %v", launchErr)
		} else {
			log.Printf("an error occurred during the query: %v", err)
		}
		return exitFailure
	}

	return exitSuccess
}

// loadSolverConfig reads the explicit config file if given, failing when it is
// missing. Otherwise it reads the first config file found next to the
// executable, if any.
func loadSolverConfig(configPath string) (fixedpoint.SolverConfig, error) {
	if configPath == "" {
		execPath, err := os.Executable()
		if err != nil {
			return fixedpoint.SolverConfig{}, nil
		}
		configPath = fixedpoint.FindSolverConfig(path.Dir(execPath))
		if configPath == "" {
			return fixedpoint.SolverConfig{}, nil
		}
	}
	return fixedpoint.LoadSolverConfig(configPath)
}
