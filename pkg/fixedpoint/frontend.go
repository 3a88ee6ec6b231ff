package fixedpoint

import (
	"log"
	"strings"

	"github.com/limaJavier/z3fp/pkg/stats"
)

const (
	ResultStat = "Result"
	TraceStat  = "Trace"
)

// Frontend runs one configured solver query and records its statistics.
type Frontend struct {
	Stats        *stats.Recorder
	Runner       *Runner
	WorkDir      string // Directory searched for a local solver binary
	SolverConfig SolverConfig
}

func NewFrontend(recorder *stats.Recorder, workDir string, solverConfig SolverConfig) *Frontend {
	return &Frontend{
		Stats:        recorder,
		Runner:       NewRunner(recorder),
		WorkDir:      workDir,
		SolverConfig: solverConfig,
	}
}

func (frontend *Frontend) Run(config RunConfiguration) (Verdict, error) {
	frontend.Stats.Put(ResultStat, Unknown.Outcome())

	executable := ResolveExecutable(frontend.WorkDir, frontend.SolverConfig)
	if executable == solverName {
		log.Print("Assuming z3 is in the executable path")
	} else {
		log.Printf("Using z3 at: %v", executable)
	}
	if !config.Preprocess {
		log.Print("No pre-processing")
	}
	log.Printf("Engine: %v", config.Engine)

	inv := BuildInvocation(config, executable)

	if config.Trace != "" {
		log.Printf("Enable trace: %v", strings.Join(TraceCategories(config.Trace), " "))
		frontend.Stats.Put(TraceStat, config.Trace)
	}
	log.Print(inv)

	output, err := frontend.Runner.Run(inv)
	if err != nil {
		return Unknown, err
	}

	verdict := Classify(output)
	log.Printf("Result: %v", verdict)
	frontend.Stats.Put(ResultStat, verdict.Outcome())

	return verdict, nil
}
