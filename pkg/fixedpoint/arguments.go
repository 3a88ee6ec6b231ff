package fixedpoint

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	DefaultEngine = "spacer"
	usageLine     = "usage: z3fp [flags] BENCHMARK"
)

// RunConfiguration holds the front-end options of a single invocation.
type RunConfiguration struct {
	File            string
	Preprocess      bool
	Validate        bool
	Answer          bool
	DFS             bool
	UseUTVPI        bool
	EagerReachCheck bool
	PrintStats      bool
	Engine          string
	Verbose         int
	FromLevel       int
	OrderChildren   int
	Trace           string
	ConfigPath      string
}

// presenceFlag is a boolean flag that can only be switched on by naming it.
type presenceFlag bool

func (f *presenceFlag) String() string {
	if f == nil {
		return "false"
	}
	return strconv.FormatBool(bool(*f))
}

func (f *presenceFlag) IsBoolFlag() bool { return true }

func (f *presenceFlag) Set(value string) error {
	if value != "true" {
		return fmt.Errorf("flag does not take a value")
	}
	*f = true
	return nil
}

// decimalFlag accepts base-10 integers only.
type decimalFlag int

func (f *decimalFlag) String() string {
	if f == nil {
		return "0"
	}
	return strconv.Itoa(int(*f))
}

func (f *decimalFlag) Set(value string) error {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("not a decimal integer")
	}
	*f = decimalFlag(parsed)
	return nil
}

// ParseArguments builds a RunConfiguration from the command-line tokens that
// follow the program name. Flags may appear before or after BENCHMARK.
func ParseArguments(args []string) (RunConfiguration, error) {
	return parseArguments(args, io.Discard)
}

// ParseArgumentsWithUsage behaves like ParseArguments but writes the flag
// usage to output when parsing fails or help is requested.
func ParseArgumentsWithUsage(args []string, output io.Writer) (RunConfiguration, error) {
	return parseArguments(args, output)
}

func parseArguments(args []string, output io.Writer) (RunConfiguration, error) {
	var pp, validate, answer, useUTVPI, eagerReachCheck, printStats, dfs presenceFlag
	var verbose, fromLevel, orderChildren decimalFlag
	var config RunConfiguration

	flags := flag.NewFlagSet("z3fp", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), usageLine)
		flags.PrintDefaults()
	}

	flags.Var(&pp, "pp", "Enable default pre-processing")
	flags.Var(&validate, "validate", "Enable validation")
	flags.StringVar(&config.Trace, "trace", "", "Trace levels to enable, colon separated (spacer, pdr, dl, smt-relation, etc.)")
	flags.Var(&answer, "answer", "Print answer")
	flags.StringVar(&config.Engine, "engine", DefaultEngine, "Datalog engine (pdr/spacer)")
	flags.Var(&verbose, "verbose", "Z3 verbosity")
	flags.Var(&useUTVPI, "use-utvpi", "Use utvpi/diff-logic solvers, if applicable")
	flags.Var(&eagerReachCheck, "eager-reach-check", "Eagerly use reachability facts for every local query")
	flags.Var(&fromLevel, "from-lvl", "Start level for query predicate")
	flags.Var(&printStats, "print-stats", "Print solver statistics")
	flags.Var(&dfs, "dfs", "Use dfs instead of bfs")
	flags.Var(&orderChildren, "order-children", "0 (rtol), 1 (ltor)")
	flags.StringVar(&config.ConfigPath, "config", "", "Path to a solver config file (json or yaml)")

	// The flag package stops at the first positional argument, so parse again
	// after each one to accept flags placed after BENCHMARK. Everything after
	// a "--" terminator is positional.
	var positionals []string
	for len(args) > 0 {
		if err := flags.Parse(args); err != nil {
			return RunConfiguration{}, &UsageError{Err: err}
		}
		remaining := flags.Args()
		if consumed := args[:len(args)-len(remaining)]; endsWithTerminator(flags, consumed) {
			positionals = append(positionals, remaining...)
			break
		}
		if len(remaining) == 0 {
			break
		}
		positionals = append(positionals, remaining[0])
		args = remaining[1:]
	}

	if len(positionals) == 0 {
		return RunConfiguration{}, usageErrorf(flags, "the following argument is required: BENCHMARK")
	} else if len(positionals) > 1 {
		return RunConfiguration{}, usageErrorf(flags, "unrecognized arguments: %v", positionals[1:])
	} else if orderChildren != 0 && orderChildren != 1 {
		return RunConfiguration{}, usageErrorf(flags, "order-children must be 0 or 1: %v", orderChildren)
	}

	config.File = positionals[0]
	config.Verbose = int(verbose)
	config.FromLevel = int(fromLevel)
	config.OrderChildren = int(orderChildren)
	config.Preprocess = bool(pp)
	config.Validate = bool(validate)
	config.Answer = bool(answer)
	config.UseUTVPI = bool(useUTVPI)
	config.EagerReachCheck = bool(eagerReachCheck)
	config.PrintStats = bool(printStats)
	config.DFS = bool(dfs)

	return config, nil
}

// endsWithTerminator reports whether the last consumed token was "--" used as
// the end-of-flags marker rather than as the value of the preceding flag.
func endsWithTerminator(flags *flag.FlagSet, consumed []string) bool {
	if len(consumed) == 0 || consumed[len(consumed)-1] != "--" {
		return false
	} else if len(consumed) == 1 {
		return true
	}

	previous := strings.TrimLeft(consumed[len(consumed)-2], "-")
	if strings.Contains(previous, "=") {
		return true
	}
	defined := flags.Lookup(previous)
	if defined == nil {
		return true
	}
	boolFlag, ok := defined.Value.(interface{ IsBoolFlag() bool })
	return ok && boolFlag.IsBoolFlag()
}

func usageErrorf(flags *flag.FlagSet, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	fmt.Fprintln(flags.Output(), err)
	flags.Usage()
	return &UsageError{Err: err}
}
