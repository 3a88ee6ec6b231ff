package fixedpoint

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Invocation is the ordered list of tokens used to launch the solver; the
// first token is the executable.
type Invocation []string

func (inv Invocation) String() string {
	return strings.Join(inv, " ")
}

// BuildInvocation translates config into z3 command-line tokens. The order of
// the tokens is fixed: option switches, then the benchmark file, then trace
// switches.
func BuildInvocation(config RunConfiguration, executable string) Invocation {
	inv := Invocation{executable, fmt.Sprintf("-v:%d", config.Verbose)}

	if !config.Preprocess {
		inv = append(inv,
			"fixedpoint.slice=false",
			"fixedpoint.inline_linear=false",
			"fixedpoint.inline_eager=false",
		)
	}

	inv = append(inv, switchToken("fixedpoint.validate_result", config.Validate))
	if config.Answer {
		inv = append(inv, "fixedpoint.print_answer=true")
	}

	inv = append(inv,
		"fixedpoint.engine="+config.Engine,
		"fixedpoint.use_farkas=true",
		"fixedpoint.generate_proof_trace=false",
		switchToken("fixedpoint.use_utvpi", config.UseUTVPI),
		switchToken("fixedpoint.eager_reach_check", config.EagerReachCheck),
	)

	if config.PrintStats {
		inv = append(inv, "-st")
	}
	if config.DFS {
		inv = append(inv, "fixedpoint.bfs_model_search=false")
	}
	if config.OrderChildren == 1 {
		inv = append(inv, "fixedpoint.order_children=1")
	}

	inv = append(inv, config.File)

	return append(inv, lo.Map(TraceCategories(config.Trace), func(category string, _ int) string {
		return "-tr:" + category
	})...)
}

// TraceCategories splits a colon-delimited trace string. Empty entries are
// kept so every element yields its own trace switch.
func TraceCategories(trace string) []string {
	if trace == "" {
		return nil
	}
	return strings.Split(trace, ":")
}

func switchToken(name string, enabled bool) string {
	return name + "=" + lo.Ternary(enabled, "true", "false")
}
