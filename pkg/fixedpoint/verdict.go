package fixedpoint

import "strings"

type Verdict int

const (
	Unknown Verdict = iota
	Sat
	Unsat
)

var (
	verdictNames = map[Verdict]string{
		Unknown: "unknown",
		Sat:     "sat",
		Unsat:   "unsat",
	}
	verdictOutcomes = map[Verdict]string{
		Unknown: "UNKNOWN",
		Sat:     "SAFE",
		Unsat:   "CEX",
	}
)

func (v Verdict) String() string {
	return verdictNames[v]
}

// Outcome is the label reported in the Result statistic: a satisfiable query
// means the program is safe, an unsatisfiable one yields a counterexample.
func (v Verdict) Outcome() string {
	return verdictOutcomes[v]
}

// Classify reduces solver output to a verdict by looking at its prefix only.
func Classify(output string) Verdict {
	output = strings.TrimSuffix(output, "\n")
	if strings.HasPrefix(output, "unsat") {
		return Unsat
	} else if strings.HasPrefix(output, "sat") {
		return Sat
	}
	return Unknown
}
