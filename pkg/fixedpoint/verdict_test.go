package fixedpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		output  string
		verdict Verdict
		outcome string
	}{
		{"sat\n", Sat, "SAFE"},
		{"unsat\n", Unsat, "CEX"},
		{"timeout\n", Unknown, "UNKNOWN"},
		{"unknown\n", Unknown, "UNKNOWN"},
		{"", Unknown, "UNKNOWN"},
		{"sat\n(model)\n", Sat, "SAFE"},
		{"unsat\n(proof)\n", Unsat, "CEX"},
		{"satunsat", Sat, "SAFE"},
		{"unsatsat", Unsat, "CEX"},
		{" sat\n", Unknown, "UNKNOWN"},
		{"SAT\n", Unknown, "UNKNOWN"},
	}

	for _, c := range cases {
		verdict := Classify(c.output)
		assert.Equal(t, c.verdict, verdict, "output %q", c.output)
		assert.Equal(t, c.outcome, verdict.Outcome(), "output %q", c.output)
	}
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "sat", Sat.String())
	assert.Equal(t, "unsat", Unsat.String())
	assert.Equal(t, "unknown", Unknown.String())
}
