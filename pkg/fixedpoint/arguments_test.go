package fixedpoint

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgumentsDefaults(t *testing.T) {
	config, err := ParseArguments([]string{"bench.smt2"})

	require.NoError(t, err)
	assert.Equal(t, RunConfiguration{
		File:   "bench.smt2",
		Engine: DefaultEngine,
	}, config)
}

func TestParseArgumentsAllFlags(t *testing.T) {
	config, err := ParseArguments([]string{
		"--pp", "--validate", "--trace", "spacer:pdr", "--answer",
		"--engine", "pdr", "--verbose", "3", "--use-utvpi", "--eager-reach-check",
		"--from-lvl", "2", "--print-stats", "--dfs", "--order-children", "1",
		"bench.smt2",
	})

	require.NoError(t, err)
	assert.Equal(t, RunConfiguration{
		File:            "bench.smt2",
		Preprocess:      true,
		Validate:        true,
		Answer:          true,
		DFS:             true,
		UseUTVPI:        true,
		EagerReachCheck: true,
		PrintStats:      true,
		Engine:          "pdr",
		Verbose:         3,
		FromLevel:       2,
		OrderChildren:   1,
		Trace:           "spacer:pdr",
	}, config)
}

func TestParseArgumentsFlagsAfterBenchmark(t *testing.T) {
	config, err := ParseArguments([]string{"--dfs", "bench.smt2", "--verbose=2", "-answer"})

	require.NoError(t, err)
	assert.Equal(t, "bench.smt2", config.File)
	assert.True(t, config.DFS)
	assert.True(t, config.Answer)
	assert.Equal(t, 2, config.Verbose)
}

func TestParseArgumentsNegativeIntegers(t *testing.T) {
	config, err := ParseArguments([]string{"--verbose", "-1", "--from-lvl", "-2", "bench.smt2"})

	require.NoError(t, err)
	assert.Equal(t, -1, config.Verbose)
	assert.Equal(t, -2, config.FromLevel)
	assert.Equal(t, "-v:-1", BuildInvocation(config, "z3")[1])
}

func TestParseArgumentsTerminator(t *testing.T) {
	t.Run("flags before terminator", func(t *testing.T) {
		config, err := ParseArguments([]string{"--dfs", "--", "--bench.smt2"})

		require.NoError(t, err)
		assert.Equal(t, "--bench.smt2", config.File)
		assert.True(t, config.DFS)
	})

	t.Run("nothing after terminator is a flag", func(t *testing.T) {
		_, err := ParseArguments([]string{"--", "a.smt2", "--dfs"})

		var usageErr *UsageError
		assert.ErrorAs(t, err, &usageErr)
	})

	t.Run("terminator as a flag value", func(t *testing.T) {
		config, err := ParseArguments([]string{"--engine", "--", "a.smt2", "--dfs"})

		require.NoError(t, err)
		assert.Equal(t, "--", config.Engine)
		assert.Equal(t, "a.smt2", config.File)
		assert.True(t, config.DFS)
	})
}

func TestParseArgumentsUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"missing benchmark":       {"--dfs"},
		"no arguments":            {},
		"two benchmarks":          {"a.smt2", "b.smt2"},
		"non integer verbose":     {"--verbose", "high", "a.smt2"},
		"non integer from-lvl":    {"--from-lvl", "x", "a.smt2"},
		"non integer order":       {"--order-children", "ltor", "a.smt2"},
		"order out of range":      {"--order-children", "2", "a.smt2"},
		"hexadecimal order":       {"--order-children", "0x1", "a.smt2"},
		"binary verbose":          {"--verbose", "0b1", "a.smt2"},
		"underscored from-lvl":    {"--from-lvl", "1_0", "a.smt2"},
		"boolean flag with value": {"--pp=false", "a.smt2"},
		"unknown flag":            {"--bfs", "a.smt2"},
		"missing flag value":      {"a.smt2", "--engine"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseArguments(args)

			var usageErr *UsageError
			assert.ErrorAs(t, err, &usageErr)
		})
	}
}

func TestParseArgumentsHelp(t *testing.T) {
	_, err := ParseArguments([]string{"--help"})

	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
