package fixedpoint

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const solverName = "z3"

// ConfigFileNames are looked up, in order, next to the front-end executable.
var ConfigFileNames = []string{"config.json", "config.yaml", "config.yml"}

type SolverConfig struct {
	SolverPath string `mapstructure:"z3"`
}

// LoadSolverConfig reads a json or yaml solver config file.
func LoadSolverConfig(path string) (SolverConfig, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return SolverConfig{}, fmt.Errorf("cannot read solver config: %w", err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = json.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return SolverConfig{}, fmt.Errorf("cannot parse solver config %v: %w", path, err)
	}

	var config SolverConfig
	if err := mapstructure.Decode(raw, &config); err != nil {
		return SolverConfig{}, fmt.Errorf("invalid solver config %v: %w", path, err)
	}
	return config, nil
}

// FindSolverConfig returns the first config file present in dir, or "".
func FindSolverConfig(dir string) string {
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if isRegularFile(candidate) {
			return candidate
		}
	}
	return ""
}

// ResolveExecutable picks the solver binary: a regular file named z3 in dir,
// then the configured path, then plain "z3" to be looked up in PATH.
func ResolveExecutable(dir string, config SolverConfig) string {
	local := filepath.Join(dir, solverName)
	if isRegularFile(local) {
		if absolute, err := filepath.Abs(local); err == nil {
			return absolute
		}
		return local
	} else if config.SolverPath != "" {
		return config.SolverPath
	}
	return solverName
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
