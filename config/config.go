package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Demos   []string `yaml:"demos"` // empty runs every demo
	Verbose bool     `yaml:"verbose"`
}

// Load reads the YAML file at path, if any, and applies environment
// overrides. An empty path starts from the zero Config.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config
	var cfg Config
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with Environment Variables if present
	if demos := os.Getenv("PATTERNS_DEMOS"); demos != "" {
		cfg.Demos = splitList(demos)
	}
	if verbose := os.Getenv("PATTERNS_VERBOSE"); verbose != "" {
		v, err := strconv.ParseBool(verbose)
		if err != nil {
			return nil, err
		}
		cfg.Verbose = v
	}

	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
