package config

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Database  DatabaseConfig
	Extractor ExtractorConfig
	Gate      GateConfig
	Policy    Policy
}

type DatabaseConfig struct {
	URL          string // PostgreSQL connection URL
	MaxOpenConns int    // Maximum open connections (default 25)
	MaxIdleConns int    // Maximum idle connections (default 5)
}

type ExtractorConfig struct {
	URL string // face embedding service URL (defaults to http://localhost:8000)
	Dim int    // embedding dimensionality (defaults to 512)
}

type GateConfig struct {
	TerminalID   string // terminal identifier stamped on log listings (default LNG-04)
	MatcherIndex string // "linear" (default) or "hnsw"
}

// Policy holds the matching policy shipped in the embedded defaults file.
type Policy struct {
	Matching struct {
		Threshold float64 `yaml:"threshold"`
	} `yaml:"matching"`
	DateFormats []string `yaml:"date_formats"`
}

// Threshold returns the minimum similarity score required to accept a match.
func (p *Policy) Threshold() float64 {
	return p.Matching.Threshold
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString reads an environment variable with a fallback default.
func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func Load() *Config {
	var policy Policy
	if err := yaml.Unmarshal(defaultsYAML, &policy); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded defaults.yaml: " + err.Error())
	}

	return &Config{
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: envInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns: envInt("DATABASE_MAX_IDLE_CONNS", 5),
		},
		Extractor: ExtractorConfig{
			URL: os.Getenv("EXTRACTOR_URL"),
			Dim: envInt("EMBEDDING_DIM", 512),
		},
		Gate: GateConfig{
			TerminalID:   envString("GATE_TERMINAL_ID", "LNG-04"),
			MatcherIndex: envString("MATCHER_INDEX", "linear"),
		},
		Policy: policy,
	}
}
