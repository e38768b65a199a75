package cli

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML config file. Flags given on the command line take
// precedence.
//
//	zone: America/Los_Angeles
//	pattern: Y-m-d H:i:s T
//	zoneinfo: /usr/share/zoneinfo
//	verbose: true
type Config struct {
	Zone     string `yaml:"zone"`
	Pattern  string `yaml:"pattern"`
	ZoneInfo string `yaml:"zoneinfo"`
	Verbose  bool   `yaml:"verbose"`
}

// LoadConfig reads and parses a config file. Unknown fields are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &cfg, nil
}
