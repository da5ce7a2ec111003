package shared

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Matcher struct {
		Command string `yaml:"command"` // matcher binary, "semgrep" by default
	} `yaml:"matcher"`

	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func DefaultConfig() Config {
	var c Config
	c.Matcher.Command = "semgrep"
	c.Logging.Format = "text"
	c.Logging.Level = "info"
	return c
}

func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	c := DefaultConfig()
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(b, &c)
		}
	}
	// Env overrides (simple, explicit)
	if v := os.Getenv("CHEATSHEET_MATCHER"); v != "" {
		c.Matcher.Command = v
	}
	if v := os.Getenv("CHEATSHEET_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("CHEATSHEET_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return c, nil
}
