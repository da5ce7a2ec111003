// Package matcher wraps the external pattern-matching tool. Each invocation
// writes a single-rule YAML configuration to a temp file, runs the tool
// against one code file, and parses the matched ranges out of its JSON
// output.
package matcher

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"gopkg.in/yaml.v3"
)

// Position is a point in a source file as reported by the matcher.
type Position struct {
	Line   int `json:"line"`
	Col    int `json:"col"`
	Offset int `json:"offset,omitempty"`
}

// Highlight is one matched span.
type Highlight struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// RuleConfig is the single-rule document handed to the matcher.
type RuleConfig struct {
	Rules []Rule `yaml:"rules"`
}

type Rule struct {
	ID        string         `yaml:"id"`
	Patterns  []PatternEntry `yaml:"patterns"`
	Message   string         `yaml:"message"`
	Languages []string       `yaml:"languages"`
	Severity  string         `yaml:"severity"`
}

type PatternEntry struct {
	Pattern string `yaml:"pattern"`
}

// NewRuleConfig wraps a raw pattern into a rule configuration scoped to one
// language. Multi-line patterns must end in a newline or the matcher rejects
// them.
func NewRuleConfig(pattern, language string) RuleConfig {
	pattern = strings.TrimSpace(pattern)
	if strings.Contains(pattern, "\n") {
		pattern += "\n"
	}
	return RuleConfig{
		Rules: []Rule{{
			ID:        "default-example",
			Patterns:  []PatternEntry{{Pattern: pattern}},
			Message:   "msg",
			Languages: []string{language},
			Severity:  "WARNING",
		}},
	}
}

// ExitError reports a matcher invocation that returned a non-zero status.
// It is fatal for the whole run: a pattern the matcher rejects is a
// documentation bug, not a transient condition.
type ExitError struct {
	Cmd    []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("matcher exited with status %d: %s", e.Code, strings.Join(e.Cmd, " "))
}

// Runner invokes the external matcher binary.
type Runner struct {
	Command string
}

// Run matches the pattern in patternPath against codePath and returns the
// highlighted ranges in the order the matcher emits them.
func (r *Runner) Run(language, patternPath, codePath string) ([]Highlight, error) {
	raw, err := os.ReadFile(patternPath)
	if err != nil {
		return nil, fmt.Errorf("read pattern %s: %w", patternPath, err)
	}
	cfg, err := yaml.Marshal(NewRuleConfig(string(raw), language))
	if err != nil {
		return nil, fmt.Errorf("serialize rule config: %w", err)
	}

	tmp, err := os.CreateTemp("", "cheatsheet-rule-*.yaml")
	if err != nil {
		return nil, fmt.Errorf("create rule config: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(cfg); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write rule config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("write rule config: %w", err)
	}

	args := []string{"--json", "--config=" + tmp.Name(), codePath}
	slog.Debug("running matcher", "cmd", r.Command, "args", args)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(r.Command, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		code := -1
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			code = ee.ExitCode()
		}
		return nil, &ExitError{
			Cmd:    append([]string{r.Command}, args...),
			Code:   code,
			Stderr: stderr.String(),
		}
	}

	var resp struct {
		Results []Highlight `json:"results"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("parse matcher output for %s: %w", codePath, err)
	}
	return resp.Results, nil
}
