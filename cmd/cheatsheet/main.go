package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/icysun/semgrep/internal/cheatsheet"
	"github.com/icysun/semgrep/internal/coverage"
	"github.com/icysun/semgrep/internal/matcher"
	"github.com/icysun/semgrep/internal/reporting"
	"github.com/icysun/semgrep/internal/shared"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cheatsheet --directory <tests-dir> (--json | --html | --matrix) [options]\n\n")
		fmt.Fprintf(os.Stderr, "Generate a pattern-matching cheatsheet for local viewing and app usage.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	dir := pflag.StringP("directory", "d", "", "analyze this directory of tests")
	outFile := pflag.StringP("output-file", "o", "", "write output to this file instead of stdout")
	jsonOut := pflag.BoolP("json", "j", false, "output JSON")
	htmlOut := pflag.BoolP("html", "t", false, "output HTML")
	matrixOut := pflag.BoolP("matrix", "m", false, "output the feature-coverage matrix as HTML")
	configPath := pflag.String("config", "", "path to YAML config (optional)")
	pflag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "cheatsheet: --directory is required")
		pflag.Usage()
		os.Exit(2)
	}
	modes := 0
	for _, on := range []bool{*jsonOut, *htmlOut, *matrixOut} {
		if on {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintln(os.Stderr, "cheatsheet: exactly one of --json, --html or --matrix is required")
		os.Exit(2)
	}

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	// Render into memory first so a failed run never leaves a partial
	// output file behind.
	var buf bytes.Buffer
	if *matrixOut {
		m, err := coverage.BuildMatrix(*dir)
		if err != nil {
			slog.Error("coverage scan failed", "dir", *dir, "err", err)
			os.Exit(1)
		}
		if err := reporting.WriteMatrixHTML(&buf, m); err != nil {
			slog.Error("render matrix", "err", err)
			os.Exit(1)
		}
	} else {
		runner := matcher.Runner{Command: cfg.Matcher.Command}
		doc, err := cheatsheet.Build(*dir, runner.Run)
		if err != nil {
			var ee *matcher.ExitError
			if errors.As(err, &ee) {
				slog.Error("matcher invocation failed", "cmd", ee.Cmd, "code", ee.Code, "stderr", ee.Stderr)
			} else {
				slog.Error("build cheatsheet", "err", err)
			}
			os.Exit(1)
		}
		if *jsonOut {
			err = reporting.WriteJSON(&buf, doc)
		} else {
			err = reporting.WriteHTML(&buf, doc)
		}
		if err != nil {
			slog.Error("render cheatsheet", "err", err)
			os.Exit(1)
		}
	}

	if *outFile != "" {
		if err := os.WriteFile(*outFile, buf.Bytes(), 0o644); err != nil {
			slog.Error("write output file", "path", *outFile, "err", err)
			os.Exit(1)
		}
		return
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		slog.Error("write stdout", "err", err)
		os.Exit(1)
	}
}
