// SPDX-License-Identifier: MIT

// Command surdcalc evaluates a matrix worksheet and prints the LaTeX report.
//
// Usage:
//
//	surdcalc -f sheet.yaml [-v]
//	surdcalc < sheet.yaml
//
// The report is written to stdout as YAML; diagnostics go to stderr.
// The exit status is 1 when the worksheet is invalid and 2 when at least one
// operation failed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/multierr"

	"github.com/katalvlaran/surdalg/worksheet"
)

func main() {
	var (
		file    = flag.String("f", "", "worksheet file (stdin when empty)")
		verbose = flag.Bool("v", false, "log each operation outcome")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	os.Exit(run(*file, os.Stdin, os.Stdout, log))
}

func run(path string, stdin io.Reader, stdout io.Writer, log *slog.Logger) int {
	data, err := read(path, stdin)
	if err != nil {
		log.Error("read worksheet", "path", path, "err", err)
		return 1
	}

	ws, err := worksheet.Load(data)
	if err != nil {
		for _, e := range multierr.Errors(err) {
			log.Error("invalid worksheet", "err", e)
		}
		return 1
	}
	log.Debug("worksheet loaded", "title", ws.Title, "field", ws.Field, "size", len(ws.Matrix))

	rep, err := worksheet.Run(ws)
	if err != nil {
		log.Error("run worksheet", "err", err)
		return 1
	}
	for op := range rep.Results {
		log.Debug("operation done", "op", op)
	}
	for op, msg := range rep.Errors {
		log.Warn("operation failed", "op", op, "err", msg)
	}

	out, err := rep.YAML()
	if err != nil {
		log.Error("encode report", "err", err)
		return 1
	}
	if _, err := stdout.Write(out); err != nil {
		log.Error("write report", "err", err)
		return 1
	}
	if rep.Failed() {
		return 2
	}

	return 0
}

func read(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("surdcalc: %w", err)
	}

	return data, nil
}
