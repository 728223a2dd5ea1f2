// Package main decodes a stream of candump-style lines from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/erh/goj1939/common"
	"github.com/erh/goj1939/dispatch"
)

func main() {
	verbose := flag.Bool("v", false, "log lines that fail to parse or decode")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		}),
	))

	sc := bufio.NewScanner(os.Stdin)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if line == "" {
			continue
		}

		frame, err := common.ParseCandumpLine(line)
		if err != nil {
			slog.Warn("skipping unparsable line", "line", lineno, "err", err)
			continue
		}

		msg, ok, err := dispatch.DecodeFrame(frame)
		if err != nil {
			slog.Warn("bad payload", "line", lineno, "pgn", frame.ID().PGN(), "err", err)
			continue
		}
		if !ok {
			slog.Debug("no decoder", "line", lineno, "pgn", frame.ID().PGN())
			fmt.Printf("%v\n", frame)
			continue
		}
		fmt.Printf("%v    %v\n", frame.ID(), msg)
	}
	if err := sc.Err(); err != nil {
		slog.Error("reading stdin", "err", err)
		os.Exit(1)
	}
}
