package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"golox/internal"
	"golox/internal/config"
)

const (
	exitUsage   = 64
	exitDataErr = 65
	exitIOErr   = 74
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, color.Red(fmt.Sprint(a...)))
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	debug := fs.Bool("debug", false, "trace the interpreter pipeline")
	noColor := fs.Bool("no-color", false, "disable coloured output")
	tokens := fs.Bool("tokens", false, "print the tokens of the script and exit")
	tree := fs.Bool("ast", false, "print the syntax tree of the script and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: lox [script]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fmt.Println("Usage: lox [script]")
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	if *debug {
		logger.SetLevel(logrus.TraceLevel)
	}

	if !cfg.Color || *noColor {
		color.Disable()
	}

	if fs.NArg() == 0 {
		return runPrompt(cfg, logger)
	}

	path := fs.Arg(0)
	b, err := os.ReadFile(path)
	if err != nil {
		logger.WithError(err).WithField("path", path).Error("cannot read script")
		return exitIOErr
	}
	source := string(b)

	interp := internal.NewInterpreter(stdPrinter{}, internal.WithLogger(logger))
	var ok bool
	switch {
	case *tokens:
		ok = interp.DumpTokens(source)
	case *tree:
		ok = interp.DumpTree(source)
	default:
		ok = interp.Run(source)
	}
	if !ok {
		return exitDataErr
	}
	return 0
}

// runPrompt reads one line at a time into a single interpreter, errors
// never end the session
func runPrompt(cfg *config.Config, logger *logrus.Logger) int {
	fmt.Println(color.Green("lox REPL, Ctrl+D exits"))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		} else {
			logger.WithError(err).Debug("history not saved")
		}
	}()

	interp := internal.NewInterpreter(
		stdPrinter{},
		internal.WithLogger(logger),
		internal.WithInteractive(),
	)

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.WithError(err).Error("cannot read input")
			}
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		interp.Run(line)
	}
}
