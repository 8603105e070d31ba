// Package main is the entry point for the ComboNavi overlay.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/combonavi/internal/app"
	"github.com/dshills/combonavi/internal/input/source"
	"github.com/dshills/combonavi/internal/overlay"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, headless := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if !headless {
		screen, err := tcell.NewScreen()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
			return 1
		}
		if err := screen.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
			return 1
		}
		defer screen.Fini()

		view := overlay.NewView(screen, application.Translator())
		subs := application.AttachView(view)
		defer application.DetachView(subs)
	}

	if err := application.SetSource(source.New(application.Engine())); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var headless bool
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.ComboFile, "combo", "", "Combo file to load (.txt or .lua)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&headless, "headless", false, "Run without the overlay view")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ComboNavi - combo guide overlay\n\n")
		fmt.Fprintf(os.Stderr, "Usage: combonavi [options] [combo-file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  combonavi                       Resume the last session\n")
		fmt.Fprintf(os.Stderr, "  combonavi opening.txt           Load a combo file\n")
		fmt.Fprintf(os.Stderr, "  combonavi -combo rotation.lua   Load a scripted combo\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("ComboNavi %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	// A positional argument is the combo file.
	if opts.ComboFile == "" && flag.NArg() > 0 {
		opts.ComboFile = flag.Arg(0)
	}

	return opts, headless
}
