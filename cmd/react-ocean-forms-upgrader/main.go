package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/term"

	"github.com/phyten/react-ocean-forms-upgrader/internal/config"
	"github.com/phyten/react-ocean-forms-upgrader/internal/engine"
	engineopts "github.com/phyten/react-ocean-forms-upgrader/internal/engine/opts"
	"github.com/phyten/react-ocean-forms-upgrader/internal/output"
	"github.com/phyten/react-ocean-forms-upgrader/internal/progress"
	"github.com/phyten/react-ocean-forms-upgrader/internal/termcolor"
	"github.com/phyten/react-ocean-forms-upgrader/internal/walk"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	log.SetFlags(0)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	logger := log.New(stderr, "", 0)

	cli, err := parseArgs(args)
	if err != nil {
		logger.Printf("error: %v", err)
		fmt.Fprint(stderr, usage())
		return exitUsage
	}
	if cli.showHelp {
		fmt.Fprint(stdout, usage())
		return exitOK
	}

	settings, err := config.Load(getenv, cli.flags)
	if err != nil {
		logger.Printf("config error: %v", err)
		return exitUsage
	}

	root := cli.root
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			logger.Printf("error: %v", err)
			return exitFail
		}
	}

	opts := engineopts.Defaults(root)
	settings.ApplyToOptions(&opts)
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		logger.Printf("error: %v", err)
		return exitUsage
	}

	colorMode, _ := termcolor.ParseMode(settings.Color)
	colorEnv := termcolor.ColorEnv(getenv)
	outFile, _ := stdout.(*os.File)
	errFile, _ := stderr.(*os.File)
	pal := termcolor.NewPalette(termcolor.Resolve(colorMode, outFile, colorEnv))
	warnPal := termcolor.NewPalette(termcolor.Resolve(colorMode, errFile, colorEnv))

	human := output.Human(settings.Output)
	reporter, err := output.New(settings.Output, stdout, output.Options{
		Palette: pal,
		Banner:  human && !settings.NoBanner,
		Status:  human,
		Width:   terminalWidth(outFile, getenv),
	})
	if err != nil {
		logger.Printf("error: %v", err)
		return exitUsage
	}

	if err := reporter.Begin(output.RunInfo{Root: opts.Root, Extensions: opts.Extensions, Mode: opts.Mode}); err != nil {
		logger.Printf("error: %v", err)
		return exitFail
	}

	opts.OnFile = func(rep engine.FileReport) error {
		if opts.Apply() {
			for _, oc := range rep.Occurrences {
				if oc.Suspicious {
					logger.Print(warnPal.Warn(fmt.Sprintf("warning: %s:%d: unbalanced braces in component expression %q, check the rewritten tag", oc.Path, oc.Line, oc.Expression)))
				}
			}
		}
		return reporter.File(rep)
	}
	force, suppress := settings.ProgressFlags()
	if settings.Output == "text" && !force {
		// the text report already streams one block per file
		suppress = true
	}
	if progress.ShouldShowProgress(force, suppress) {
		opts.ProgressObserver = progress.NewAutoObserver(stderr)
	}

	res, runErr := engine.Run(ctx, opts)
	if errors.Is(runErr, walk.ErrRootNotExist) {
		logger.Printf("Directory %s does not exist.", opts.Root)
		return exitFail
	}
	if res == nil {
		logger.Printf("error: %v", runErr)
		return exitFail
	}

	for _, fe := range res.Errors {
		logger.Print(warnPal.Warn("warning: " + fe.Error()))
	}
	if err := reporter.Finish(res); err != nil {
		logger.Printf("error: %v", err)
		return exitFail
	}

	switch {
	case errors.Is(runErr, engine.ErrAborted):
		logger.Printf("aborted after the first failure (--fail-fast)")
		return exitFail
	case errors.Is(runErr, context.Canceled):
		logger.Printf("interrupted")
		return exitFail
	case runErr != nil:
		logger.Printf("error: %v", runErr)
		return exitFail
	case res.ErrorCount > 0:
		return exitFail
	}
	return exitOK
}

// terminalWidth returns the width used to fit table cells: the terminal
// size when stdout is a TTY, else $COLUMNS, else 0 (renderer default).
func terminalWidth(f *os.File, getenv func(string) string) int {
	if f != nil {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if n, err := strconv.Atoi(getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	return 0
}
