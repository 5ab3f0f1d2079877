package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-chatprep/internal/assets"
	"github.com/alnah/go-chatprep/internal/config"
	"github.com/alnah/go-chatprep/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()
	os.Exit(realMain(os.Args[1:], env))
}

// realMain dispatches commands and returns the process exit code.
func realMain(args []string, env *Environment) int {
	cmd, rest := splitCommand(args)

	// Interrupts cancel in-flight work instead of killing it mid-write
	ctx, stop := notifyContext(context.Background())
	defer stop()

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "chatprep %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	case "check":
		return runCheckCmd(ctx, rest, env)
	}

	flags, positional, err := parseRunFlags(rest)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, logArgs ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", logArgs...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := runPreprocess(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "%v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}

	return ExitSuccess
}

// hintFor returns an actionable hint for known failures, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.UserConfigDir())
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.ListStyles())
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrInvalidExtension):
		return hints.ForInputExtension()
	}
	return ""
}

// splitCommand separates the leading command word from its arguments.
// Anything that is not a known command runs the default command.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "run", nil
	}
	switch args[0] {
	case "run", "check", "version", "help":
		return args[0], args[1:]
	}
	return "run", args
}
