package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdRender  = "render"
	cmdCharts  = "charts"
	cmdDoctor  = "doctor"
	cmdVersion = "version"
	cmdHelp    = "help"
)

// ErrUnknownCommand is returned for an unrecognized command name.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	env := DefaultEnv()

	// maxprocs.Set only fails on an invalid GOMAXPROCS value, in which case
	// the runtime default applies.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		if env.Verbose {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runMain(ctx, os.Args, env)
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and maps its error to an exit code.
// A bare notebook path is treated as "render <path>".
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) && looksLikeNotebook(cmd) {
		cmd, rest = cmdRender, args[1:]
	}

	var err error
	switch cmd {
	case cmdRender:
		err = runRender(ctx, rest, env)
	case cmdCharts:
		err = runCharts(ctx, rest, env)
	case cmdDoctor:
		return runDoctorCmd(ctx, rest, env)
	case cmdVersion, "--version":
		fmt.Fprintf(env.Stdout, "nb2html %s\n", Version)
	case cmdHelp, "-h", "--help":
		runHelp(rest, env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
	}

	if err != nil {
		printError(env, err)
	}
	return exitCodeFor(err)
}

func isCommand(s string) bool {
	switch s {
	case cmdRender, cmdCharts, cmdDoctor, cmdVersion, cmdHelp:
		return true
	}
	return false
}

func looksLikeNotebook(s string) bool {
	return len(s) > len(notebookExt) && s[len(s)-len(notebookExt):] == notebookExt
}
