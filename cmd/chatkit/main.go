package main

import (
	"chat-kit/domain/attachment"
	"chat-kit/internal"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the calling shell or CI job.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const usage = `usage:
  chatkit files [-owner ID] PATH...   validate files against the attachment policy
  chatkit messages < messages.jsonl   validate one wire message per line`

func main() {
	code, err := run(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chatkit: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string, stdin io.Reader, stdout io.Writer) (int, error) {
	if len(args) == 0 {
		return exitConfig, fmt.Errorf("missing command\n%s", usage)
	}

	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	output, err := LoadOutputConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("output config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "files":
		flags := flag.NewFlagSet("files", flag.ContinueOnError)
		owner := flags.String("owner", "cli", "message id the files are attached to")
		if err := flags.Parse(args[1:]); err != nil {
			return exitConfig, err
		}
		if flags.NArg() == 0 {
			return exitConfig, fmt.Errorf("files: at least one path is required")
		}
		policy, err := config.Policy()
		if err != nil {
			return exitConfig, err
		}
		attacher, err := attachment.NewAttacher(logger, policy, config.ChunkSizeKb)
		if err != nil {
			return exitConfig, err
		}
		rejected, err := checkFiles(ctx, attacher, *owner, flags.Args(), NewReport(stdout, output))
		if err != nil {
			return exitRuntime, err
		}
		if rejected > 0 {
			return exitRuntime, fmt.Errorf("%d of %d files rejected", rejected, flags.NArg())
		}
		return exitOK, nil
	case "messages":
		invalid, err := checkMessages(stdin, NewReport(stdout, output))
		if err != nil {
			return exitRuntime, err
		}
		if invalid > 0 {
			return exitRuntime, fmt.Errorf("%d invalid messages", invalid)
		}
		return exitOK, nil
	default:
		return exitConfig, fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}
