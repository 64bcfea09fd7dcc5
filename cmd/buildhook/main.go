package main

import (
	"fmt"
	"log/slog"
	"os"

	// Register the discord sender factory.
	_ "github.com/buildhook/buildhook/internal/adapter/discord"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(os.Args[1:]); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

// run dispatches subcommands (send, serve).
func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "send":
		return runSend(args[1:])
	case "serve":
		return runServe(args[1:])
	case "help", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: buildhook <command> [options]

Commands:
  send    Send one build notification and exit
  serve   Run the HTTP relay server
  help    Show this help message

Examples:
  buildhook send -text "Build finished"
  buildhook send -text "oops" -color 0xFF0000 -url https://discord.com/api/webhooks/...
  buildhook serve
`)
}
