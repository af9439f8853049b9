package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	args := os.Args[1:]

	verbose := false
	for len(args) > 0 && (args[0] == "--verbose" || args[0] == "-v") {
		verbose = true
		args = args[1:]
	}
	initLogging(verbose)

	if len(args) == 0 {
		printMainUsage(os.Stderr)
		os.Exit(2)
	}

	switch args[0] {
	case "info", "i":
		os.Exit(runInfo(args[1:]))
	case "set-primary", "sp":
		os.Exit(runSetPrimary(args[1:]))
	case "primary", "p":
		os.Exit(runPrimary(args[1:]))
	case "properties", "props":
		os.Exit(runProperties(args[1:]))
	case "tui":
		os.Exit(runTUI(args[1:]))
	case "mcp":
		os.Exit(runMCP(args[1:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

// initLogging routes slog to stderr so command output on stdout stays
// machine-readable.
func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: displayctl [--verbose] <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  info (i)            Show displays and their current settings")
	fmt.Fprintln(w, "  set-primary (sp)    Make a display the primary display")
	fmt.Fprintln(w, "  primary (p)         Change properties of the primary display")
	fmt.Fprintln(w, "  properties (props)  Change properties of a display by id")
	fmt.Fprintln(w, "  tui                 Interactive display configuration")
	fmt.Fprintln(w, "  mcp                 MCP server for AI agent integration")
	fmt.Fprintln(w, "  help                Show this help")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Global options:")
	fmt.Fprintln(w, "  --verbose, -v       Debug logging (must come before the command)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'displayctl <command> --help' for command-specific options.")
}
