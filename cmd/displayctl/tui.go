package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/displayctl/internal/tui"
)

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: displayctl tui")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Interactive display configuration. Browse displays, edit their")
		fmt.Fprintln(os.Stdout, "properties and pick the primary without leaving the terminal.")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Keybindings:")
		fmt.Fprintln(os.Stdout, "  j/k, up/down  Navigate displays")
		fmt.Fprintln(os.Stdout, "  Enter, e      Edit the selected display")
		fmt.Fprintln(os.Stdout, "  p             Make the selected display primary")
		fmt.Fprintln(os.Stdout, "  r             Re-read displays from the server")
		fmt.Fprintln(os.Stdout, "  q, Esc        Quit")
		fmt.Fprintln(os.Stdout, "  Ctrl+C        Quit")
		return 0
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	t := tui.New()
	if err := t.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
