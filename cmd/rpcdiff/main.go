package main

import (
	"fmt"
	"os"

	"github.com/jherrera-jump/rpcdiff"
	"github.com/jherrera-jump/rpcdiff/cmd/rpcdiff/commands"
	"github.com/jherrera-jump/rpcdiff/internal/cliutil"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("rpcdiff v%s\n", rpcdiff.Version())
	case "help", "-h", "--help":
		printUsage()
	case "run":
		if err := commands.HandleRun(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "compare":
		if err := commands.HandleCompare(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "corpus":
		if err := commands.HandleCorpus(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	w := os.Stdout
	cliutil.Writef(w, "rpcdiff - differential testing for JSON-RPC implementations\n\n")
	cliutil.Writef(w, "Usage: rpcdiff <command> [flags]\n\n")
	cliutil.Writef(w, "Commands:\n")
	cliutil.Writef(w, "  run       Run the test corpus against a reference and a candidate endpoint\n")
	cliutil.Writef(w, "  compare   Compare two JSON documents offline with the same diff engine\n")
	cliutil.Writef(w, "  corpus    Print the built-in test corpus\n")
	cliutil.Writef(w, "  version   Print the rpcdiff version\n")
	cliutil.Writef(w, "  help      Show this help message\n\n")
	cliutil.Writef(w, "Run 'rpcdiff <command> -h' for command-specific flags.\n")
}
