package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jherrera-jump/rpcdiff"
	"github.com/jherrera-jump/rpcdiff/corpus"
	"github.com/jherrera-jump/rpcdiff/harness"
	"github.com/jherrera-jump/rpcdiff/internal/cliutil"
	"github.com/jherrera-jump/rpcdiff/rpcclient"
)

// Default endpoints: a local validator and the Jump testnet RPC node it is
// measured against.
const (
	DefaultReference = "http://localhost:8899"
	DefaultCandidate = "http://solana-testnet-rpc.jumpisolated.com:8899"
)

// RunFlags contains flags for the run command
type RunFlags struct {
	Reference  string
	Candidate  string
	OnlyFirst  int
	CorpusPath string
	Timeout    time.Duration
	Verbose    bool
}

// SetupRunFlags creates and configures a FlagSet for the run command.
// Returns the FlagSet and a RunFlags struct with bound flag variables.
func SetupRunFlags() (*flag.FlagSet, *RunFlags) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	flags := &RunFlags{}

	fs.StringVar(&flags.Reference, "reference", DefaultReference, "URL of the reference RPC endpoint")
	fs.StringVar(&flags.Candidate, "candidate", DefaultCandidate, "URL of the candidate RPC endpoint")
	fs.IntVar(&flags.OnlyFirst, "only-first", 0, "stop the run once this many cases have failed (0 runs the whole corpus)")
	fs.StringVar(&flags.CorpusPath, "corpus", "", "YAML corpus file (default: the built-in corpus)")
	fs.DurationVar(&flags.Timeout, "timeout", rpcclient.DefaultTimeout, "per-call timeout")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log call diagnostics to stderr")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: rpcdiff run [flags]\n\n")
		cliutil.Writef(output, "Send each corpus case to both endpoints and compare the responses.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  rpcdiff run\n")
		cliutil.Writef(output, "  rpcdiff run --reference http://localhost:8899 --candidate http://other:8899\n")
		cliutil.Writef(output, "  rpcdiff run --only-first 1\n")
		cliutil.Writef(output, "  rpcdiff run --corpus cases.yaml --timeout 30s\n")
		cliutil.Writef(output, "\nExit Status:\n")
		cliutil.Writef(output, "  0    All attempted cases passed\n")
		cliutil.Writef(output, "  1    At least one case failed, or the run could not start\n")
		cliutil.Writef(output, "\nNotes:\n")
		cliutil.Writef(output, "  - Cases run sequentially, in corpus order, at most once each\n")
		cliutil.Writef(output, "  - Transport failures are compared like any other response\n")
		cliutil.Writef(output, "  - When --only-first stops the run early, the summary is skipped\n")
	}

	return fs, flags
}

// HandleRun executes the run command
func HandleRun(args []string) error {
	fs, flags := SetupRunFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("run command takes no positional arguments")
	}

	cases := corpus.Default()
	if flags.CorpusPath != "" {
		loaded, err := corpus.LoadFile(flags.CorpusPath)
		if err != nil {
			return err
		}
		cases = loaded
	}

	var logger rpcdiff.Logger = rpcdiff.NopLogger{}
	if flags.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		logger = rpcdiff.NewSlogAdapter(slog.New(handler))
	}

	client := rpcclient.New()
	client.Timeout = flags.Timeout
	client.Logger = logger

	h := harness.New(flags.Reference, flags.Candidate, client)
	h.StopAfterFailures = flags.OnlyFirst
	h.Logger = logger

	result, err := h.Run(context.Background(), cases)
	if err != nil {
		return err
	}

	if result.FailCount > 0 {
		os.Exit(1)
	}
	return nil
}
