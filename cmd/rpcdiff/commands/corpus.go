package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/jherrera-jump/rpcdiff/corpus"
	"github.com/jherrera-jump/rpcdiff/internal/cliutil"
)

// CorpusFlags contains flags for the corpus command
type CorpusFlags struct {
	Format string
}

// SetupCorpusFlags creates and configures a FlagSet for the corpus command.
func SetupCorpusFlags() (*flag.FlagSet, *CorpusFlags) {
	fs := flag.NewFlagSet("corpus", flag.ContinueOnError)
	flags := &CorpusFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: rpcdiff corpus [flags]\n\n")
		cliutil.Writef(output, "Print the built-in test corpus. The output is a valid input for\n")
		cliutil.Writef(output, "'rpcdiff run --corpus' when written as YAML, so the generated grid\n")
		cliutil.Writef(output, "can be saved, trimmed, and replayed.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  rpcdiff corpus | jq length\n")
		cliutil.Writef(output, "  rpcdiff corpus --format yaml > cases.yaml\n")
	}

	return fs, flags
}

// HandleCorpus executes the corpus command
func HandleCorpus(args []string) error {
	fs, flags := SetupCorpusFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("corpus command takes no positional arguments")
	}

	if flags.Format != FormatJSON && flags.Format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", flags.Format, FormatJSON, FormatYAML)
	}

	return OutputStructured(corpus.Default(), flags.Format)
}
