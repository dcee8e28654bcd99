package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/jherrera-jump/rpcdiff/deepdiff"
	"github.com/jherrera-jump/rpcdiff/internal/cliutil"
)

// CompareFlags contains flags for the compare command
type CompareFlags struct {
	Exclude stringList
	Format  string
}

// SetupCompareFlags creates and configures a FlagSet for the compare command.
// Returns the FlagSet and a CompareFlags struct with bound flag variables.
func SetupCompareFlags() (*flag.FlagSet, *CompareFlags) {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	flags := &CompareFlags{}

	fs.Var(&flags.Exclude, "exclude", "accessor chain to skip during comparison (repeatable)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: rpcdiff compare [flags] <source.json> <target.json>\n\n")
		cliutil.Writef(output, "Compare two JSON documents with the same engine the harness uses on\n")
		cliutil.Writef(output, "live responses. Useful for inspecting saved response bodies offline.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  rpcdiff compare ref-response.json cand-response.json\n")
		cliutil.Writef(output, "  rpcdiff compare --exclude result.context.slot a.json b.json\n")
		cliutil.Writef(output, "  rpcdiff compare --format json a.json b.json | jq '.Changes'\n")
		cliutil.Writef(output, "\nExit Status:\n")
		cliutil.Writef(output, "  0    Documents are equal after exclusions\n")
		cliutil.Writef(output, "  1    Documents differ, or a document could not be read\n")
	}

	return fs, flags
}

// HandleCompare executes the compare command
func HandleCompare(args []string) error {
	fs, flags := SetupCompareFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("compare command requires exactly two file paths")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	source, err := readJSONFile(fs.Arg(0))
	if err != nil {
		return err
	}
	target, err := readJSONFile(fs.Arg(1))
	if err != nil {
		return err
	}

	result, err := deepdiff.Compare(source, target, flags.Exclude)
	if err != nil {
		return err
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(result, flags.Format); err != nil {
			return err
		}
		if !result.Equal() {
			os.Exit(1)
		}
		return nil
	}

	w := os.Stdout
	if result.Equal() {
		cliutil.Writef(w, "✓ No differences found\n")
		return nil
	}

	cliutil.Writef(w, "%d difference(s) between %s and %s:\n\n", len(result.Changes), fs.Arg(0), fs.Arg(1))
	for _, change := range result.Changes {
		cliutil.Writef(w, "  %s\n", change)
	}
	cliutil.Writef(w, "\nAdded: %d  Removed: %d  Modified: %d\n",
		result.AddedCount, result.RemovedCount, result.ModifiedCount)
	os.Exit(1)
	return nil
}

func readJSONFile(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return v, nil
}
