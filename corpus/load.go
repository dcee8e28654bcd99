package corpus

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"go.yaml.in/yaml/v4"

	"github.com/jherrera-jump/rpcdiff/harness"
	"github.com/jherrera-jump/rpcdiff/internal/jsonpath"
)

// Load reads a YAML corpus document: a sequence of cases with description,
// payload, and exclude_paths keys. Every case is validated and all
// validation errors are reported together, not just the first.
func Load(r io.Reader) ([]harness.Case, error) {
	var docs []harness.Case
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&docs); err != nil {
		return nil, fmt.Errorf("corpus: decoding document: %w", err)
	}

	var merr *multierror.Error
	for i, c := range docs {
		name := c.Description
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		if c.Payload == nil {
			merr = multierror.Append(merr, fmt.Errorf("corpus: %s: missing payload", name))
		}
		for _, expr := range c.ExcludePaths {
			if _, err := jsonpath.Parse(expr); err != nil {
				merr = multierror.Append(merr, fmt.Errorf("corpus: %s: exclude path %q: %w", name, expr, err))
			}
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return docs, nil
}

// LoadFile reads a YAML corpus from a file.
func LoadFile(path string) ([]harness.Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}
