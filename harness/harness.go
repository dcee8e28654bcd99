package harness

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/jherrera-jump/rpcdiff"
	"github.com/jherrera-jump/rpcdiff/deepdiff"
)

// Transport dispatches a payload to an endpoint and returns the decoded
// response body, or a structured failure value when the call did not yield
// one. Implementations must not return partial or malformed values; see
// rpcclient for the production implementation.
type Transport interface {
	Call(ctx context.Context, endpoint string, payload any) any
}

// Case is a single differential test case. Cases are value types and are
// never mutated by the runner.
type Case struct {
	// Description labels the case in reports. When empty, the runner
	// generates "Test case N" from the 1-based position.
	Description string `json:"description" yaml:"description"`
	// Payload is the JSON-RPC request sent verbatim to both endpoints.
	Payload any `json:"payload" yaml:"payload"`
	// ExcludePaths are accessor chains ignored during comparison, for
	// fields that legitimately diverge between implementations.
	ExcludePaths []string `json:"exclude_paths,omitempty" yaml:"exclude_paths,omitempty"`
}

// Outcome is the verdict for a single case.
type Outcome struct {
	// Description is the case label, generated when the case had none.
	Description string
	// Passed is true when the two responses were equal after exclusions.
	Passed bool
}

// RunResult aggregates a run. Outcome order matches input case order.
type RunResult struct {
	// Outcomes holds one entry per attempted case.
	Outcomes []Outcome
	// PassCount is the number of passed cases.
	PassCount int
	// FailCount is the number of failed cases.
	FailCount int
	// Stopped is true when the run terminated early because FailCount
	// reached the failure limit.
	Stopped bool
}

// Harness runs test cases against a reference and a candidate endpoint.
type Harness struct {
	// Reference is the URL of the known-good implementation.
	Reference string
	// Candidate is the URL of the implementation under test.
	Candidate string
	// Transport dispatches payloads to the endpoints.
	Transport Transport
	// StopAfterFailures terminates the run once this many cases have
	// failed. Zero runs the whole corpus. When the limit is reached the
	// summary report is deliberately skipped.
	StopAfterFailures int
	// Out receives the console report. Defaults to os.Stdout.
	Out io.Writer
	// Logger is the structured logger for run diagnostics
	Logger rpcdiff.Logger
}

// New creates a Harness writing its report to stdout.
func New(reference, candidate string, transport Transport) *Harness {
	return &Harness{
		Reference: reference,
		Candidate: candidate,
		Transport: transport,
		Out:       os.Stdout,
	}
}

// Run executes the cases in order and returns the outcomes gathered. An
// error is returned only for a malformed case (an unparsable exclusion
// path); transport failures and structural mismatches are outcomes, not
// errors.
func (h *Harness) Run(ctx context.Context, cases []Case) (*RunResult, error) {
	log := h.log().With("run_id", uuid.NewString())
	log.Info("starting run",
		"cases", len(cases),
		"reference", h.Reference,
		"candidate", h.Candidate)

	result := &RunResult{}
	for i, tc := range cases {
		desc := tc.Description
		if desc == "" {
			desc = fmt.Sprintf("Test case %d", i+1)
		}

		refResp, candResp := h.dispatch(ctx, tc.Payload)

		diff, err := deepdiff.Compare(refResp, candResp, tc.ExcludePaths)
		if err != nil {
			return nil, fmt.Errorf("harness: case %q: %w", desc, err)
		}

		passed := diff.Equal()
		h.reportCase(desc, tc.Payload, refResp, candResp, diff, passed)
		log.Debug("case complete", "case", desc, "passed", passed)

		result.Outcomes = append(result.Outcomes, Outcome{Description: desc, Passed: passed})
		if passed {
			result.PassCount++
		} else {
			result.FailCount++
		}

		if h.StopAfterFailures > 0 && result.FailCount >= h.StopAfterFailures {
			// Early exit skips the summary; only the outcomes gathered so
			// far are returned.
			result.Stopped = true
			log.Warn("failure limit reached, stopping early",
				"failures", result.FailCount,
				"attempted", len(result.Outcomes),
				"remaining", len(cases)-len(result.Outcomes))
			return result, nil
		}
	}

	h.reportSummary(result)
	log.Info("run complete", "passed", result.PassCount, "failed", result.FailCount)
	return result, nil
}

// dispatch issues the two per-case calls. They have no data dependency, so
// they run concurrently; both have completed when dispatch returns.
func (h *Harness) dispatch(ctx context.Context, payload any) (refResp, candResp any) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		refResp = h.Transport.Call(ctx, h.Reference, payload)
	}()
	go func() {
		defer wg.Done()
		candResp = h.Transport.Call(ctx, h.Candidate, payload)
	}()
	wg.Wait()
	return refResp, candResp
}

func (h *Harness) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stdout
}

func (h *Harness) log() rpcdiff.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return rpcdiff.NopLogger{}
}
