package harness

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/jherrera-jump/rpcdiff/deepdiff"
	"github.com/jherrera-jump/rpcdiff/internal/cliutil"
)

// ruleWidth is the width of the '=' rules framing failure blocks and the
// summary, kept at the historical 60 columns.
const ruleWidth = 60

// reportCase prints the per-case verdict: a single line for a pass, a full
// diagnostic block for a failure. Failure verbosity is part of the tool's
// contract; the payload and both raw responses are what a human diffs.
func (h *Harness) reportCase(desc string, payload, refResp, candResp any, diff *deepdiff.DiffResult, passed bool) {
	w := h.out()
	if passed {
		cliutil.Writef(w, "✓ PASS: Responses match -- %s\n", desc)
		return
	}

	cliutil.Writef(w, "\n")
	cliutil.Rule(w, ruleWidth)
	cliutil.Writef(w, "Test: %s\n", desc)
	cliutil.Rule(w, ruleWidth)
	cliutil.Writef(w, "Payload: %s\n", prettyJSON(payload))
	cliutil.Writef(w, "\n%s Response:\n%s\n", h.Reference, prettyJSON(refResp))
	cliutil.Writef(w, "\n%s Response:\n%s\n", h.Candidate, prettyJSON(candResp))
	cliutil.Writef(w, "\nDifferences:\n")
	for _, change := range diff.Changes {
		cliutil.Writef(w, "  %s\n", change)
	}
	cliutil.Writef(w, "\n✗ FAIL: Responses differ\n")
}

// reportSummary prints the aggregate pass count and the per-case listing in
// original order. Not called on the early-exit path.
func (h *Harness) reportSummary(result *RunResult) {
	w := h.out()
	cliutil.Writef(w, "\n")
	cliutil.Rule(w, ruleWidth)
	cliutil.Writef(w, "TEST SUMMARY\n")
	cliutil.Rule(w, ruleWidth)
	cliutil.Writef(w, "Passed: %d/%d\n", result.PassCount, len(result.Outcomes))

	for _, outcome := range result.Outcomes {
		status := "✓"
		if !outcome.Passed {
			status = "✗"
		}
		cliutil.Writef(w, "%s %s\n", status, outcome.Description)
	}
}

func prettyJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
