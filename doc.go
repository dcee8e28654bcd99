// Package rpcdiff provides a differential-testing harness for JSON-RPC services.
//
// rpcdiff sends identical requests to two RPC endpoints, a reference
// implementation and a candidate implementation, and asserts that their
// responses are structurally equivalent modulo explicitly excluded paths
// (volatile fields such as slot numbers). It is a regression and
// compatibility tool for validating that a new server is a drop-in
// replacement for an existing one.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - deepdiff: Structural comparison of JSON-shaped values with path exclusions
//   - harness: The case runner that drives a corpus through two endpoints
//   - rpcclient: The HTTP transport that converts failures into comparable values
//   - corpus: Boundary-value test corpus generation and YAML corpus loading
//
// # Quick Start
//
// Compare two structured values:
//
//	import "github.com/jherrera-jump/rpcdiff/deepdiff"
//
//	result, err := deepdiff.Compare(a, b, []string{"result.context.slot"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Equal() {
//		for _, change := range result.Changes {
//			fmt.Println(change)
//		}
//	}
//
// Run the generated corpus against two endpoints:
//
//	import (
//		"github.com/jherrera-jump/rpcdiff/corpus"
//		"github.com/jherrera-jump/rpcdiff/harness"
//		"github.com/jherrera-jump/rpcdiff/rpcclient"
//	)
//
//	h := harness.New("http://localhost:8899", "http://candidate:8899", rpcclient.New())
//	result, err := h.Run(context.Background(), corpus.Default())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Passed: %d/%d\n", result.PassCount, len(result.Outcomes))
//
// # Command Line
//
// The rpcdiff CLI exposes the same functionality:
//
//	rpcdiff run --reference http://localhost:8899 --candidate http://other:8899
//	rpcdiff run --only-first 1
//	rpcdiff compare a.json b.json --exclude result.context.slot
//	rpcdiff corpus --format yaml
//
// Expected failure modes (network errors, RPC-level errors, structural
// divergence) are represented as data and flow through the normal outcome
// pipeline; nothing short of a programming fault terminates a run.
package rpcdiff
