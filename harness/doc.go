/*
Package harness drives an ordered corpus of test cases through two JSON-RPC
endpoints and compares the paired responses.

For each case the harness dispatches the payload to the reference endpoint
and the candidate endpoint (the two calls run concurrently, both complete
before comparison), feeds both responses to deepdiff with the case's
exclusion paths, reports the verdict immediately, and accumulates an ordered
outcome list. When StopAfterFailures is set, the run terminates as soon as
the cumulative failure count reaches it; the aggregate summary is skipped on
that path, matching the long-standing behavior of the tool this replaces.

The transport is an injected collaborator so the runner is testable without
network I/O:

	type fakeTransport map[string]any

	func (f fakeTransport) Call(_ context.Context, endpoint string, _ any) any {
		return f[endpoint]
	}

Cases run sequentially and at most once; no case is retried. The only
shared state, the outcome list and failure counter, is owned by the runner.
*/
package harness
