// Package corpus defines the test corpus driven through the harness.
//
// The built-in corpus is a declarative boundary-value grid over the
// getHealth and getAccountInfo RPC methods: every envelope field (jsonrpc,
// id, params) and every getAccountInfo config option (commitment, encoding,
// dataSlice) is fuzzed across the full set of JSON type categories in
// AllTypes. Cases touching finalized state exclude result.context.slot,
// since the observed slot legitimately differs across validators.
//
// Corpora can also be loaded from YAML files, one document per run:
//
//	- description: getHealth happy path
//	  payload:
//	    jsonrpc: "2.0"
//	    id: 1
//	    method: getHealth
//	- description: getAccountInfo finalized
//	  payload:
//	    jsonrpc: "2.0"
//	    id: 1
//	    method: getAccountInfo
//	    params: ["11111111111111111111111111111111", {commitment: finalized}]
//	  exclude_paths:
//	    - result.context.slot
package corpus
