package corpus

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/jherrera-jump/rpcdiff/harness"
)

// systemProgram is a well-known account that exists on every network, so
// getAccountInfo against it always has data to disagree about.
const systemProgram = "11111111111111111111111111111111"

// slotExclusion tolerates the finalized slot differing across validators.
var slotExclusion = []string{"result.context.slot"}

// errorDataExclusion tolerates implementations attaching different
// diagnostic detail to protocol-level errors.
var errorDataExclusion = []string{"error.data"}

// AllTypes returns the boundary-value grid used to fuzz every fuzzable
// position: one representative per JSON type category plus the empty and
// negative edges. Callers receive a fresh slice on every call.
func AllTypes() []any {
	return []any{
		1,
		1.1,
		-1,
		-1.1,
		nil,
		true,
		"abc",
		"",
		[]any{},
		map[string]any{},
		[]any{1},
		map[string]any{"1": 1},
	}
}

// wrapped returns each value of vs wrapped in a single-element array,
// fuzzing the one-param call shape.
func wrapped(vs []any) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = []any{v}
	}
	return out
}

// Default returns the built-in corpus in its canonical order.
func Default() []harness.Case {
	var cases []harness.Case

	// Envelope field omission.
	cases = append(cases,
		harness.Case{
			Description: "getHealth jsonrpc=undefined",
			Payload:     map[string]any{"id": 1, "method": "getHealth"},
		},
		harness.Case{
			Description: "getHealth id=undefined",
			Payload:     map[string]any{"jsonrpc": "2.0", "method": "getHealth"},
		},
		harness.Case{
			Description: "getHealth id=undefined and jsonrpc=undefined",
			Payload:     map[string]any{"method": "getHealth"},
		},
	)

	// Envelope field fuzzing.
	for _, v := range append(AllTypes(), "1.0", "2.0", "3.0") {
		cases = append(cases, harness.Case{
			Description: fmt.Sprintf("getHealth jsonrpc=%s", label(v)),
			Payload:     map[string]any{"jsonrpc": v, "id": 1, "method": "getHealth"},
		})
	}
	for _, v := range AllTypes() {
		cases = append(cases, harness.Case{
			Description: fmt.Sprintf("getHealth id=%s", label(v)),
			Payload:     map[string]any{"jsonrpc": "2.0", "id": v, "method": "getHealth"},
		})
	}

	// Params fuzzing on a method that takes none.
	for _, v := range append(AllTypes(), wrapped(AllTypes())...) {
		cases = append(cases, harness.Case{
			Description:  fmt.Sprintf("getHealth params=%s", label(v)),
			Payload:      map[string]any{"jsonrpc": "2.0", "id": 1, "method": "getHealth", "params": v},
			ExcludePaths: errorDataExclusion,
		})
	}

	// Params fuzzing on getAccountInfo, including malformed account keys.
	accountParams := append(AllTypes(), wrapped(AllTypes())...)
	accountParams = append(accountParams,
		[]any{"wrong-size"},
		[]any{"???????????????????????????????????????????"},
		[]any{"4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofLRda4"},
	)
	for _, v := range accountParams {
		cases = append(cases, harness.Case{
			Description:  fmt.Sprintf("getAccountInfo params=%s", label(v)),
			Payload:      map[string]any{"jsonrpc": "2.0", "id": 1, "method": "getAccountInfo", "params": v},
			ExcludePaths: errorDataExclusion,
		})
	}

	// Commitment fuzzing.
	for _, v := range append(AllTypes(), "finalized", "confirmed", "processed") {
		cases = append(cases, accountInfoCase("commitment", v, map[string]any{"commitment": v}))
	}

	// Encoding fuzzing. jsonParsed is deliberately absent: it diverges by
	// design. base64+zstd is absent because distinct compressed payloads
	// can decompress to the same data.
	encodings := AllTypes()
	for _, key := range []string{"base58", "base64", "binary"} {
		for _, v := range AllTypes() {
			encodings = append(encodings, map[string]any{key: v})
		}
	}
	encodings = append(encodings,
		map[string]any{"base58": 1, "unknown": 2},
		"base58", "base64", "binary",
	)
	for _, v := range encodings {
		cases = append(cases, accountInfoCase("encoding", v, map[string]any{"encoding": v}))
	}

	// dataSlice fuzzing alongside a fixed valid encoding.
	dataSlices := append(AllTypes(),
		[]any{32, 7},
		[]any{7, 32},
		[]any{7, 3},
	)
	for _, v := range AllTypes() {
		dataSlices = append(dataSlices, []any{7, v}, []any{v, 3})
	}
	for _, v := range AllTypes() {
		dataSlices = append(dataSlices,
			map[string]any{"length": v},
			map[string]any{"offset": v},
			map[string]any{"length": v, "offset": 0},
			map[string]any{"length": 0, "offset": v},
		)
	}
	dataSlices = append(dataSlices,
		map[string]any{"unknown": 1},
		map[string]any{"length": 1, "offset": 0},
	)
	for _, v := range dataSlices {
		cases = append(cases, accountInfoCase("dataSlice", v, map[string]any{
			"encoding":  "base64",
			"dataSlice": v,
		}))
	}

	return cases
}

// accountInfoCase builds a getAccountInfo case against the system program
// with the given config object, labelled by the fuzzed option.
func accountInfoCase(option string, value any, config map[string]any) harness.Case {
	return harness.Case{
		Description:  fmt.Sprintf("getAccountInfo params[1].%s=%s", option, label(value)),
		Payload:      map[string]any{"jsonrpc": "2.0", "id": 1, "method": "getAccountInfo", "params": []any{systemProgram, config}},
		ExcludePaths: slotExclusion,
	}
}

// label renders a fuzzed value compactly for case descriptions.
func label(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
