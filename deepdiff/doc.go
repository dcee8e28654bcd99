/*
Package deepdiff provides structural comparison of JSON-shaped values with
selective path exclusion.

# Overview

The package compares two arbitrary structured values (nested mappings,
sequences, and scalars, as produced by decoding JSON or YAML) by walking both
in lockstep and aggregating every difference into a DiffResult. Positions
matched by an exclusion path are skipped entirely, which is how volatile
fields such as slot numbers are tolerated when comparing responses from two
RPC implementations.

# Usage

The package provides two API styles:

 1. A package-level convenience function for one-off comparisons
 2. A struct-based API for reusable instances with a fixed exclusion set

	result, err := deepdiff.Compare(a, b, []string{"result.context.slot"})
	if err != nil {
		return err
	}
	if !result.Equal() {
		for _, change := range result.Changes {
			fmt.Println(change)
		}
	}

# Comparison Rules

  - Mappings compare by key set; a key present on one side only is a
    difference. Shared keys recurse.
  - Sequences compare element-wise by index. Order is significant and a
    length mismatch is reported per unmatched trailing element.
  - Scalars are equal iff they have the same kind and value. Numeric values
    compare across representations (1 equals 1.0), but kinds never blur
    otherwise: true is not 1, "1" is not 1.
  - Values of incompatible shape (a mapping against a sequence, a scalar
    against a mapping) are a single difference at that position.

Comparison is deterministic (mapping keys visit in sorted order) and free of
side effects. Inputs are trees as decoded from a wire format; cycles are not
detected.

# Exclusion Paths

Exclusion paths use the accessor-chain syntax documented in the internal
jsonpath package: "result.context.slot", "$.error.data",
"root['error']['data']", "params[1]", with single-level wildcards.
Excluding a parent excludes every descendant; excluding a path that exists
in neither value is a no-op.
*/
package deepdiff
