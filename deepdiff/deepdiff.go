package deepdiff

import (
	"encoding/json"
	"fmt"
	"sort"

	gojson "github.com/goccy/go-json"

	"github.com/jherrera-jump/rpcdiff/internal/jsonpath"
)

// ChangeType indicates whether a change is an addition, removal, or modification
type ChangeType string

const (
	// ChangeTypeAdded indicates an element present in the target only
	ChangeTypeAdded ChangeType = "added"
	// ChangeTypeRemoved indicates an element present in the source only
	ChangeTypeRemoved ChangeType = "removed"
	// ChangeTypeModified indicates an element that differs between the two
	ChangeTypeModified ChangeType = "modified"
)

// Change represents a single difference between two structured values
type Change struct {
	// Path is the accessor chain to the differing position (e.g., "$.result.context.slot")
	Path string
	// Type indicates if this is an addition, removal, or modification
	Type ChangeType
	// OldValue is the sub-value in the source (nil for additions)
	OldValue any
	// NewValue is the sub-value in the target (nil for removals)
	NewValue any
	// Message is a human-readable description of the change
	Message string
}

// String returns a formatted string representation of the change
func (c Change) String() string {
	var symbol string
	switch c.Type {
	case ChangeTypeAdded:
		symbol = "+"
	case ChangeTypeRemoved:
		symbol = "-"
	default:
		symbol = "~"
	}
	return fmt.Sprintf("%s %s [%s]: %s", symbol, c.Path, c.Type, c.Message)
}

// DiffResult contains the aggregated differences between two structured values
type DiffResult struct {
	// Changes contains all detected differences after exclusions
	Changes []Change
	// AddedCount is the number of positions present in the target only
	AddedCount int
	// RemovedCount is the number of positions present in the source only
	RemovedCount int
	// ModifiedCount is the number of positions that differ in value or shape
	ModifiedCount int
}

// Equal reports whether the two values were structurally equal after
// exclusions were applied.
func (r *DiffResult) Equal() bool {
	return len(r.Changes) == 0
}

// Differ compares structured values with a fixed set of exclusion paths
type Differ struct {
	// ExcludePaths are accessor chains whose subtrees are skipped during
	// comparison. Paths that match nothing are a no-op.
	ExcludePaths []string
}

// New creates a new Differ instance with no exclusions
func New() *Differ {
	return &Differ{}
}

// Compare compares two structured values using the given exclusion paths.
// It returns an error only when an exclusion path cannot be parsed; a
// difference between the values is a normal result, not an error.
func Compare(source, target any, excludePaths []string) (*DiffResult, error) {
	d := &Differ{ExcludePaths: excludePaths}
	return d.Compare(source, target)
}

// Compare compares two structured values.
func (d *Differ) Compare(source, target any) (*DiffResult, error) {
	exclude := make([]*jsonpath.Path, 0, len(d.ExcludePaths))
	for _, raw := range d.ExcludePaths {
		p, err := jsonpath.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("deepdiff: invalid exclude path %q: %w", raw, err)
		}
		exclude = append(exclude, p)
	}

	w := &walker{exclude: exclude}
	w.walk(jsonpath.Steps{}, source, target)

	result := &DiffResult{Changes: w.changes}
	for _, change := range result.Changes {
		switch change.Type {
		case ChangeTypeAdded:
			result.AddedCount++
		case ChangeTypeRemoved:
			result.RemovedCount++
		case ChangeTypeModified:
			result.ModifiedCount++
		}
	}
	return result, nil
}

// walker carries the exclusion set and accumulates changes during one
// comparison. A fresh walker per comparison keeps Differ reusable and
// side-effect free.
type walker struct {
	exclude []*jsonpath.Path
	changes []Change
}

func (w *walker) excluded(loc jsonpath.Steps) bool {
	for _, p := range w.exclude {
		if p.Matches(loc) {
			return true
		}
	}
	return false
}

// walk compares source and target at the given location. Exclusion is
// checked at every position on the way down, so excluding a parent prunes
// the entire subtree.
func (w *walker) walk(loc jsonpath.Steps, source, target any) {
	if w.excluded(loc) {
		return
	}

	sourceMap, sourceIsMap := source.(map[string]any)
	targetMap, targetIsMap := target.(map[string]any)
	sourceSeq, sourceIsSeq := source.([]any)
	targetSeq, targetIsSeq := target.([]any)

	switch {
	case sourceIsMap && targetIsMap:
		w.walkMap(loc, sourceMap, targetMap)
	case sourceIsSeq && targetIsSeq:
		w.walkSeq(loc, sourceSeq, targetSeq)
	case sourceIsMap || targetIsMap || sourceIsSeq || targetIsSeq:
		// Incompatible shapes: a single difference at this position.
		w.record(Change{
			Path:     loc.String(),
			Type:     ChangeTypeModified,
			OldValue: source,
			NewValue: target,
			Message:  fmt.Sprintf("shape changed from %s to %s", kindOf(source), kindOf(target)),
		})
	default:
		if !scalarEqual(source, target) {
			w.record(Change{
				Path:     loc.String(),
				Type:     ChangeTypeModified,
				OldValue: source,
				NewValue: target,
				Message:  fmt.Sprintf("value changed from %s to %s", renderValue(source), renderValue(target)),
			})
		}
	}
}

func (w *walker) walkMap(loc jsonpath.Steps, source, target map[string]any) {
	keys := make([]string, 0, len(source)+len(target))
	seen := make(map[string]bool, len(source)+len(target))
	for k := range source {
		keys = append(keys, k)
		seen[k] = true
	}
	for k := range target {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		childLoc := loc.Key(k)
		sourceVal, inSource := source[k]
		targetVal, inTarget := target[k]

		switch {
		case inSource && inTarget:
			w.walk(childLoc, sourceVal, targetVal)
		case inSource:
			if w.excluded(childLoc) {
				continue
			}
			w.record(Change{
				Path:     childLoc.String(),
				Type:     ChangeTypeRemoved,
				OldValue: sourceVal,
				Message:  fmt.Sprintf("key %q present in source only", k),
			})
		default:
			if w.excluded(childLoc) {
				continue
			}
			w.record(Change{
				Path:     childLoc.String(),
				Type:     ChangeTypeAdded,
				NewValue: targetVal,
				Message:  fmt.Sprintf("key %q present in target only", k),
			})
		}
	}
}

func (w *walker) walkSeq(loc jsonpath.Steps, source, target []any) {
	shared := len(source)
	if len(target) < shared {
		shared = len(target)
	}

	for i := 0; i < shared; i++ {
		w.walk(loc.Index(i), source[i], target[i])
	}

	// Length mismatch: one change per unmatched trailing element.
	for i := shared; i < len(source); i++ {
		childLoc := loc.Index(i)
		if w.excluded(childLoc) {
			continue
		}
		w.record(Change{
			Path:     childLoc.String(),
			Type:     ChangeTypeRemoved,
			OldValue: source[i],
			Message:  fmt.Sprintf("element %d present in source only", i),
		})
	}
	for i := shared; i < len(target); i++ {
		childLoc := loc.Index(i)
		if w.excluded(childLoc) {
			continue
		}
		w.record(Change{
			Path:     childLoc.String(),
			Type:     ChangeTypeAdded,
			NewValue: target[i],
			Message:  fmt.Sprintf("element %d present in target only", i),
		})
	}
}

func (w *walker) record(c Change) {
	w.changes = append(w.changes, c)
}

// scalarEqual compares two scalar values. Numbers compare across integer and
// float representations; every other kind must match exactly.
func scalarEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if af, aNum := toFloat(a); aNum {
		bf, bNum := toFloat(b)
		return bNum && af == bf
	}
	if _, bNum := toFloat(b); bNum {
		return false
	}
	return a == b
}

// toFloat widens any numeric representation that a JSON or YAML decoder may
// produce. Booleans are deliberately not numbers.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "mapping"
	case []any:
		return "sequence"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		if _, ok := toFloat(v); ok {
			return "number"
		}
		return fmt.Sprintf("%T", v)
	}
}

// renderValue renders a sub-value compactly for change messages.
func renderValue(v any) string {
	b, err := gojson.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
