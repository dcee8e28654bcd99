package jsonpath

import (
	"strconv"
	"strings"
)

// Step is one level of a concrete location visited while walking a value:
// either a mapping key or a sequence index.
type Step struct {
	Key     string
	Index   int
	indexed bool
}

// Key returns a Step addressing a mapping key.
func Key(k string) Step {
	return Step{Key: k}
}

// Index returns a Step addressing a sequence index.
func Index(i int) Step {
	return Step{Index: i, indexed: true}
}

// IsIndex reports whether the step addresses a sequence index.
func (s Step) IsIndex() bool {
	return s.indexed
}

// Steps is a concrete location inside a value, from the root down.
// The zero value addresses the root itself.
type Steps []Step

// Key returns a new location extended by a mapping key.
// The receiver is not modified.
func (s Steps) Key(k string) Steps {
	return s.child(Key(k))
}

// Index returns a new location extended by a sequence index.
// The receiver is not modified.
func (s Steps) Index(i int) Steps {
	return s.child(Index(i))
}

func (s Steps) child(step Step) Steps {
	// Copy on extend so sibling locations never alias the same backing array.
	out := make(Steps, len(s)+1)
	copy(out, s)
	out[len(s)] = step
	return out
}

// String renders the location as an accessor chain rooted at $:
// "$", "$.result.context.slot", "$.params[1]". Keys that are not plain
// identifiers are rendered bracketed and quoted.
func (s Steps) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, step := range s {
		if step.indexed {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(step.Index))
			b.WriteByte(']')
			continue
		}
		if isPlainIdent(step.Key) {
			b.WriteByte('.')
			b.WriteString(step.Key)
			continue
		}
		b.WriteString("['")
		b.WriteString(strings.ReplaceAll(step.Key, "'", "\\'"))
		b.WriteString("']")
	}
	return b.String()
}

func isPlainIdent(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		if !isIdentChar(key[i]) {
			return false
		}
	}
	return true
}
