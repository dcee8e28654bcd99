// Package jsonpath provides accessor-chain parsing and matching for response
// exclusion paths.
//
// An exclusion path names a position inside a JSON-shaped value whose subtree
// is ignored during comparison. The syntax is a small subset of JSONPath with
// a few affordances for hand-written paths:
//
//   - Optional $ or root prefix: $.result.context.slot, root['error']['data']
//   - .field or ['field'] child access; a bare leading field is accepted
//     (result.context.slot)
//   - [0] array index
//   - .* or [*] wildcard (matches any single key or index)
//
// Recursive descent, slicing, and filter expressions are not supported;
// exclusion paths name positions, they do not query.
package jsonpath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Path represents a parsed exclusion path.
type Path struct {
	raw      string
	segments []Segment
}

// String returns the original path expression.
func (p *Path) String() string {
	return p.raw
}

// Matches reports whether the path names exactly the given location.
// A parent path does not match a descendant location here; subtree pruning
// falls out of the walk testing every location on the way down.
func (p *Path) Matches(loc Steps) bool {
	if len(p.segments) != len(loc) {
		return false
	}
	for i, seg := range p.segments {
		if !seg.matches(loc[i]) {
			return false
		}
	}
	return true
}

// Segment represents a single segment in an exclusion path.
type Segment interface {
	matches(step Step) bool
}

// ChildSegment represents a child property selector (.field or ['field']).
type ChildSegment struct {
	Key string
}

func (s ChildSegment) matches(step Step) bool {
	return !step.indexed && step.Key == s.Key
}

// IndexSegment represents an array index selector ([n]).
type IndexSegment struct {
	Index int
}

func (s IndexSegment) matches(step Step) bool {
	return step.indexed && step.Index == s.Index
}

// WildcardSegment represents a wildcard selector (.* or [*]).
// It matches any single key or index.
type WildcardSegment struct{}

func (WildcardSegment) matches(Step) bool { return true }

// Parse parses an exclusion path expression into a Path.
//
// Examples:
//
//	Parse("result.context.slot")
//	Parse("$.error.data")
//	Parse("root['result']['value'][0]")
//	Parse("params[1].commitment")
//	Parse("result.*.slot")
//
// The bare word "root" and the bare "$" parse to the root position itself,
// which excludes the entire document. A literal top-level key named "root"
// can be addressed as ['root'].
func Parse(expr string) (*Path, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("jsonpath: empty expression")
	}

	p := &parser{input: expr}
	segments, err := p.parse()
	if err != nil {
		return nil, err
	}

	return &Path{
		raw:      expr,
		segments: segments,
	}, nil
}

// parser is the internal exclusion path parser.
type parser struct {
	input string
	pos   int
}

func (p *parser) parse() ([]Segment, error) {
	var segments []Segment

	// Optional root marker: "$" or "root" (the latter matches the python
	// DeepDiff rendering root['a']['b'] used by older corpus files).
	if p.consume('$') {
		// consumed
	} else if p.hasRootWord() {
		p.pos += len("root")
	}

	bareAllowed := p.pos == 0 // no root marker seen, a bare identifier may start the path

	for p.pos < len(p.input) {
		ch := p.peek()

		switch {
		case ch == '.':
			p.advance()
			seg, err := p.parseDotSegment()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)

		case ch == '[':
			p.advance()
			seg, err := p.parseBracketSegment()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)

		case bareAllowed && len(segments) == 0:
			if ch == '*' {
				p.advance()
				segments = append(segments, WildcardSegment{})
				continue
			}
			key := p.parseIdentifier()
			if key == "" {
				return nil, fmt.Errorf("jsonpath: unexpected character %q at position %d", ch, p.pos)
			}
			segments = append(segments, ChildSegment{Key: key})

		default:
			return nil, fmt.Errorf("jsonpath: unexpected character %q at position %d", ch, p.pos)
		}
	}

	return segments, nil
}

// hasRootWord reports whether the input at the current position reads "root"
// used as a prefix rather than as a key name.
func (p *parser) hasRootWord() bool {
	rest := p.input[p.pos:]
	if !strings.HasPrefix(rest, "root") {
		return false
	}
	if len(rest) == len("root") {
		return true
	}
	next := rest[len("root")]
	return next == '.' || next == '['
}

func (p *parser) parseDotSegment() (Segment, error) {
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("jsonpath: unexpected end after '.'")
	}

	if p.peek() == '*' {
		p.advance()
		return WildcardSegment{}, nil
	}

	key := p.parseIdentifier()
	if key == "" {
		return nil, fmt.Errorf("jsonpath: expected identifier after '.' at position %d", p.pos)
	}

	return ChildSegment{Key: key}, nil
}

func (p *parser) parseBracketSegment() (Segment, error) {
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("jsonpath: unexpected end after '['")
	}

	ch := p.peek()

	// Wildcard: [*]
	if ch == '*' {
		p.advance()
		if !p.consume(']') {
			return nil, fmt.Errorf("jsonpath: expected ']' after '[*'")
		}
		return WildcardSegment{}, nil
	}

	// Quoted string: ['key'] or ["key"]
	if ch == '\'' || ch == '"' {
		quote := ch
		p.advance()
		key, err := p.parseQuotedString(quote)
		if err != nil {
			return nil, err
		}
		if !p.consume(']') {
			return nil, fmt.Errorf("jsonpath: expected ']' after quoted key")
		}
		return ChildSegment{Key: key}, nil
	}

	// Numeric index
	if unicode.IsDigit(rune(ch)) || ch == '-' {
		numStr := p.parseNumber()
		if !p.consume(']') {
			return nil, fmt.Errorf("jsonpath: expected ']' after index")
		}
		idx, err := strconv.Atoi(numStr)
		if err != nil {
			return nil, fmt.Errorf("jsonpath: invalid index %q: %w", numStr, err)
		}
		if idx < 0 {
			return nil, fmt.Errorf("jsonpath: negative index %d not supported", idx)
		}
		return IndexSegment{Index: idx}, nil
	}

	return nil, fmt.Errorf("jsonpath: unexpected character %q in bracket at position %d", ch, p.pos)
}

func (p *parser) parseIdentifier() string {
	start := p.pos
	for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) parseQuotedString(quote byte) (string, error) {
	var result strings.Builder
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == quote {
			p.pos++
			return result.String(), nil
		}
		if ch == '\\' && p.pos+1 < len(p.input) {
			p.pos++
			escaped := p.input[p.pos]
			switch escaped {
			case 'n':
				result.WriteByte('\n')
			case 't':
				result.WriteByte('\t')
			case '\\':
				result.WriteByte('\\')
			case '\'':
				result.WriteByte('\'')
			case '"':
				result.WriteByte('"')
			default:
				result.WriteByte(escaped)
			}
			p.pos++
			continue
		}
		result.WriteByte(ch)
		p.pos++
	}
	return "", fmt.Errorf("jsonpath: unterminated string at position %d", p.pos)
}

func (p *parser) parseNumber() string {
	start := p.pos
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && unicode.IsDigit(rune(p.input[p.pos])) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) advance() {
	if p.pos < len(p.input) {
		p.pos++
	}
}

func (p *parser) consume(ch byte) bool {
	if p.peek() == ch {
		p.advance()
		return true
	}
	return false
}

func isIdentChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_' || ch == '-'
}
