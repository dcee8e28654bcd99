package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForms(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []Segment
	}{
		{
			name: "bare dotted",
			expr: "result.context.slot",
			want: []Segment{ChildSegment{Key: "result"}, ChildSegment{Key: "context"}, ChildSegment{Key: "slot"}},
		},
		{
			name: "dollar prefix",
			expr: "$.error.data",
			want: []Segment{ChildSegment{Key: "error"}, ChildSegment{Key: "data"}},
		},
		{
			name: "deepdiff root style",
			expr: "root['result']['context']['slot']",
			want: []Segment{ChildSegment{Key: "result"}, ChildSegment{Key: "context"}, ChildSegment{Key: "slot"}},
		},
		{
			name: "root dot style",
			expr: "root.error",
			want: []Segment{ChildSegment{Key: "error"}},
		},
		{
			name: "index segment",
			expr: "params[1].commitment",
			want: []Segment{ChildSegment{Key: "params"}, IndexSegment{Index: 1}, ChildSegment{Key: "commitment"}},
		},
		{
			name: "double quoted key",
			expr: `$["strange key"]`,
			want: []Segment{ChildSegment{Key: "strange key"}},
		},
		{
			name: "dot wildcard",
			expr: "result.*.slot",
			want: []Segment{ChildSegment{Key: "result"}, WildcardSegment{}, ChildSegment{Key: "slot"}},
		},
		{
			name: "bracket wildcard",
			expr: "params[*]",
			want: []Segment{ChildSegment{Key: "params"}, WildcardSegment{}},
		},
		{
			name: "bare dollar addresses the root",
			expr: "$",
			want: nil,
		},
		{
			name: "bare root word addresses the root",
			expr: "root",
			want: nil,
		},
		{
			name: "literal root key via bracket",
			expr: "['root']",
			want: []Segment{ChildSegment{Key: "root"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.segments)
			assert.Equal(t, tt.expr, p.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	exprs := []string{
		"",
		"   ",
		".",
		"$.",
		"a..b",
		"a[",
		"a[abc]",
		"a[1",
		"a['unterminated]",
		"a.b!",
		"a[-1]",
	}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			assert.Error(t, err)
		})
	}
}

func TestPathMatches(t *testing.T) {
	tests := []struct {
		expr  string
		loc   Steps
		match bool
	}{
		{"result.context.slot", Steps{}.Key("result").Key("context").Key("slot"), true},
		{"result.context.slot", Steps{}.Key("result").Key("context"), false},
		{"result.context.slot", Steps{}.Key("result").Key("context").Key("slot").Key("extra"), false},
		{"result.context.slot", Steps{}.Key("result").Key("value").Key("slot"), false},
		{"params[1]", Steps{}.Key("params").Index(1), true},
		{"params[1]", Steps{}.Key("params").Index(2), false},
		{"params[1]", Steps{}.Key("params").Key("1"), false},
		{"result.*.slot", Steps{}.Key("result").Key("context").Key("slot"), true},
		{"result.*.slot", Steps{}.Key("result").Index(3).Key("slot"), true},
		{"$", Steps{}, true},
		{"$", Steps{}.Key("result"), false},
	}

	for _, tt := range tests {
		t.Run(tt.expr+" vs "+tt.loc.String(), func(t *testing.T) {
			p, err := Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.match, p.Matches(tt.loc))
		})
	}
}

func TestStepsString(t *testing.T) {
	assert.Equal(t, "$", Steps{}.String())
	assert.Equal(t, "$.result.context.slot", Steps{}.Key("result").Key("context").Key("slot").String())
	assert.Equal(t, "$.params[1].commitment", Steps{}.Key("params").Index(1).Key("commitment").String())
	assert.Equal(t, "$['strange key']", Steps{}.Key("strange key").String())
	assert.Equal(t, "$['']", Steps{}.Key("").String())
}

func TestStepsExtendDoesNotAlias(t *testing.T) {
	base := Steps{}.Key("result")
	a := base.Key("context")
	b := base.Key("value")

	assert.Equal(t, "$.result.context", a.String())
	assert.Equal(t, "$.result.value", b.String())
	assert.Equal(t, "$.result", base.String())
}
