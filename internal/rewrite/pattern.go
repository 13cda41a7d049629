// Package rewrite finds `<Field ... component={X} ...>` tags in source text and
// moves the component expression into the tag name position.
//
// The match is textual. The pattern is the ECMAScript expression
//
//	/<Field([^>]*)component=\{(.*)\}\s*([^>]*)>/gm
//
// rendered with JavaScript character-class semantics so that existing
// output is reproduced byte for byte. In particular `(.*)\}` is greedy and
// stops at the last `}` on the line that still lets the remainder match,
// so nested braces survive while two tags on one line collapse into a
// single match. Match.Suspicious reports the cases where the captured
// expression looks wrong.
package rewrite

import (
	"iter"
	"regexp"

	"github.com/phyten/react-ocean-forms-upgrader/internal/model"
)

// Source is the pattern as written for ECMAScript engines.
const Source = `<Field([^>]*)component=\{(.*)\}\s*([^>]*)>`

const (
	// ECMAScript `.` without the s flag: anything but a line terminator.
	jsDot = `[^\n\r\x{2028}\x{2029}]`
	// ECMAScript \s: WhiteSpace plus LineTerminator.
	jsSpace = `[\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`
)

var (
	fieldRe    = regexp.MustCompile(`<Field([^>]*)component=\{(` + jsDot + `*)\}` + jsSpace + `*([^>]*)>`)
	// <$2$1$3> in ECMAScript replacement syntax.
	goTemplate = `<${2}${1}${3}>`
)

// Match is one occurrence of the pattern in a source text.
type Match struct {
	Text       string     `json:"text" yaml:"text" toml:"text"`
	Leading    string     `json:"leading" yaml:"leading" toml:"leading"`
	Expression string     `json:"expression" yaml:"expression" toml:"expression"`
	Trailing   string     `json:"trailing" yaml:"trailing" toml:"trailing"`
	Start      int        `json:"start" yaml:"start" toml:"start"`
	End        int        `json:"end" yaml:"end" toml:"end"`
	Span       model.Span `json:"span" yaml:"span" toml:"span"`
}

// Replacement renders the substitution for this match alone, by applying
// the pattern to the isolated span.
func (m Match) Replacement() string {
	return fieldRe.ReplaceAllString(m.Text, goTemplate)
}

// Suspicious reports whether the braces in the captured expression are
// unbalanced. That happens when the expression was cut at an inner `}` or
// when it ran on into a neighbouring tag on the same line.
func (m Match) Suspicious() bool {
	depth := 0
	for i := 0; i < len(m.Expression); i++ {
		switch m.Expression[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return true
			}
		}
	}
	return depth != 0
}

// Matches returns the occurrences in src in source order. The sequence is
// computed on demand and can be ranged over any number of times.
func Matches(src string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		pos := 0
		for pos <= len(src) {
			loc := fieldRe.FindStringSubmatchIndex(src[pos:])
			if loc == nil {
				return
			}
			for i := range loc {
				if loc[i] >= 0 {
					loc[i] += pos
				}
			}
			if !yield(newMatch(src, loc)) {
				return
			}
			pos = loc[1]
		}
	}
}

func newMatch(src string, loc []int) Match {
	return Match{
		Text:       src[loc[0]:loc[1]],
		Leading:    group(src, loc, 1),
		Expression: group(src, loc, 2),
		Trailing:   group(src, loc, 3),
		Start:      loc[0],
		End:        loc[1],
		Span:       model.SpanOf(src, loc[0], loc[1]),
	}
}

func group(src string, loc []int, n int) string {
	if loc[2*n] < 0 {
		return ""
	}
	return src[loc[2*n]:loc[2*n+1]]
}

// Replace substitutes every occurrence in a single pass and returns the new
// text together with the number of replacements.
func Replace(src string) (string, int) {
	n := 0
	out := fieldRe.ReplaceAllStringFunc(src, func(span string) string {
		n++
		return fieldRe.ReplaceAllString(span, goTemplate)
	})
	return out, n
}
