package rewrite

import (
	"iter"
	"slices"
	"strings"
	"testing"
)

func TestMatchesCapturesGroups(t *testing.T) {
	src := `<Field className="x" component={MyInput} required>`
	got := slices.Collect(Matches(src))
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	m := got[0]
	if m.Leading != ` className="x" ` {
		t.Fatalf("leading mismatch: %q", m.Leading)
	}
	if m.Expression != "MyInput" {
		t.Fatalf("expression mismatch: %q", m.Expression)
	}
	if m.Trailing != "required" {
		t.Fatalf("trailing mismatch: %q", m.Trailing)
	}
	if m.Start != 0 || m.End != len(src) || m.Text != src {
		t.Fatalf("span mismatch: start=%d end=%d text=%q", m.Start, m.End, m.Text)
	}
	if got := m.Replacement(); got != `<MyInput className="x" required>` {
		t.Fatalf("replacement mismatch: %q", got)
	}
}

func TestReplacementCases(t *testing.T) {
	cases := []struct {
		name       string
		src        string
		want       string
		expression string
		suspicious bool
	}{
		{
			name:       "nested braces keep the whole call",
			src:        `<Field component={renderField({ foo: 1 })} />`,
			want:       `<renderField({ foo: 1 }) />`,
			expression: `renderField({ foo: 1 })`,
		},
		{
			name:       "two tags on one line collapse",
			src:        `<Field component={A} /><Field component={B} />`,
			want:       `<A} /><Field component={B />`,
			expression: `A} /><Field component={B`,
			suspicious: true,
		},
		{
			name:       "trailing brace attribute is swallowed",
			src:        `<Field component={Input} validate={required}>`,
			want:       `<Input} validate={required >`,
			expression: `Input} validate={required`,
			suspicious: true,
		},
		{
			name:       "multi-line tag",
			src:        "<Field\n  name=\"a\"\n  component={Input}\n  label=\"b\"\n/>",
			want:       "<Input\n  name=\"a\"\n  label=\"b\"\n/>",
			expression: "Input",
		},
		{
			name:       "carriage return ends the expression",
			src:        "<Field component={A}\r}>",
			want:       "<A }>",
			expression: "A",
		},
		{
			name:       "line separator ends the expression",
			src:        "<Field component={A}\u2028}>",
			want:       "<A }>",
			expression: "A",
		},
		{
			name:       "no-break space is whitespace",
			src:        "<Field component={A}\u00a0b>",
			want:       "<A b>",
			expression: "A",
		},
		{
			name:       "member expression",
			src:        `<Field name="email" component={Inputs.Email} />`,
			want:       `<Inputs.Email name="email" />`,
			expression: "Inputs.Email",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matches := slices.Collect(Matches(tc.src))
			if len(matches) != 1 {
				t.Fatalf("expected 1 match, got %d", len(matches))
			}
			m := matches[0]
			if m.Expression != tc.expression {
				t.Fatalf("expression = %q, want %q", m.Expression, tc.expression)
			}
			if got := m.Replacement(); got != tc.want {
				t.Fatalf("Replacement() = %q, want %q", got, tc.want)
			}
			if got := m.Suspicious(); got != tc.suspicious {
				t.Fatalf("Suspicious() = %v, want %v", got, tc.suspicious)
			}
			out, n := Replace(tc.src)
			if n != 1 || out != tc.want {
				t.Fatalf("Replace = (%q, %d), want (%q, 1)", out, n, tc.want)
			}
		})
	}
}

func TestMatchesIsRestartable(t *testing.T) {
	src := strings.Join([]string{
		`import { Field } from 'react-ocean-forms';`,
		`<Field name="a" component={Input} />`,
		`<p>unrelated</p>`,
		`<Field name="b" component={Select} options={opts} />`,
		`<Field name="c" component={Check} />`,
	}, "\n")
	first := slices.Collect(Matches(src))
	second := slices.Collect(Matches(src))
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 matches twice, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("match %d differs between iterations", i)
		}
	}
	if first[1].Span.StartLine != 4 {
		t.Fatalf("second match should start on line 4, got %d", first[1].Span.StartLine)
	}
	for i := 1; i < len(first); i++ {
		if first[i].Start < first[i-1].End {
			t.Fatalf("matches overlap: %+v %+v", first[i-1], first[i])
		}
	}
}

func TestMatchesStopsWhenConsumerStops(t *testing.T) {
	src := "<Field component={A}>\n<Field component={B}>\n<Field component={C}>"
	var seen []string
	for m := range Matches(src) {
		seen = append(seen, m.Expression)
		if len(seen) == 2 {
			break
		}
	}
	if !slices.Equal(seen, []string{"A", "B"}) {
		t.Fatalf("unexpected expressions: %v", seen)
	}
}

func TestReplaceWithoutMatches(t *testing.T) {
	src := "<Field name=\"a\" />\n<Input component=\"x\" />"
	out, n := Replace(src)
	if n != 0 || out != src {
		t.Fatalf("expected untouched text, got (%q, %d)", out, n)
	}
	if _, ok := first(Matches(src)); ok {
		t.Fatal("expected empty sequence")
	}
}

func TestReplaceWholeFile(t *testing.T) {
	src := "const A = () => (\n  <form>\n    <Field name=\"a\" component={Input} />\n    <Field name=\"b\" component={Input} disabled />\n  </form>\n);\n"
	want := "const A = () => (\n  <form>\n    <Input name=\"a\" />\n    <Input name=\"b\" disabled />\n  </form>\n);\n"
	out, n := Replace(src)
	if n != 2 {
		t.Fatalf("expected 2 replacements, got %d", n)
	}
	if out != want {
		t.Fatalf("Replace mismatch:\n got: %q\nwant: %q", out, want)
	}
}

func TestSuspiciousHeuristic(t *testing.T) {
	cases := map[string]bool{
		"Input":                   false,
		"render({ a: { b: 1 } })": false,
		"render({ a: 1 ":          true,
		"A} foo={B":               true,
		"":                        false,
	}
	for expr, want := range cases {
		if got := (Match{Expression: expr}).Suspicious(); got != want {
			t.Fatalf("Suspicious(%q) = %v, want %v", expr, got, want)
		}
	}
}

func first[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}
