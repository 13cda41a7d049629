package rewrite

import (
	"testing"
)

// oracleInputs exercises the places where Go and ECMAScript regular
// expressions usually disagree.
var oracleInputs = []string{
	`<Field className="x" component={MyInput} required>`,
	`<Field component={renderField({ foo: 1 })} />`,
	`<Field component={A} /><Field component={B} />`,
	`<Field component={Input} validate={required}>`,
	"<Field\n  name=\"a\"\n  component={Input}\n  label=\"b\"\n/>",
	"<Field component={A}\r}>",
	"<Field component={A}\r\n  label=\"x\"\r\n/>\r\n<Field component={B} />",
	"<Field component={A}\u2028}>",
	"<Field component={A}\u00a0b>",
	"<Field component={A}\u3000\ufeffb>",
	"<Field label=\"日本語\" component={Input} />\n<Field label=\"😀\" component={Emoji} />",
	"// \xff\xfe latin1 caf\xe9\n<Field component={X} />\n",
	"<Field label=\"caf\xe9\" component={\xffX} />",
	"no fields here",
	"<Field name=\"a\" />",
	"",
}

func TestECMAScriptEngineAgreesWithRegexp(t *testing.T) {
	js, err := NewECMAScriptEngine()
	if err != nil {
		t.Fatalf("NewECMAScriptEngine: %v", err)
	}
	var re RegexpEngine
	for _, src := range oracleInputs {
		want, err := re.Find(src)
		if err != nil {
			t.Fatalf("regexp Find(%q): %v", src, err)
		}
		got, err := js.Find(src)
		if err != nil {
			t.Fatalf("ecmascript Find(%q): %v", src, err)
		}
		if len(got) != len(want) {
			t.Fatalf("Find(%q): ecmascript found %d, regexp found %d", src, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Find(%q)[%d]:\necmascript %+v\n    regexp %+v", src, i, got[i], want[i])
			}
			jsAfter, err := js.Render(got[i].Text)
			if err != nil {
				t.Fatalf("ecmascript Render: %v", err)
			}
			if reAfter := want[i].Replacement(); jsAfter != reAfter {
				t.Fatalf("Render(%q): ecmascript %q, regexp %q", got[i].Text, jsAfter, reAfter)
			}
		}

		wantText, wantN, _ := re.Replace(src)
		gotText, gotN, err := js.Replace(src)
		if err != nil {
			t.Fatalf("ecmascript Replace(%q): %v", src, err)
		}
		if gotText != wantText || gotN != wantN {
			t.Fatalf("Replace(%q):\necmascript (%q, %d)\n    regexp (%q, %d)", src, gotText, gotN, wantText, wantN)
		}
	}
}

func TestECMAScriptEngineKeepsInvalidUTF8(t *testing.T) {
	js, err := NewECMAScriptEngine()
	if err != nil {
		t.Fatalf("NewECMAScriptEngine: %v", err)
	}
	src := "// \xff\xfe latin1 caf\xe9\n<Field label=\"\xe9\" component={X} />\n"
	want := "// \xff\xfe latin1 caf\xe9\n<X label=\"\xe9\" />\n"
	got, n, err := js.Replace(src)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got != want || n != 1 {
		t.Fatalf("Replace = (%q, %d), want (%q, 1)", got, n, want)
	}
	matches, err := js.Find(src)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(matches) != 1 || matches[0].Leading != " label=\"\xe9\" " {
		t.Fatalf("captures should be cut from the original bytes: %+v", matches)
	}
}

func TestNewEngine(t *testing.T) {
	cases := map[string]string{
		"":           EngineRegexp,
		"regexp":     EngineRegexp,
		"REGEXP":     EngineRegexp,
		"ecmascript": EngineECMAScript,
		"js":         EngineECMAScript,
	}
	for name, want := range cases {
		eng, err := NewEngine(name)
		if err != nil {
			t.Fatalf("NewEngine(%q): %v", name, err)
		}
		if eng.Name() != want {
			t.Fatalf("NewEngine(%q).Name() = %q, want %q", name, eng.Name(), want)
		}
	}
	if _, err := NewEngine("pcre"); err == nil {
		t.Fatal("expected error for unknown engine")
	}
}

func TestByteOffset(t *testing.T) {
	src := "aé😀b"
	cases := []struct{ units, want int }{
		{0, 0},
		{1, 1},
		{2, 3},
		{4, 7},
		{5, 8},
		{99, 8},
	}
	for _, tc := range cases {
		if got := byteOffset(src, tc.units); got != tc.want {
			t.Fatalf("byteOffset(%d) = %d, want %d", tc.units, got, tc.want)
		}
	}
}
