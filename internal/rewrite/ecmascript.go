package rewrite

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/dop251/goja"

	"github.com/phyten/react-ocean-forms-upgrader/internal/model"
)

const ecmascriptProgram = `
function find(text) {
  var re = new RegExp(source, 'gm');
  var out = [];
  var m;
  while ((m = re.exec(text)) !== null) {
    out.push({start: m.index, end: m.index + m[0].length, leading: m[1].length, expression: m[2].length, trailing: m[3].length});
  }
  return JSON.stringify(out);
}
`

// ECMAScriptEngine locates matches with a JavaScript regular expression
// inside a goja VM. Only positions cross the VM boundary: captures and
// replacements are cut from the original bytes, so text that is not valid
// UTF-8 is written back unchanged. It is not safe for concurrent use.
type ECMAScriptEngine struct {
	vm   *goja.Runtime
	find goja.Callable
}

// jsMatch holds UTF-16 offsets and capture lengths.
type jsMatch struct {
	Start      int `json:"start"`
	End        int `json:"end"`
	Leading    int `json:"leading"`
	Expression int `json:"expression"`
	Trailing   int `json:"trailing"`
}

// NewECMAScriptEngine prepares a VM with the pattern compiled.
func NewECMAScriptEngine() (*ECMAScriptEngine, error) {
	vm := goja.New()
	if err := vm.Set("source", Source); err != nil {
		return nil, fmt.Errorf("ecmascript: %w", err)
	}
	if _, err := vm.RunString(ecmascriptProgram); err != nil {
		return nil, fmt.Errorf("ecmascript: %w", err)
	}
	find, ok := goja.AssertFunction(vm.Get("find"))
	if !ok {
		return nil, fmt.Errorf("ecmascript: find is not a function")
	}
	return &ECMAScriptEngine{vm: vm, find: find}, nil
}

func (e *ECMAScriptEngine) Name() string { return EngineECMAScript }

func (e *ECMAScriptEngine) Find(src string) ([]Match, error) {
	v, err := e.find(goja.Undefined(), e.vm.ToValue(src))
	if err != nil {
		return nil, fmt.Errorf("ecmascript find: %w", err)
	}
	var raw []jsMatch
	if err := json.Unmarshal([]byte(v.String()), &raw); err != nil {
		return nil, fmt.Errorf("ecmascript find: %w", err)
	}
	out := make([]Match, 0, len(raw))
	for _, m := range raw {
		// <Field(lead)component={(expr)}\s*(trail)>
		leadStart := m.Start + len("<Field")
		leadEnd := leadStart + m.Leading
		exprStart := leadEnd + len("component={")
		exprEnd := exprStart + m.Expression
		trailEnd := m.End - len(">")
		trailStart := trailEnd - m.Trailing

		start := byteOffset(src, m.Start)
		end := byteOffset(src, m.End)
		out = append(out, Match{
			Text:       src[start:end],
			Leading:    src[byteOffset(src, leadStart):byteOffset(src, leadEnd)],
			Expression: src[byteOffset(src, exprStart):byteOffset(src, exprEnd)],
			Trailing:   src[byteOffset(src, trailStart):byteOffset(src, trailEnd)],
			Start:      start,
			End:        end,
			Span:       model.SpanOf(src, start, end),
		})
	}
	return out, nil
}

func (e *ECMAScriptEngine) Replace(src string) (string, int, error) {
	matches, err := e.Find(src)
	if err != nil {
		return "", 0, fmt.Errorf("ecmascript replace: %w", err)
	}
	return splice(src, matches), len(matches), nil
}

func (e *ECMAScriptEngine) Render(span string) (string, error) {
	out, _, err := e.Replace(span)
	return out, err
}

// splice substitutes matches, which must be in source order and disjoint.
func splice(src string, matches []Match) string {
	if len(matches) == 0 {
		return src
	}
	var b strings.Builder
	b.Grow(len(src))
	pos := 0
	for _, m := range matches {
		b.WriteString(src[pos:m.Start])
		b.WriteString("<" + m.Expression + m.Leading + m.Trailing + ">")
		pos = m.End
	}
	b.WriteString(src[pos:])
	return b.String()
}

// byteOffset converts a UTF-16 code unit index into a byte offset of src.
// Each invalid UTF-8 byte counts as one unit, as it does inside the VM.
func byteOffset(src string, units int) int {
	n := 0
	for i, r := range src {
		if n >= units {
			return i
		}
		n += utf16.RuneLen(r)
	}
	return len(src)
}
