package rewrite

import (
	"fmt"
	"slices"
	"strings"
)

const (
	EngineRegexp     = "regexp"
	EngineECMAScript = "ecmascript"
)

// Engine locates and substitutes pattern occurrences in one file's text.
type Engine interface {
	Name() string
	Find(src string) ([]Match, error)
	Replace(src string) (string, int, error)
	// Render returns the substitution of an isolated matched span.
	Render(span string) (string, error)
}

// NewEngine returns the engine registered under name.
func NewEngine(name string) (Engine, error) {
	canonical, err := CanonicalName(name)
	if err != nil {
		return nil, err
	}
	if canonical == EngineECMAScript {
		return NewECMAScriptEngine()
	}
	return RegexpEngine{}, nil
}

// CanonicalName maps an engine name or alias to its registered name
// without constructing the engine.
func CanonicalName(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineRegexp:
		return EngineRegexp, nil
	case EngineECMAScript, "js":
		return EngineECMAScript, nil
	default:
		return "", fmt.Errorf("unknown engine: %s", name)
	}
}

// EngineNames lists the accepted engine names.
func EngineNames() []string {
	return []string{EngineRegexp, EngineECMAScript}
}

// RegexpEngine runs the pattern on Go's regexp package.
type RegexpEngine struct{}

func (RegexpEngine) Name() string { return EngineRegexp }

func (RegexpEngine) Find(src string) ([]Match, error) {
	return slices.Collect(Matches(src)), nil
}

func (RegexpEngine) Replace(src string) (string, int, error) {
	out, n := Replace(src)
	return out, n, nil
}

func (RegexpEngine) Render(span string) (string, error) {
	return fieldRe.ReplaceAllString(span, goTemplate), nil
}
