package opts

import (
	"fmt"
	"strings"

	"github.com/phyten/react-ocean-forms-upgrader/internal/engine"
	"github.com/phyten/react-ocean-forms-upgrader/internal/rewrite"
	"github.com/phyten/react-ocean-forms-upgrader/internal/termcolor"
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// OutputFormats lists the canonical --output values in help order.
var OutputFormats = []string{"text", "table", "json", "ndjson", "yaml", "toml", "markdown", "csv"}

var outputAliases = map[string]string{
	"txt":   "text",
	"jsonl": "ndjson",
	"yml":   "yaml",
	"md":    "markdown",
}

// Defaults returns the baseline options for a run rooted at root.
func Defaults(root string) engine.Options {
	return engine.Options{
		Root:       root,
		Extensions: append([]string(nil), engine.DefaultExtensions...),
		Mode:       engine.ModeDry,
		Engine:     rewrite.EngineRegexp,
		FailFast:   false,
	}
}

// NormalizeAndValidate ensures the options are canonical before a run.
func NormalizeAndValidate(o *engine.Options) error {
	o.Mode = strings.ToLower(strings.TrimSpace(o.Mode))
	switch o.Mode {
	case "", engine.ModeDry:
		o.Mode = engine.ModeDry
	case engine.ModeApply:
	default:
		return fmt.Errorf("invalid mode: %s", o.Mode)
	}

	name, err := NormalizeEngine(o.Engine)
	if err != nil {
		return err
	}
	o.Engine = name

	if strings.TrimSpace(o.Root) == "" {
		o.Root = "."
	}

	o.Extensions = trimSlice(o.Extensions)
	if len(o.Extensions) == 0 {
		o.Extensions = append([]string(nil), engine.DefaultExtensions...)
	}
	return nil
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// NormalizeOutput validates and lower-cases the report format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "text", nil
	}
	if canonical, ok := outputAliases[v]; ok {
		return canonical, nil
	}
	for _, f := range OutputFormats {
		if v == f {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid --output: %s (want one of %s)", value, strings.Join(OutputFormats, "|"))
}

// NormalizeColor validates the --color value.
func NormalizeColor(value string) (string, error) {
	mode, err := termcolor.ParseMode(value)
	if err != nil {
		return "", fmt.Errorf("invalid --color: %s (want one of %s)", value, strings.Join(termcolor.ModeNames(), "|"))
	}
	return mode.String(), nil
}

// NormalizeEngine validates the --engine value and returns its canonical name.
func NormalizeEngine(value string) (string, error) {
	name, err := rewrite.CanonicalName(value)
	if err != nil {
		return "", fmt.Errorf("invalid --engine: %s (want one of %s)", value, strings.Join(rewrite.EngineNames(), "|"))
	}
	return name, nil
}

func trimSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := values[:0]
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
