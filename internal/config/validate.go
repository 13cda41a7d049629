package config

import (
	"errors"

	engineopts "github.com/phyten/react-ocean-forms-upgrader/internal/engine/opts"
)

// Normalize canonicalises every enumerated setting and reports all invalid
// values at once.
func Normalize(values Settings) (Settings, error) {
	var errs []error
	var err error

	if values.Output, err = engineopts.NormalizeOutput(values.Output); err != nil {
		errs = append(errs, err)
	}
	if values.Color, err = engineopts.NormalizeColor(values.Color); err != nil {
		errs = append(errs, err)
	}
	if values.Engine, err = engineopts.NormalizeEngine(values.Engine); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return values, errors.Join(errs...)
	}
	return values, nil
}

// Load resolves defaults, the environment and the flag layer in that order.
func Load(getenv func(string) string, flags Layer) (Settings, error) {
	env, err := FromEnv(getenv)
	if err != nil {
		return Defaults(), err
	}
	return Normalize(Merge(Defaults(), env, flags))
}
