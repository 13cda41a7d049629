package config

import (
	"errors"
	"strings"

	engineopts "github.com/phyten/react-ocean-forms-upgrader/internal/engine/opts"
)

// Environment variables read by FromEnv.
const (
	EnvOutput   = "ROF_UPGRADER_OUTPUT"
	EnvColor    = "ROF_UPGRADER_COLOR"
	EnvEngine   = "ROF_UPGRADER_ENGINE"
	EnvFailFast = "ROF_UPGRADER_FAIL_FAST"
	EnvProgress = "ROF_UPGRADER_PROGRESS"
	EnvNoBanner = "ROF_UPGRADER_NO_BANNER"
)

// FromEnv builds a layer from the ROF_UPGRADER_* variables. Every malformed
// boolean is reported; valid variables are still applied.
func FromEnv(getenv func(string) string) (Layer, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var layer Layer
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setString(&layer.Output, EnvOutput)
	setString(&layer.Color, EnvColor)
	setString(&layer.Engine, EnvEngine)
	setBool(&layer.FailFast, EnvFailFast)
	setBool(&layer.Progress, EnvProgress)
	setBool(&layer.NoBanner, EnvNoBanner)

	if len(errs) > 0 {
		return layer, errors.Join(errs...)
	}
	return layer, nil
}
