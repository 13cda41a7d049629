package config

import (
	"github.com/phyten/react-ocean-forms-upgrader/internal/engine"
)

// Layer is one source of settings. A nil field leaves the value from the
// layers below it untouched.
type Layer struct {
	Output   *string `yaml:"output" toml:"output" json:"output"`
	Color    *string `yaml:"color" toml:"color" json:"color"`
	Engine   *string `yaml:"engine" toml:"engine" json:"engine"`
	Apply    *bool   `yaml:"apply" toml:"apply" json:"apply"`
	FailFast *bool   `yaml:"fail_fast" toml:"fail_fast" json:"fail_fast"`
	Progress *bool   `yaml:"progress" toml:"progress" json:"progress"`
	NoBanner *bool   `yaml:"no_banner" toml:"no_banner" json:"no_banner"`
}

// Settings are the resolved values for one run.
type Settings struct {
	Output   string
	Color    string
	Engine   string
	Apply    bool
	FailFast bool
	// Progress is nil when the indicator follows the stderr TTY check.
	Progress *bool
	NoBanner bool
}

func Defaults() Settings {
	return Settings{
		Output: "text",
		Color:  "auto",
		Engine: "regexp",
	}
}

// Mode returns the engine mode the settings select.
func (s Settings) Mode() string {
	if s.Apply {
		return engine.ModeApply
	}
	return engine.ModeDry
}

func (s Settings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	opts.Mode = s.Mode()
	opts.Engine = s.Engine
	opts.FailFast = s.FailFast
}

// ProgressFlags splits the tri-state progress setting into the
// force/suppress pair progress.ShouldShowProgress expects.
func (s Settings) ProgressFlags() (force, suppress bool) {
	if s.Progress == nil {
		return false, false
	}
	return *s.Progress, !*s.Progress
}
