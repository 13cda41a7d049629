package config

import "strings"

// Merge applies layers over base in order; later layers win.
func Merge(base Settings, layers ...Layer) Settings {
	out := base
	for _, layer := range layers {
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Engine = ResolveAndTrim(out.Engine, layer.Engine)
		out.Apply = ResolveBool(out.Apply, layer.Apply)
		out.FailFast = ResolveBool(out.FailFast, layer.FailFast)
		out.Progress = ResolveOptionalBool(out.Progress, layer.Progress)
		out.NoBanner = ResolveBool(out.NoBanner, layer.NoBanner)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "text"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}
