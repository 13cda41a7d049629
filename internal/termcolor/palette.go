package termcolor

// Palette holds the styles of the console report. Every method is a no-op
// when the palette is disabled, so callers never branch on color support.
type Palette struct {
	Enabled bool
}

// NewPalette returns a palette that colors output only when enabled is true.
func NewPalette(enabled bool) Palette {
	return Palette{Enabled: enabled}
}

// Banner is used for the ASCII art header.
func (p Palette) Banner(s string) string { return Apply(Fg(Green), s, p.Enabled) }

// Before marks the original tag text.
func (p Palette) Before(s string) string { return Apply(Fg(Red), s, p.Enabled) }

// After marks the rewritten tag text.
func (p Palette) After(s string) string { return Apply(Fg(Green), s, p.Enabled) }

// Hint marks follow-up instructions.
func (p Palette) Hint(s string) string { return Apply(Style{Bold: true, FG: intPtr(Yellow)}, s, p.Enabled) }

// Warn marks warnings written to stderr.
func (p Palette) Warn(s string) string { return Apply(Fg(Yellow), s, p.Enabled) }

func (p Palette) Bold(s string) string { return Apply(Style{Bold: true}, s, p.Enabled) }

func (p Palette) Underline(s string) string { return Apply(Style{Underline: true}, s, p.Enabled) }

// Header marks table headers.
func (p Palette) Header(s string) string {
	return Apply(Style{Bold: true, Underline: true}, s, p.Enabled)
}

func intPtr(v int) *int { return &v }
