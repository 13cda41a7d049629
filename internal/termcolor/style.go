package termcolor

import (
	"strconv"
	"strings"
)

// Basic SGR foreground colors.
const (
	Red    = 1
	Green  = 2
	Yellow = 3
)

type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	FG        *int
}

// Fg returns a style with only the foreground color set.
func Fg(color int) Style {
	return Style{FG: &color}
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := sgrCodes(s)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func sgrCodes(s Style) []string {
	codes := make([]string, 0, 4)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.FG != nil {
		codes = append(codes, "3"+strconv.Itoa(*s.FG))
	}
	return codes
}
