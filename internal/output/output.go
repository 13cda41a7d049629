// Package output renders the result of a codemod run.
package output

import (
	"fmt"
	"io"

	"github.com/phyten/react-ocean-forms-upgrader/internal/engine"
	"github.com/phyten/react-ocean-forms-upgrader/internal/termcolor"
)

// RunInfo describes the run a report is about. It is known before the walk
// starts.
type RunInfo struct {
	Root       string
	Extensions []string
	Mode       string
}

// Options control the human-readable formats. Machine formats ignore them.
type Options struct {
	Palette termcolor.Palette
	// Banner prints the ASCII art header and tagline.
	Banner bool
	// Status prints the "Searching for ..." line.
	Status bool
	// Width is the terminal width used to fit table cells. Zero means 120.
	Width int
}

// Reporter receives a run in three steps. File is called once per file with
// at least one match, in walk order, so formats that can stream do.
type Reporter interface {
	Begin(info RunInfo) error
	File(rep engine.FileReport) error
	Finish(res *engine.Result) error
}

// New returns the reporter for a canonical format name.
func New(format string, w io.Writer, opts Options) (Reporter, error) {
	switch format {
	case "text":
		return &textReporter{w: w, opts: opts}, nil
	case "table":
		return &tableReporter{w: w, opts: opts}, nil
	case "markdown":
		return &markdownReporter{w: w}, nil
	case "csv":
		return &csvReporter{w: w}, nil
	case "ndjson":
		return newNDJSONReporter(w), nil
	case "json", "yaml", "toml":
		return &documentReporter{w: w, format: format}, nil
	}
	return nil, fmt.Errorf("unknown output format: %s", format)
}

// Human reports whether a format is meant for a terminal and therefore
// carries the banner and status line.
func Human(format string) bool {
	return format == "text" || format == "table"
}
