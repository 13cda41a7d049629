package output

import (
	"encoding/json"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phyten/react-ocean-forms-upgrader/internal/engine"
)

// documentReporter buffers nothing itself: the whole Result is encoded once
// the run is over.
type documentReporter struct {
	w      io.Writer
	format string
}

func (r *documentReporter) Begin(RunInfo) error { return nil }

func (r *documentReporter) File(engine.FileReport) error { return nil }

func (r *documentReporter) Finish(res *engine.Result) error {
	return WriteDocument(r.w, r.format, res)
}

// WriteDocument encodes res as a single json, yaml or toml document.
func WriteDocument(w io.Writer, format string, res *engine.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(res)
	}
	return fmt.Errorf("unknown document format: %s", format)
}
