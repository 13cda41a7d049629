package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/react-ocean-forms-upgrader/internal/engine"
)

// Record kinds in the NDJSON stream.
const (
	RecordOccurrence = "occurrence"
	RecordError      = "error"
	RecordSummary    = "summary"
)

type ndjsonOccurrence struct {
	Type    string `json:"type"`
	Written bool   `json:"written"`
	engine.Occurrence
}

type ndjsonError struct {
	Type string `json:"type"`
	engine.FileError
}

type ndjsonSummary struct {
	Type         string `json:"type"`
	Mode         string `json:"mode"`
	Root         string `json:"root"`
	Engine       string `json:"engine"`
	FilesVisited int    `json:"files_visited"`
	FilesTouched int    `json:"files_touched"`
	FilesWritten int    `json:"files_written"`
	Occurrences  int    `json:"occurrences"`
	Suspicious   int    `json:"suspicious"`
	ErrorCount   int    `json:"error_count"`
	ElapsedMS    int64  `json:"elapsed_ms"`
}

// ndjsonReporter streams one object per occurrence as files complete,
// then the errors and a closing summary object.
type ndjsonReporter struct {
	enc *json.Encoder
}

func newNDJSONReporter(w io.Writer) *ndjsonReporter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &ndjsonReporter{enc: enc}
}

func (r *ndjsonReporter) Begin(RunInfo) error { return nil }

func (r *ndjsonReporter) File(rep engine.FileReport) error {
	for _, oc := range rep.Occurrences {
		if err := r.enc.Encode(ndjsonOccurrence{Type: RecordOccurrence, Written: rep.Written, Occurrence: oc}); err != nil {
			return err
		}
	}
	return nil
}

func (r *ndjsonReporter) Finish(res *engine.Result) error {
	for _, fe := range res.Errors {
		if err := r.enc.Encode(ndjsonError{Type: RecordError, FileError: fe}); err != nil {
			return err
		}
	}
	return r.enc.Encode(ndjsonSummary{
		Type:         RecordSummary,
		Mode:         res.Mode,
		Root:         res.Root,
		Engine:       res.Engine,
		FilesVisited: res.FilesVisited,
		FilesTouched: res.FilesTouched,
		FilesWritten: res.FilesWritten,
		Occurrences:  res.Occurrences,
		Suspicious:   res.Suspicious,
		ErrorCount:   res.ErrorCount,
		ElapsedMS:    res.ElapsedMS,
	})
}
