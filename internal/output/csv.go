package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/phyten/react-ocean-forms-upgrader/internal/engine"
)

var csvHeaders = []string{"path", "line", "column", "before", "after", "expression", "suspicious", "written"}

// csvReporter writes one RFC 4180 record per occurrence (CRLF endings).
type csvReporter struct {
	w      io.Writer
	writer *csv.Writer
}

func (r *csvReporter) Begin(RunInfo) error {
	r.writer = csv.NewWriter(r.w)
	r.writer.UseCRLF = true
	return r.writer.Write(csvHeaders)
}

func (r *csvReporter) File(rep engine.FileReport) error {
	for _, oc := range rep.Occurrences {
		record := []string{
			oc.Path,
			strconv.Itoa(oc.Line),
			strconv.Itoa(oc.Span.StartCol),
			oc.Before,
			oc.After,
			oc.Expression,
			strconv.FormatBool(oc.Suspicious),
			strconv.FormatBool(rep.Written),
		}
		if err := r.writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (r *csvReporter) Finish(*engine.Result) error {
	r.writer.Flush()
	return r.writer.Error()
}
