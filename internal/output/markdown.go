package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/react-ocean-forms-upgrader/internal/engine"
	"github.com/phyten/react-ocean-forms-upgrader/internal/termcolor"
)

// markdownReporter renders a GitHub Flavored Markdown table. Tags are shown
// as inline code so JSX is not interpreted as HTML.
type markdownReporter struct {
	w    io.Writer
	rows []engine.Occurrence
}

func (r *markdownReporter) Begin(RunInfo) error { return nil }

func (r *markdownReporter) File(rep engine.FileReport) error {
	r.rows = append(r.rows, rep.Occurrences...)
	return nil
}

func (r *markdownReporter) Finish(res *engine.Result) error {
	if _, err := fmt.Fprintln(r.w, "| Path | Line | Before | After |"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w, "| --- | ---: | --- | --- |"); err != nil {
		return err
	}
	for _, oc := range r.rows {
		after := codeCell(oc.After)
		if oc.Suspicious {
			after += " ⚠️"
		}
		_, err := fmt.Fprintf(r.w, "| %s | %d | %s | %s |\n",
			escapeMarkdownCell(oc.Path), oc.Line, codeCell(oc.Before), after)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.w, "\n%s\n", summaryLine(res, termcolor.NewPalette(false)))
	return err
}

func codeCell(s string) string {
	if s == "" {
		return ""
	}
	return "`" + strings.ReplaceAll(escapeMarkdownCell(s), "`", "\\`") + "`"
}

func escapeMarkdownCell(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "<br>")
	s = strings.ReplaceAll(s, "|", "\\|")
	return s
}
