package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phyten/react-ocean-forms-upgrader/internal/engine"
	"github.com/phyten/react-ocean-forms-upgrader/internal/textutil"
)

const (
	defaultWidth = 120
	columnGap    = "  "
	minTagWidth  = 12
	ellipsis     = "…"
)

var tableHeaders = []string{"PATH", "LINE", "BEFORE", "AFTER"}

type tableReporter struct {
	w    io.Writer
	opts Options
	rows [][]string
	flag []bool
}

func (r *tableReporter) Begin(info RunInfo) error {
	return writeHeader(r.w, info, r.opts)
}

func (r *tableReporter) File(rep engine.FileReport) error {
	for _, oc := range rep.Occurrences {
		r.rows = append(r.rows, []string{
			oc.Path,
			strconv.Itoa(oc.Line),
			textutil.OneLine(oc.Before),
			textutil.OneLine(oc.After),
		})
		r.flag = append(r.flag, oc.Suspicious)
	}
	return nil
}

func (r *tableReporter) Finish(res *engine.Result) error {
	pal := r.opts.Palette
	if len(r.rows) > 0 {
		widths := r.columnWidths()
		header := make([]string, len(tableHeaders))
		for i, h := range tableHeaders {
			header[i] = pal.Header(h) + strings.Repeat(" ", widths[i]-textutil.VisibleWidth(h))
		}
		if _, err := fmt.Fprintln(r.w, strings.TrimRight(strings.Join(header, columnGap), " ")); err != nil {
			return err
		}
		for i, row := range r.rows {
			cells := make([]string, len(row))
			for j, cell := range row {
				cell = textutil.TruncateByWidth(cell, widths[j], ellipsis)
				switch j {
				case 1:
					cell = textutil.PadLeft(cell, widths[j])
				case 2:
					cell = textutil.PadRight(pal.Before(cell), widths[j])
				case 3:
					cell = textutil.PadRight(pal.After(cell), widths[j])
				default:
					cell = textutil.PadRight(cell, widths[j])
				}
				cells[j] = cell
			}
			line := strings.TrimRight(strings.Join(cells, columnGap), " ")
			if r.flag[i] {
				line += columnGap + pal.Warn("(unbalanced braces)")
			}
			if _, err := fmt.Fprintln(r.w, line); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(r.w, "\n%s\n", summaryLine(res, pal)); err != nil {
		return err
	}
	if res.Mode != engine.ModeApply && res.Occurrences > 0 {
		if _, err := fmt.Fprintln(r.w, pal.Hint(ApplyHint)); err != nil {
			return err
		}
	}
	return nil
}

// columnWidths sizes PATH and LINE to their content and splits what is
// left of the terminal width between BEFORE and AFTER.
func (r *tableReporter) columnWidths() []int {
	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = textutil.VisibleWidth(h)
	}
	for _, row := range r.rows {
		for i, cell := range row {
			if w := textutil.VisibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	total := r.opts.Width
	if total <= 0 {
		total = defaultWidth
	}
	budget := total - widths[0] - widths[1] - 3*len(columnGap)
	if widths[2]+widths[3] <= budget {
		return widths
	}
	half := budget / 2
	if half < minTagWidth {
		half = minTagWidth
	}
	// Give the narrower column its full width when it fits in half.
	switch {
	case widths[2] <= half:
		widths[3] = max(budget-widths[2], minTagWidth)
	case widths[3] <= half:
		widths[2] = max(budget-widths[3], minTagWidth)
	default:
		widths[2], widths[3] = half, half
	}
	return widths
}
