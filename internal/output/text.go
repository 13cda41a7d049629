package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/react-ocean-forms-upgrader/internal/engine"
	"github.com/phyten/react-ocean-forms-upgrader/internal/termcolor"
)

// Tagline follows the banner art.
const Tagline = "Your one stop shop for upgrading to react-ocean-forms 2.0!"

// ApplyHint is printed after a dry run.
const ApplyHint = "To update run react-ocean-forms-upgrader with -u parameter."

var bannerLines = []string{
	`                         __                                          ____`,
	`   ________  ____ ______/ /_      ____  ________  ____ _____        / __/___  _________ ___  _____`,
	`  / ___/ _ \/ __ ` + "`" + `/ ___/ __/_____/ __ \/ ___/ _ \/ __ ` + "`" + `/ __ \______/ /_/ __ \/ ___/ __ ` + "`" + `__ \/ ___/`,
	` / /  /  __/ /_/ / /__/ /_/_____/ /_/ / /__/  __/ /_/ / / / /_____/ __/ /_/ / /  / / / / / (__  )`,
	`/_/   \___/\__,_/\___/\__/      \____/\___/\___/\__,_/_/ /_/     /_/  \____/_/  /_/ /_/ /_/____/`,
}

// WriteBanner prints the ASCII art, a blank line and the tagline.
func WriteBanner(w io.Writer, pal termcolor.Palette) error {
	for _, line := range bannerLines {
		if _, err := fmt.Fprintln(w, pal.Banner(line)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%s\n", Tagline)
	return err
}

// StatusLine is the line announcing the walk. The double space before the
// path is part of the historical output.
func StatusLine(exts []string, root string, pal termcolor.Palette) string {
	return fmt.Sprintf("Searching for %s files in  %s - please stand by.", FormatExtensions(exts), pal.Underline(root))
}

// FormatExtensions renders a list the way the Node.js console prints a
// string array: [ '.tsx', '.jsx', '.js' ].
func FormatExtensions(exts []string) string {
	if len(exts) == 0 {
		return "[]"
	}
	quoted := make([]string, len(exts))
	for i, ext := range exts {
		quoted[i] = "'" + strings.ReplaceAll(ext, "'", `\'`) + "'"
	}
	return "[ " + strings.Join(quoted, ", ") + " ]"
}

func writeHeader(w io.Writer, info RunInfo, opts Options) error {
	if opts.Banner {
		if err := WriteBanner(w, opts.Palette); err != nil {
			return err
		}
	}
	if opts.Status {
		if _, err := fmt.Fprintf(w, "%s\n\n", StatusLine(info.Extensions, info.Root, opts.Palette)); err != nil {
			return err
		}
	}
	return nil
}

// summaryLine is the closing line shared by the human formats.
func summaryLine(res *engine.Result, pal termcolor.Palette) string {
	if res.Mode == engine.ModeApply {
		return "Updated " + pal.Bold(fmt.Sprintf("%d files.", res.FilesWritten))
	}
	return "Found " + pal.Bold(fmt.Sprintf("%d fields", res.Occurrences)) +
		" in " + pal.Bold(fmt.Sprintf("%d files.", res.FilesTouched))
}

type textReporter struct {
	w    io.Writer
	opts Options
	mode string
}

func (r *textReporter) Begin(info RunInfo) error {
	r.mode = info.Mode
	return writeHeader(r.w, info, r.opts)
}

func (r *textReporter) File(rep engine.FileReport) error {
	pal := r.opts.Palette
	if r.mode == engine.ModeApply {
		if !rep.Written {
			return nil
		}
		_, err := fmt.Fprintf(r.w, "Updated Fields in %s\n", rep.Path)
		return err
	}
	for _, oc := range rep.Occurrences {
		_, err := fmt.Fprintf(r.w, "%s\n\nBefore:\n%s\n\nAfter:\n%s\n\n",
			pal.Bold("Found Field in file "+rep.Path),
			pal.Before(oc.Before),
			pal.After(oc.After),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *textReporter) Finish(res *engine.Result) error {
	pal := r.opts.Palette
	if _, err := fmt.Fprintf(r.w, "\n%s\n", summaryLine(res, pal)); err != nil {
		return err
	}
	if res.Mode != engine.ModeApply {
		if _, err := fmt.Fprintln(r.w, pal.Hint(ApplyHint)); err != nil {
			return err
		}
	}
	return nil
}
