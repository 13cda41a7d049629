package progress

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

type Observer interface {
	Publish(Snapshot)
	Done(Snapshot)
}

type NoopObserver struct{}

func (NoopObserver) Publish(Snapshot) {}
func (NoopObserver) Done(Snapshot)    {}

func ShouldShowProgress(force, no bool) bool {
	if no {
		return false
	}
	if force {
		return true
	}
	return isTTY(os.Stdout) && isTTY(os.Stderr)
}

type ttyObserver struct {
	w  io.Writer
	mu sync.Mutex
}

type lineObserver struct {
	w  io.Writer
	mu sync.Mutex
}

func NewTTYObserver(w io.Writer) Observer {
	if w == nil {
		w = os.Stderr
	}
	return &ttyObserver{w: w}
}

func NewLineObserver(w io.Writer) Observer {
	if w == nil {
		w = os.Stderr
	}
	return &lineObserver{w: w}
}

func NewAutoObserver(w io.Writer) Observer {
	if w == nil {
		w = os.Stderr
	}
	if f, ok := w.(*os.File); ok && isTTY(f) {
		return NewTTYObserver(w)
	}
	return NewLineObserver(w)
}

func (o *ttyObserver) Publish(s Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	line := renderTTY(s)
	_, _ = fmt.Fprintf(o.w, "\r\033[K%s", line)
}

func (o *ttyObserver) Done(Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = fmt.Fprint(o.w, "\r\033[K")
}

func (o *lineObserver) Publish(s Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = fmt.Fprintln(o.w, renderLine(s))
}

func (o *lineObserver) Done(Snapshot) {}

func renderTTY(s Snapshot) string {
	rate := "--/s"
	if s.RateEMA > 0 {
		rate = fmt.Sprintf("%.1f/s", s.RateEMA)
	}
	return fmt.Sprintf("[progress] %s %d files, %d fields in %d files %s %s", string(s.Stage), s.Visited, s.Occurrences, s.Touched, rate, formatElapsed(s.Elapsed))
}

func renderLine(s Snapshot) string {
	return fmt.Sprintf("progress stage=%s visited=%d touched=%d occurrences=%d rate=%.3f path=%q updated_at=%s", string(s.Stage), s.Visited, s.Touched, s.Occurrences, s.RateEMA, s.Path, s.UpdatedAt.Format(time.RFC3339Nano))
}

func formatElapsed(d time.Duration) string {
	totalSeconds := int(math.Round(d.Seconds()))
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	if hours > 99 {
		hours = 99
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

func isTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
