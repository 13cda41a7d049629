package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type recorder struct {
	published []Snapshot
	done      []Snapshot
}

func (r *recorder) Publish(s Snapshot) { r.published = append(r.published, s) }
func (r *recorder) Done(s Snapshot)    { r.done = append(r.done, s) }

func TestMeterCountsFilesAndOccurrences(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	rec := &recorder{}
	m := newMeter(rec, Config{Alpha: 0.5, NotifyInterval: time.Second}, clock.now)

	clock.advance(100 * time.Millisecond)
	m.Visit("a.js", 0)
	clock.advance(100 * time.Millisecond)
	m.Visit("b.js", 3)
	clock.advance(100 * time.Millisecond)
	m.Visit("c.tsx", 1)

	snap := m.Snapshot()
	if snap.Visited != 3 || snap.Touched != 2 || snap.Occurrences != 4 {
		t.Fatalf("unexpected counters: %+v", snap)
	}
	if snap.Path != "c.tsx" {
		t.Fatalf("Path = %q, want c.tsx", snap.Path)
	}
	if snap.RateEMA <= 0 {
		t.Fatalf("rate should be positive, got %v", snap.RateEMA)
	}
	if snap.Elapsed != 300*time.Millisecond {
		t.Fatalf("Elapsed = %v, want 300ms", snap.Elapsed)
	}
	if len(rec.published) != 1 {
		t.Fatalf("expected only the first visit to be published within the interval, got %d", len(rec.published))
	}

	clock.advance(2 * time.Second)
	m.Visit("d.jsx", 0)
	if len(rec.published) != 2 {
		t.Fatalf("expected a publish after the interval elapsed, got %d", len(rec.published))
	}

	m.Done()
	if len(rec.done) != 1 || rec.done[0].Visited != 4 {
		t.Fatalf("unexpected done snapshots: %+v", rec.done)
	}
}

func TestMeterStage(t *testing.T) {
	m := NewMeter(nil, 0)
	if got := m.Snapshot().Stage; got != StageScan {
		t.Fatalf("default stage = %q, want scan", got)
	}
	m.SetStage(StageApply)
	m.Visit("a.js", 1)
	if got := m.Snapshot().Stage; got != StageApply {
		t.Fatalf("stage = %q, want apply", got)
	}
	m.Done()
}

func TestLineObserverFormat(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLineObserver(&buf)
	obs.Publish(Snapshot{Stage: StageScan, Visited: 5, Touched: 2, Occurrences: 3, Path: "src/a.js", UpdatedAt: time.Unix(0, 0).UTC()})
	got := buf.String()
	for _, want := range []string{"stage=scan", "visited=5", "touched=2", "occurrences=3", `path="src/a.js"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("line output %q missing %q", got, want)
		}
	}
}

func TestTTYObserverClearsLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewTTYObserver(&buf)
	obs.Publish(Snapshot{Stage: StageApply, Visited: 1, Occurrences: 2, Touched: 1, Elapsed: 61 * time.Second})
	obs.Done(Snapshot{})
	got := buf.String()
	if !strings.HasPrefix(got, "\r\033[K[progress] apply 1 files, 2 fields in 1 files --/s 00:01:01") {
		t.Fatalf("unexpected tty output: %q", got)
	}
	if !strings.HasSuffix(got, "\r\033[K") {
		t.Fatalf("Done should clear the line: %q", got)
	}
}

func TestShouldShowProgressFlags(t *testing.T) {
	if ShouldShowProgress(true, true) {
		t.Fatal("--no-progress must win")
	}
	if !ShouldShowProgress(true, false) {
		t.Fatal("--progress should force progress")
	}
}
