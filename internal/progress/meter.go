package progress

import (
	"math"
	"sync"
	"time"
)

type Stage string

const (
	StageScan  Stage = "scan"
	StageApply Stage = "apply"
)

// Snapshot is the state of a run at one point in time. The number of files
// is not known up front, so there is no total or ETA.
type Snapshot struct {
	Stage       Stage         `json:"stage"`
	Visited     int           `json:"visited"`
	Touched     int           `json:"touched"`
	Occurrences int           `json:"occurrences"`
	Path        string        `json:"path"`
	RateEMA     float64       `json:"rate_per_sec"`
	StartedAt   time.Time     `json:"started_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Elapsed     time.Duration `json:"elapsed"`
}

type Config struct {
	Alpha          float64
	NotifyInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Alpha:          0.2,
		NotifyInterval: 100 * time.Millisecond,
	}
}

// Meter accumulates per-file progress and forwards throttled snapshots to
// an Observer.
type Meter struct {
	mu         sync.Mutex
	obs        Observer
	cfg        Config
	stage      Stage
	start      time.Time
	lastUpdate time.Time
	lastNotify time.Time
	snap       Snapshot
	ema        float64
	now        func() time.Time
}

// NewMeter returns a meter publishing to obs. A nil observer is replaced by
// NoopObserver. interval <= 0 selects the default notify interval.
func NewMeter(obs Observer, interval time.Duration) *Meter {
	if obs == nil {
		obs = NoopObserver{}
	}
	cfg := DefaultConfig()
	if interval > 0 {
		cfg.NotifyInterval = interval
	}
	return newMeter(obs, cfg, time.Now)
}

func newMeter(obs Observer, cfg Config, now func() time.Time) *Meter {
	start := now()
	return &Meter{
		obs:        obs,
		cfg:        cfg,
		stage:      StageScan,
		start:      start,
		lastUpdate: start,
		now:        now,
	}
}

// SetStage switches the stage reported in snapshots.
func (m *Meter) SetStage(stage Stage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stage = stage
}

// Visit records one processed file and the number of matches found in it.
func (m *Meter) Visit(path string, found int) {
	m.mu.Lock()
	now := m.now()
	if now.Before(m.lastUpdate) {
		now = m.lastUpdate
	}
	dt := now.Sub(m.lastUpdate).Seconds()
	if dt <= 0 {
		dt = 1e-6
	}
	instant := 1 / dt
	if math.IsNaN(instant) || math.IsInf(instant, 0) {
		instant = 0
	}
	if m.ema == 0 {
		m.ema = instant
	} else {
		m.ema = m.cfg.Alpha*instant + (1-m.cfg.Alpha)*m.ema
	}
	m.lastUpdate = now
	m.snap.Visited++
	if found > 0 {
		m.snap.Touched++
		m.snap.Occurrences += found
	}
	m.snap.Path = path
	snap := m.snapshotLocked(now)
	notify := m.snap.Visited == 1 || now.Sub(m.lastNotify) >= m.cfg.NotifyInterval
	if notify {
		m.lastNotify = now
	}
	m.mu.Unlock()

	if notify {
		m.obs.Publish(snap)
	}
}

// Snapshot returns the current state.
func (m *Meter) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked(m.now())
}

// Done publishes the final snapshot to the observer's Done hook.
func (m *Meter) Done() {
	m.obs.Done(m.Snapshot())
}

func (m *Meter) snapshotLocked(now time.Time) Snapshot {
	s := m.snap
	s.Stage = m.stage
	s.RateEMA = m.ema
	s.StartedAt = m.start
	s.UpdatedAt = now
	s.Elapsed = now.Sub(m.start)
	return s
}
