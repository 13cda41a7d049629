package termcolor

import (
	"os"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		input string
		want  ColorMode
		err   bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"always", ModeAlways, false},
		{"never", ModeNever, false},
		{"ALWAYS", ModeAlways, false},
		{"invalid", ModeAuto, true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.input)
		if tc.err {
			if err == nil {
				t.Fatalf("ParseMode(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMode(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q)=%v want %v", tc.input, got, tc.want)
		}
	}
}

func TestDetectModeEnvironmentOverrides(t *testing.T) {
	_, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()

	env := map[string]string{"NO_COLOR": "1"}
	if got := DetectMode(w, env); got != ModeNever {
		t.Fatalf("NO_COLOR should force never, got %v", got)
	}

	env = map[string]string{"NO_COLOR": "1", "CLICOLOR": "0"}
	if got := DetectMode(w, env); got != ModeNever {
		t.Fatalf("NO_COLOR and CLICOLOR=0 should still yield never, got %v", got)
	}

	env = map[string]string{"CLICOLOR_FORCE": "1"}
	if got := DetectMode(w, env); got != ModeAlways {
		t.Fatalf("CLICOLOR_FORCE should force always, got %v", got)
	}

	env = map[string]string{"CLICOLOR_FORCE": "2"}
	if got := DetectMode(w, env); got != ModeAlways {
		t.Fatalf("CLICOLOR_FORCE=2 should force always, got %v", got)
	}

	env = map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}
	if got := DetectMode(w, env); got != ModeNever {
		t.Fatalf("NO_COLOR must override force flags, got %v", got)
	}

	env = map[string]string{"NO_COLOR": "1", "FORCE_COLOR": "1"}
	if got := DetectMode(w, env); got != ModeNever {
		t.Fatalf("NO_COLOR must override FORCE_COLOR, got %v", got)
	}

	env = map[string]string{"CLICOLOR": "0"}
	if got := DetectMode(w, env); got != ModeNever {
		t.Fatalf("CLICOLOR=0 should disable colors, got %v", got)
	}

	env = map[string]string{"FORCE_COLOR": "2"}
	if got := DetectMode(w, env); got != ModeAlways {
		t.Fatalf("FORCE_COLOR=2 should force always, got %v", got)
	}

	env = map[string]string{"TERM": "dumb"}
	if got := DetectMode(w, env); got != ModeNever {
		t.Fatalf("TERM=dumb should disable colors, got %v", got)
	}

	env = map[string]string{"TERM": "dumb", "FORCE_COLOR": "1"}
	if got := DetectMode(w, env); got != ModeNever {
		t.Fatalf("TERM=dumb must override FORCE_COLOR, got %v", got)
	}
}

func TestEnabled(t *testing.T) {
	_, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()

	if !Enabled(ModeAlways, nil) {
		t.Fatal("ModeAlways should be enabled even with nil stdout")
	}
	if Enabled(ModeNever, w) {
		t.Fatal("ModeNever should be disabled")
	}
	if Enabled(ModeAuto, w) {
		t.Fatal("ModeAuto with non-tty stdout should be disabled")
	}
}

func TestResolve(t *testing.T) {
	_, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()

	if Resolve(ModeAuto, w, map[string]string{}) {
		t.Fatal("auto on a pipe should be disabled")
	}
	if !Resolve(ModeAuto, w, map[string]string{"FORCE_COLOR": "1"}) {
		t.Fatal("auto with FORCE_COLOR should be enabled")
	}
	if !Resolve(ModeAlways, w, map[string]string{"NO_COLOR": "1"}) {
		t.Fatal("explicit always must win over NO_COLOR")
	}
	if Resolve(ModeNever, w, map[string]string{"FORCE_COLOR": "1"}) {
		t.Fatal("explicit never must win over FORCE_COLOR")
	}
}

func TestColorEnv(t *testing.T) {
	values := map[string]string{"NO_COLOR": "1", "TERM": "xterm", "HOME": "/root"}
	env := ColorEnv(func(k string) string { return values[k] })
	if env["NO_COLOR"] != "1" || env["TERM"] != "xterm" {
		t.Fatalf("expected color variables, got %v", env)
	}
	if _, ok := env["HOME"]; ok {
		t.Fatal("unrelated variables must not be collected")
	}
	if len(ColorEnv(nil)) != 0 {
		t.Fatal("nil getenv should yield an empty map")
	}
}
