package main

// Notes:
// - Chrome detection depends on the machine; tests only assert what holds
//   either way (a missing browser is never an error).
// - Environment tests use t.Setenv and cannot run in parallel.

import (
	"bytes"
	"context"
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-nb2html/internal/hints"
)

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_JSONOutput - JSON report structure
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	env := &Environment{Stdout: &stdout, Stderr: &stderr}

	code := runDoctorCmd(context.Background(), []string{"--json"}, env)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\noutput was: %s", err, stdout.String())
	}

	if !result.Rendering.OK {
		t.Errorf("rendering check failed: %v", result.Errors)
	}
	if len(result.Rendering.Styles) == 0 {
		t.Error("styles should list the embedded stylesheets")
	}
	if result.Env.OS != runtime.GOOS || result.Env.Arch != runtime.GOARCH {
		t.Errorf("platform = %s/%s, want %s/%s", result.Env.OS, result.Env.Arch, runtime.GOOS, runtime.GOARCH)
	}
	for _, e := range result.Errors {
		if strings.Contains(e, "Chrome") {
			t.Errorf("browser problems must be warnings, got error %q", e)
		}
	}

	want := ExitSuccess
	if result.Status == statusErrors {
		want = ExitGeneral
	}
	if code != want {
		t.Errorf("exit code = %d, want %d for status %q", code, want, result.Status)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_HumanOutput - Text report sections
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_HumanOutput(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	runDoctorCmd(context.Background(), nil, &Environment{Stdout: &stdout, Stderr: &bytes.Buffer{}})

	out := stdout.String()
	for _, section := range []string{"nb2html doctor", "Rendering", "HTML output works", "Chrome/Chromium (for --pdf)", "Environment", "System", "Status:"} {
		if !strings.Contains(out, section) {
			t.Errorf("output missing %q", section)
		}
	}
}

// ---------------------------------------------------------------------------
// TestCheckEnvironment - Sandbox warning
// ---------------------------------------------------------------------------

func TestCheckEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		env      envInfo
		wantWarn bool
	}{
		{"workstation", envInfo{}, false},
		{"container", envInfo{Container: true}, true},
		{"ci", envInfo{CI: true}, true},
		{"ci with sandbox off", envInfo{CI: true, NoSandbox: "1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &doctorResult{Env: tt.env}
			checkEnvironment(r)
			if got := len(r.Warnings) > 0; got != tt.wantWarn {
				t.Errorf("warnings = %v, want warning %v", r.Warnings, tt.wantWarn)
			}
		})
	}
}

func TestRunDoctor_DetectsCI(t *testing.T) {
	orig := hints.IsInContainer
	t.Cleanup(func() { hints.IsInContainer = orig })
	hints.IsInContainer = func() bool { return false }

	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("ROD_NO_SANDBOX", "")

	r := runDoctor(context.Background())
	if !r.Env.CI {
		t.Error("CI not detected with GITHUB_ACTIONS set")
	}
	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w, "ROD_NO_SANDBOX") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want the sandbox warning", r.Warnings)
	}
}
