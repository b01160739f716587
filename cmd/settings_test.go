package cmd

import (
	"strings"
	"testing"

	"leadlog/internal/model"
)

func TestTheme_ShowsDefault(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "theme")

	if !strings.Contains(stdout.String(), "Current theme: Light") {
		t.Errorf("expected default theme, got: %s", stdout.String())
	}
}

func TestTheme_SetAndShow(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "theme", "Dark")
	if !strings.Contains(stdout.String(), "Theme set to Dark") {
		t.Errorf("expected confirmation, got: %s", stdout.String())
	}
	stdout.Reset()

	execute(t, "theme")
	if !strings.Contains(stdout.String(), "Current theme: Dark") {
		t.Errorf("expected persisted theme, got: %s", stdout.String())
	}

	s, err := deps.OpenStore()
	if err != nil {
		t.Fatal(err)
	}
	if s.Theme() != model.ThemeDark {
		t.Errorf("expected dark theme in store, got %q", s.Theme())
	}
}

func TestTheme_Unknown(t *testing.T) {
	d, _, stderr, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "theme", "neon")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), `Unknown theme "neon"`) {
		t.Errorf("expected theme error, got: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "light, dark, rainbow") {
		t.Errorf("expected valid themes hint, got: %s", stderr.String())
	}
}

func TestDuration_ShowsDefaults(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "duration")

	out := stdout.String()
	if !strings.Contains(out, "Max: 60 min, increment: 5 min") {
		t.Errorf("expected default settings, got: %s", out)
	}
	if !strings.Contains(out, "Choices: 5, 10, 15") {
		t.Errorf("expected choices list, got: %s", out)
	}
}

func TestDuration_Set(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "duration", "--max", "90", "--increment", "15")

	if !strings.Contains(stdout.String(), "Duration settings updated: max 90 min, increment 15 min") {
		t.Errorf("expected confirmation, got: %s", stdout.String())
	}

	s, err := deps.OpenStore()
	if err != nil {
		t.Fatal(err)
	}
	ds := s.DurationSettings()
	if ds.Max != 90 || ds.Increment != 15 {
		t.Errorf("expected settings persisted, got %+v", ds)
	}
}

func TestDuration_SetOnlyMax(t *testing.T) {
	d, _, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "duration", "--max", "120")

	s, err := deps.OpenStore()
	if err != nil {
		t.Fatal(err)
	}
	ds := s.DurationSettings()
	if ds.Max != 120 || ds.Increment != 5 {
		t.Errorf("expected only max to change, got %+v", ds)
	}
}

func TestDuration_Invalid(t *testing.T) {
	d, _, stderr, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "duration", "--max", "10", "--increment", "25")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Invalid duration settings") {
		t.Errorf("expected validation error, got: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Hint:") {
		t.Errorf("expected hint, got: %s", stderr.String())
	}
}
