package cmd

import (
	"strings"
	"testing"
)

func TestReport_CurrentMonth(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "person", "add", "--name", "Alex", "--team", "t1")
	execute(t, "person", "add", "--name", "Sam", "--team", "t2")
	execute(t, "log", "--person", "Alex", "--category", "note")
	execute(t, "log", "--person", "Alex", "--category", "highlight")
	execute(t, "log", "--person", "Sam", "--category", "note")
	stdout.Reset()

	execute(t, "report")

	out := stdout.String()
	if !strings.Contains(out, "COACHING LOG REPORT") {
		t.Errorf("expected report header, got: %s", out)
	}
	if !strings.Contains(out, "Total: 3 entries") {
		t.Errorf("expected total line, got: %s", out)
	}
	// Alex has more entries, so their group comes first.
	alex := strings.Index(out, "=== Alex (2) ===")
	sam := strings.Index(out, "=== Sam (1) ===")
	if alex == -1 || sam == -1 || alex > sam {
		t.Errorf("expected Alex grouped before Sam, got: %s", out)
	}
}

func TestReport_PersonFilter(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "person", "add", "--name", "Alex", "--team", "t1")
	execute(t, "person", "add", "--name", "Sam", "--team", "t2")
	execute(t, "log", "--person", "Alex", "--category", "note")
	execute(t, "log", "--person", "Sam", "--category", "note")
	stdout.Reset()

	execute(t, "report", "--person", "sam")

	out := stdout.String()
	if !strings.Contains(out, "Total: 1 entry") && !strings.Contains(out, "Total: 1 entries") {
		t.Errorf("expected one entry, got: %s", out)
	}
	if strings.Contains(out, "Alex") {
		t.Errorf("expected only Sam's entries, got: %s", out)
	}
}

func TestReport_RangeExcludes(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "person", "add", "--name", "Alex", "--team", "t1")
	execute(t, "log", "--person", "Alex", "--category", "note")
	stdout.Reset()

	// A range entirely before the fixed test clock.
	execute(t, "report", "--from", "2025-01-01", "--to", "2025-01-31")

	if !strings.Contains(stdout.String(), "Total: 0 entries") {
		t.Errorf("expected empty report, got: %s", stdout.String())
	}
}

func TestReport_BadDate(t *testing.T) {
	d, _, stderr, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "report", "--from", "not-a-date")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if stderr.Len() == 0 {
		t.Error("expected a parse error on stderr")
	}
}

func TestReminders_Empty(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "reminders")

	if !strings.Contains(stdout.String(), "No upcoming reminders") {
		t.Errorf("expected empty reminder list, got: %s", stdout.String())
	}
}

func TestReminders_UpcomingDate(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "person", "add", "--name", "Alex", "--team", "t1")
	// Three days after the fixed test clock, inside the default one-week window.
	execute(t, "person", "date", "add", "Alex", "--label", "Birthday", "--date", "2025-06-05")
	stdout.Reset()

	execute(t, "reminders")

	out := stdout.String()
	if !strings.Contains(out, "Alex: Birthday") {
		t.Errorf("expected birthday reminder, got: %s", out)
	}
	if !strings.Contains(out, "in 3 days") {
		t.Errorf("expected day count, got: %s", out)
	}
}

func TestReminders_FollowupDue(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "person", "add", "--name", "Alex", "--team", "t1")
	execute(t, "log", "--person", "Alex", "--category", "coaching", "--followup", "24")
	stdout.Reset()

	execute(t, "reminders")

	if !strings.Contains(stdout.String(), "Alex: Follow-up: Coaching") {
		t.Errorf("expected follow-up reminder, got: %s", stdout.String())
	}
}
