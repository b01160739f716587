package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"leadlog/internal/model"
)

func TestArchive_WritesFileAndRemovesEntries(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "person", "add", "--name", "Alex", "--team", "t1")
	execute(t, "log", "--person", "Alex", "--category", "note", "--notes", "this year")
	stdout.Reset()

	out := filepath.Join(t.TempDir(), "archive-2025.json")
	execute(t, "archive", "2025", "--out", out, "--yes")

	if !strings.Contains(stdout.String(), "Archived 1 entry from 2025 to") {
		t.Errorf("expected archive summary, got: %s", stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected archive file: %v", err)
	}
	var archived []model.Entry
	if err := json.Unmarshal(data, &archived); err != nil {
		t.Fatalf("archive file is not JSON: %v", err)
	}
	if len(archived) != 1 || archived[0].Notes != "this year" {
		t.Errorf("unexpected archive contents: %+v", archived)
	}

	s, err := deps.OpenStore()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Entries()) != 0 {
		t.Error("expected archived entries removed from the journal")
	}
}

func TestArchive_NoMatchingEntries(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "person", "add", "--name", "Alex", "--team", "t1")
	execute(t, "log", "--person", "Alex", "--category", "note")
	stdout.Reset()

	execute(t, "archive", "1999", "--yes")

	if !strings.Contains(stdout.String(), "No entries from 1999") {
		t.Errorf("expected no-op message, got: %s", stdout.String())
	}
}

func TestArchive_InvalidYear(t *testing.T) {
	d, _, stderr, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "archive", "last", "--yes")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), `Invalid year "last"`) {
		t.Errorf("expected year error, got: %s", stderr.String())
	}
}

func TestReset_RestoresDefaultsKeepsTheme(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "person", "add", "--name", "Alex", "--team", "t1")
	execute(t, "log", "--person", "Alex", "--category", "note")
	execute(t, "theme", "dark")
	stdout.Reset()

	execute(t, "reset", "--yes")

	if !strings.Contains(stdout.String(), "Journal reset to defaults") {
		t.Errorf("expected reset confirmation, got: %s", stdout.String())
	}

	s, err := deps.OpenStore()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Entries()) != 0 || len(s.People()) != 0 {
		t.Error("expected an empty journal after reset")
	}
	if s.Theme() != model.ThemeDark {
		t.Errorf("expected theme to survive the reset, got %q", s.Theme())
	}
}

func TestReset_PromptDeclined(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	d.Stdin = strings.NewReader("n\n")
	SetDeps(d)
	defer ResetDeps()

	execute(t, "person", "add", "--name", "Alex", "--team", "t1")
	stdout.Reset()

	execute(t, "reset")

	if !strings.Contains(stdout.String(), "Reset cancelled") {
		t.Errorf("expected cancellation, got: %s", stdout.String())
	}
	s, err := deps.OpenStore()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.People()) != 1 {
		t.Error("expected data untouched after declined reset")
	}
}

func TestRestore_NoBackups(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "restore")

	if !strings.Contains(stdout.String(), "No backups found") {
		t.Errorf("expected empty backup list, got: %s", stdout.String())
	}
}

func TestRestore_ListsAndRestores(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "person", "add", "--name", "Alex", "--team", "t1")
	execute(t, "log", "--person", "Alex", "--category", "note")

	// Reset backs up the entries document first.
	execute(t, "reset", "--yes")
	stdout.Reset()

	execute(t, "restore")
	if !strings.Contains(stdout.String(), "[1]") {
		t.Fatalf("expected backup listing, got: %s", stdout.String())
	}
	stdout.Reset()

	execute(t, "restore", "1")
	if !strings.Contains(stdout.String(), "Restored entries from backup 1") {
		t.Errorf("expected restore confirmation, got: %s", stdout.String())
	}

	s, err := deps.OpenStore()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Entries()) != 1 {
		t.Error("expected restored entries")
	}
}

func TestRestore_InvalidNumber(t *testing.T) {
	d, _, stderr, exitCode := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	execute(t, "restore", "five")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), `Invalid backup number "five"`) {
		t.Errorf("expected number error, got: %s", stderr.String())
	}
}
