package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type stubProvider struct {
	dir string
	err error
}

func (s stubProvider) UserConfigDir() (string, error) { return s.dir, s.err }

func (s stubProvider) MkdirAll(path string, perm os.FileMode) error { return s.err }

func TestDefaultPathProvider(t *testing.T) {
	p := DefaultPathProvider{}

	dir, err := p.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir returned error: %v", err)
	}
	if dir == "" {
		t.Error("UserConfigDir returned empty string")
	}

	nested := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := p.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("MkdirAll returned error: %v", err)
	}
	info, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("failed to stat created directory: %v", err)
	}
	if !info.IsDir() {
		t.Error("MkdirAll did not create a directory")
	}
}

func TestSetAndResetProvider(t *testing.T) {
	defer ResetProvider()

	stub := stubProvider{dir: "/stub/config"}
	SetProvider(stub)

	dir, err := Provider.UserConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/stub/config" {
		t.Errorf("expected /stub/config, got %s", dir)
	}

	ResetProvider()
	if _, ok := Provider.(DefaultPathProvider); !ok {
		t.Error("ResetProvider did not restore the default provider")
	}
}

func TestProviderErrorsPropagate(t *testing.T) {
	defer ResetProvider()

	boom := errors.New("no home")
	SetProvider(stubProvider{err: boom})

	if _, err := Provider.UserConfigDir(); !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
	if err := Provider.MkdirAll("/x", 0755); !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
}
