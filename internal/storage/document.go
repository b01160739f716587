// Package storage persists whole JSON documents under the user's config
// directory. Every collection is written as one self-contained file; there is
// no per-record storage. Writes are atomic (temp file + rename) so a crash
// mid-write never leaves a truncated document behind.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"leadlog/internal/osutil"
)

const (
	// AppName is the application name used for the data directory.
	AppName = "leadlog"
)

// Document file names, one per persisted collection or scalar setting.
const (
	DocEntries    = "entries.json"
	DocPeople     = "people.json"
	DocCategories = "categories.json"
	DocTeams      = "teams.json"
	DocFollowups  = "followups.json"
	DocDuration   = "duration.json"
	DocTheme      = "theme.json"
)

// ErrCorrupt is returned when a document exists but does not decode. The
// offending file is moved aside to <name>.corrupt before the error is
// reported, so the next write starts clean without destroying evidence.
var ErrCorrupt = errors.New("corrupt document")

// DataDir returns the directory holding all persisted documents.
// Uses os.UserConfigDir() for a cross-platform XDG-compliant location and
// creates the directory if it doesn't exist.
func DataDir() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return appDir, nil
}

// ReadDocument decodes the document at path into v. Returns found=false with
// no error when the file does not exist, so callers can fall back to
// defaults. A file that exists but fails to decode is backed up to
// path+".corrupt" and reported as ErrCorrupt.
func ReadDocument(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return false, fmt.Errorf("%w: %s (backed up to %s): %v", ErrCorrupt, path, backupPath, err)
	}

	return true, nil
}

// WriteDocument atomically writes v as indented JSON to path. The document is
// written to a temp file in the same directory and renamed into place.
func WriteDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming %s: %w", tmpPath, err)
	}
	return nil
}
