package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"leadlog/internal/model"
	"leadlog/internal/storage"
)

// Snapshot is the interchange document for backup and restore. The key names
// are the on-the-wire contract and must round-trip exactly.
type Snapshot struct {
	Entries    []model.Entry          `json:"entries"`
	People     []model.Person         `json:"people"`
	Categories []model.Category       `json:"categories"`
	Teams      []model.Team           `json:"teams"`
	Followups  []model.FollowupOption `json:"followups"`
	DurSet     model.DurationSettings `json:"durSet"`
	Theme      model.Theme            `json:"theme"`
}

// snapshotDoc mirrors Snapshot with pointer fields so a missing key is
// distinguishable from an empty collection during import.
type snapshotDoc struct {
	Entries    *[]model.Entry          `json:"entries"`
	People     *[]model.Person         `json:"people"`
	Categories *[]model.Category       `json:"categories"`
	Teams      *[]model.Team           `json:"teams"`
	Followups  *[]model.FollowupOption `json:"followups"`
	DurSet     *model.DurationSettings `json:"durSet"`
	Theme      *model.Theme            `json:"theme"`
}

// ExportSnapshot serializes the entire state into one self-describing JSON
// document suitable for backup or transfer.
func (s *Store) ExportSnapshot() ([]byte, error) {
	snap := Snapshot{
		Entries:    s.entries,
		People:     s.people,
		Categories: s.categories,
		Teams:      s.teams,
		Followups:  s.followups,
		DurSet:     s.durSet,
		Theme:      s.theme,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// ImportSnapshot replaces all state with the decoded document as one unit.
// The document must decode into exactly the expected shape; a missing or
// unknown field fails the whole operation with ErrDecode and leaves the store
// completely unchanged. The previous entries document is backed up first.
func (s *Store) ImportSnapshot(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc snapshotDoc
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	missing := ""
	switch {
	case doc.Entries == nil:
		missing = "entries"
	case doc.People == nil:
		missing = "people"
	case doc.Categories == nil:
		missing = "categories"
	case doc.Teams == nil:
		missing = "teams"
	case doc.Followups == nil:
		missing = "followups"
	case doc.DurSet == nil:
		missing = "durSet"
	case doc.Theme == nil:
		missing = "theme"
	}
	if missing != "" {
		return fmt.Errorf("%w: missing required field %q", ErrDecode, missing)
	}

	if err := storage.CreateBackup(s.docPath(storage.DocEntries)); err != nil {
		s.logger.Warn("backup before import failed", zap.Error(err))
	}

	s.entries = *doc.Entries
	s.people = *doc.People
	s.categories = *doc.Categories
	s.teams = *doc.Teams
	s.followups = *doc.Followups
	s.durSet = *doc.DurSet
	s.theme = *doc.Theme

	err := s.persistAll()
	s.notify()
	return err
}

// ResetAll clears entries and people and restores categories, teams,
// follow-up options and duration settings to their built-in defaults. The
// theme survives a reset. The previous entries document is backed up first.
func (s *Store) ResetAll() error {
	if err := storage.CreateBackup(s.docPath(storage.DocEntries)); err != nil {
		s.logger.Warn("backup before reset failed", zap.Error(err))
	}

	s.entries = []model.Entry{}
	s.people = []model.Person{}
	s.categories = model.DefaultCategories()
	s.teams = model.DefaultTeams()
	s.followups = model.DefaultFollowupOptions()
	s.durSet = model.DefaultDurationSettings()

	err := s.persist(
		storage.DocEntries,
		storage.DocPeople,
		storage.DocCategories,
		storage.DocTeams,
		storage.DocFollowups,
		storage.DocDuration,
	)
	s.notify()
	return err
}

// ArchiveYear removes every entry whose timestamp falls in the given calendar
// year and returns the removed set, in live-collection order. This is a
// one-way operation: the caller must surface the returned entries before they
// are gone. The removal and the returned set come from the same call, so
// there is no window where data exists in neither place.
func (s *Store) ArchiveYear(year int) ([]model.Entry, error) {
	if err := storage.CreateBackup(s.docPath(storage.DocEntries)); err != nil {
		s.logger.Warn("backup before archive failed", zap.Error(err))
	}

	archived := []model.Entry{}
	kept := []model.Entry{}
	for _, e := range s.entries {
		if e.Timestamp.Year() == year {
			archived = append(archived, e)
		} else {
			kept = append(kept, e)
		}
	}

	if len(archived) == 0 {
		return archived, nil
	}

	s.entries = kept
	err := s.persist(storage.DocEntries)
	s.notify()
	return archived, err
}

func (s *Store) persistAll() error {
	return s.persist(
		storage.DocEntries,
		storage.DocPeople,
		storage.DocCategories,
		storage.DocTeams,
		storage.DocFollowups,
		storage.DocDuration,
		storage.DocTheme,
	)
}
