// Package store is the single source of truth for all persisted journal
// state: entries, people, categories, teams, follow-up options and the two
// scalar settings. Every mutation updates the in-memory collections and then
// durably writes the affected documents before returning; there is no
// batching or write-behind.
//
// A Store is driven by one foreground session at a time and is not safe for
// concurrent use. Construct one explicitly with Open and pass it to whatever
// needs it; there is no package-level instance.
package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"leadlog/internal/model"
	"leadlog/internal/remind"
	"leadlog/internal/storage"
)

// Common errors for store operations.
var (
	// ErrValidation marks a rejected mutation; no state was changed.
	ErrValidation = errors.New("validation failed")
	// ErrDecode marks an import document that does not match the expected
	// shape; no state was changed.
	ErrDecode = errors.New("decode failed")
	// ErrPersistence marks a failed durable write. The in-memory mutation
	// has already applied, so memory and disk may disagree until the next
	// successful write.
	ErrPersistence = errors.New("persistence failed")
)

// Store owns all persisted collections and settings.
type Store struct {
	dir    string
	logger *zap.Logger

	entries    []model.Entry
	people     []model.Person
	categories []model.Category
	teams      []model.Team
	followups  []model.FollowupOption
	durSet     model.DurationSettings
	theme      model.Theme

	subscribers map[int]func()
	nextSubID   int
}

// Open loads a Store from the documents in dir. Missing documents fall back
// to empty collections or built-in defaults. A corrupt document is moved
// aside by the storage layer, logged prominently, and replaced by defaults:
// first run and recovery look the same to the caller.
func Open(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		dir:         dir,
		logger:      logger,
		entries:     []model.Entry{},
		people:      []model.Person{},
		categories:  model.DefaultCategories(),
		teams:       model.DefaultTeams(),
		followups:   model.DefaultFollowupOptions(),
		durSet:      model.DefaultDurationSettings(),
		theme:       model.DefaultTheme,
		subscribers: map[int]func(){},
	}

	s.loadDoc(storage.DocEntries, &s.entries)
	s.loadDoc(storage.DocPeople, &s.people)
	s.loadDoc(storage.DocCategories, &s.categories)
	s.loadDoc(storage.DocTeams, &s.teams)
	s.loadDoc(storage.DocFollowups, &s.followups)
	s.loadDoc(storage.DocDuration, &s.durSet)
	s.loadDoc(storage.DocTheme, &s.theme)
	if !s.theme.Known() {
		s.theme = model.DefaultTheme
	}

	return s
}

func (s *Store) loadDoc(name string, v any) {
	if _, err := storage.ReadDocument(s.docPath(name), v); err != nil {
		s.logger.Warn("document unreadable, falling back to defaults",
			zap.String("doc", name),
			zap.Error(err))
	}
}

func (s *Store) docPath(name string) string {
	return filepath.Join(s.dir, name)
}

// persist durably writes the named documents. On failure the error is logged
// and wrapped as ErrPersistence; the in-memory state keeps the mutation.
func (s *Store) persist(names ...string) error {
	for _, name := range names {
		var v any
		switch name {
		case storage.DocEntries:
			v = s.entries
		case storage.DocPeople:
			v = s.people
		case storage.DocCategories:
			v = s.categories
		case storage.DocTeams:
			v = s.teams
		case storage.DocFollowups:
			v = s.followups
		case storage.DocDuration:
			v = s.durSet
		case storage.DocTheme:
			v = s.theme
		}

		if err := storage.WriteDocument(s.docPath(name), v); err != nil {
			s.logger.Error("durable write failed; memory and disk now disagree",
				zap.String("doc", name),
				zap.Error(err))
			return fmt.Errorf("%w: %s: %v", ErrPersistence, name, err)
		}
	}
	return nil
}

// Subscribe registers a change notification callback, invoked after every
// successful mutation. The returned cancel func removes the subscription.
// Callbacks should re-read the snapshot they care about; no payload is sent.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}

func (s *Store) notify() {
	for _, fn := range s.subscribers {
		fn()
	}
}

// Snapshot accessors. Slices are copied so callers can hold them across
// later mutations.

// Entries returns the live entries, newest first.
func (s *Store) Entries() []model.Entry {
	return append([]model.Entry(nil), s.entries...)
}

// People returns the tracked people in insertion order.
func (s *Store) People() []model.Person {
	return append([]model.Person(nil), s.people...)
}

// Categories returns the classification templates.
func (s *Store) Categories() []model.Category {
	return append([]model.Category(nil), s.categories...)
}

// Teams returns all teams, active and inactive.
func (s *Store) Teams() []model.Team {
	return append([]model.Team(nil), s.teams...)
}

// FollowupOptions returns the quick-pick follow-up durations.
func (s *Store) FollowupOptions() []model.FollowupOption {
	return append([]model.FollowupOption(nil), s.followups...)
}

// DurationSettings returns the minute picker configuration.
func (s *Store) DurationSettings() model.DurationSettings {
	return s.durSet
}

// Theme returns the persisted display theme.
func (s *Store) Theme() model.Theme {
	return s.theme
}

// CategoryByID resolves a category, reporting whether it exists. Lookups on
// entries referencing a deleted category simply fail to resolve.
func (s *Store) CategoryByID(id string) (model.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// PersonByID resolves a person by id.
func (s *Store) PersonByID(id string) (model.Person, bool) {
	for _, p := range s.people {
		if p.ID == id {
			return p, true
		}
	}
	return model.Person{}, false
}

// TeamByID resolves a team by id.
func (s *Store) TeamByID(id string) (model.Team, bool) {
	for _, t := range s.teams {
		if t.ID == id {
			return t, true
		}
	}
	return model.Team{}, false
}

// validateEntry rejects entries missing their required references.
func (s *Store) validateEntry(e model.Entry) error {
	if e.PersonID == "" {
		return fmt.Errorf("%w: entry requires a person", ErrValidation)
	}
	if e.Category == "" {
		return fmt.Errorf("%w: entry requires a category", ErrValidation)
	}
	return nil
}

// normalizeEntry applies category-driven field rules: a category with
// AlwaysNoNotice forces notice to "not given" regardless of what was
// selected.
func (s *Store) normalizeEntry(e model.Entry) model.Entry {
	if c, ok := s.CategoryByID(e.Category); ok && c.AlwaysNoNotice {
		e.Notice = model.NoticeNotGiven
	}
	return e
}

// AddEntry prepends a new entry to the journal. Newest-first ordering is an
// insertion convention, not a sort. An empty id or zero timestamp is filled
// in here; the timestamp is immutable from then on.
func (s *Store) AddEntry(e model.Entry) error {
	if err := s.validateEntry(e); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = model.NewID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	e = s.normalizeEntry(e)

	s.entries = append([]model.Entry{e}, s.entries...)
	err := s.persist(storage.DocEntries)
	s.notify()
	return err
}

// UpdateEntry replaces the entry with a matching id, preserving the original
// creation timestamp whatever value was passed in. A missing id is a silent
// no-op: the usual cause is a stale view of already-removed data, not a bug.
func (s *Store) UpdateEntry(e model.Entry) error {
	if err := s.validateEntry(e); err != nil {
		return err
	}

	for i, existing := range s.entries {
		if existing.ID == e.ID {
			e.Timestamp = existing.Timestamp
			s.entries[i] = s.normalizeEntry(e)
			err := s.persist(storage.DocEntries)
			s.notify()
			return err
		}
	}
	return nil
}

// DeleteEntry removes an entry by id. Missing ids are a silent no-op.
func (s *Store) DeleteEntry(id string) error {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			err := s.persist(storage.DocEntries)
			s.notify()
			return err
		}
	}
	return nil
}

// AddPerson appends a new person. People keep insertion order.
func (s *Store) AddPerson(p model.Person) error {
	if p.Name == "" {
		return fmt.Errorf("%w: person requires a name", ErrValidation)
	}
	if p.ID == "" {
		p.ID = model.NewID()
	}
	if p.Dates == nil {
		p.Dates = []model.ImportantDate{}
	}

	s.people = append(s.people, p)
	err := s.persist(storage.DocPeople)
	s.notify()
	return err
}

// UpdatePerson replaces the person with a matching id. Entries keep the
// person name they were created with; renames do not rewrite history.
func (s *Store) UpdatePerson(p model.Person) error {
	if p.Name == "" {
		return fmt.Errorf("%w: person requires a name", ErrValidation)
	}

	for i, existing := range s.people {
		if existing.ID == p.ID {
			s.people[i] = p
			err := s.persist(storage.DocPeople)
			s.notify()
			return err
		}
	}
	return nil
}

// DeletePerson removes the person and cascades deletion to every entry that
// references them, as one logical operation. Both collections are persisted
// together; a missing id is a silent no-op and persists nothing.
func (s *Store) DeletePerson(id string) error {
	found := false
	for i, p := range s.people {
		if p.ID == id {
			s.people = append(s.people[:i], s.people[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.PersonID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept

	err := s.persist(storage.DocPeople, storage.DocEntries)
	s.notify()
	return err
}

// AddCategory appends a classification template.
func (s *Store) AddCategory(c model.Category) error {
	if c.Label == "" {
		return fmt.Errorf("%w: category requires a label", ErrValidation)
	}
	if c.ID == "" {
		c.ID = model.NewID()
	}

	s.categories = append(s.categories, c)
	err := s.persist(storage.DocCategories)
	s.notify()
	return err
}

// UpdateCategory replaces the category with a matching id. Existing entries
// referencing it are not touched.
func (s *Store) UpdateCategory(c model.Category) error {
	if c.Label == "" {
		return fmt.Errorf("%w: category requires a label", ErrValidation)
	}

	for i, existing := range s.categories {
		if existing.ID == c.ID {
			s.categories[i] = c
			err := s.persist(storage.DocCategories)
			s.notify()
			return err
		}
	}
	return nil
}

// DeleteCategory removes a category by id. Entries referencing it keep their
// raw category string and degrade to showing it verbatim.
func (s *Store) DeleteCategory(id string) error {
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			err := s.persist(storage.DocCategories)
			s.notify()
			return err
		}
	}
	return nil
}

// AddTeam appends a team.
func (s *Store) AddTeam(t model.Team) error {
	if t.Name == "" {
		return fmt.Errorf("%w: team requires a name", ErrValidation)
	}
	if t.ID == "" {
		t.ID = model.NewID()
	}

	s.teams = append(s.teams, t)
	err := s.persist(storage.DocTeams)
	s.notify()
	return err
}

// UpdateTeam replaces the team with a matching id.
func (s *Store) UpdateTeam(t model.Team) error {
	if t.Name == "" {
		return fmt.Errorf("%w: team requires a name", ErrValidation)
	}

	for i, existing := range s.teams {
		if existing.ID == t.ID {
			s.teams[i] = t
			err := s.persist(storage.DocTeams)
			s.notify()
			return err
		}
	}
	return nil
}

// DeleteTeam removes a team by id. People referencing it dangle gracefully.
func (s *Store) DeleteTeam(id string) error {
	for i, t := range s.teams {
		if t.ID == id {
			s.teams = append(s.teams[:i], s.teams[i+1:]...)
			err := s.persist(storage.DocTeams)
			s.notify()
			return err
		}
	}
	return nil
}

// AddFollowupOption appends a quick-pick follow-up duration.
func (s *Store) AddFollowupOption(o model.FollowupOption) error {
	if o.Label == "" || o.Hours <= 0 {
		return fmt.Errorf("%w: follow-up option requires a label and positive hours", ErrValidation)
	}
	if o.ID == "" {
		o.ID = model.NewID()
	}

	s.followups = append(s.followups, o)
	err := s.persist(storage.DocFollowups)
	s.notify()
	return err
}

// DeleteFollowupOption removes an option by id. Past entries are unaffected;
// they store hours and due time directly.
func (s *Store) DeleteFollowupOption(id string) error {
	for i, o := range s.followups {
		if o.ID == id {
			s.followups = append(s.followups[:i], s.followups[i+1:]...)
			err := s.persist(storage.DocFollowups)
			s.notify()
			return err
		}
	}
	return nil
}

// SetDurationSettings replaces the minute picker configuration.
func (s *Store) SetDurationSettings(d model.DurationSettings) error {
	if !d.Valid() {
		return fmt.Errorf("%w: duration settings need increment > 0 and max >= increment", ErrValidation)
	}

	s.durSet = d
	err := s.persist(storage.DocDuration)
	s.notify()
	return err
}

// SetTheme persists the display theme.
func (s *Store) SetTheme(t model.Theme) error {
	if !t.Known() {
		return fmt.Errorf("%w: unknown theme %q", ErrValidation, t)
	}

	s.theme = t
	err := s.persist(storage.DocTheme)
	s.notify()
	return err
}

// Reminders computes the current notices from the live snapshot.
func (s *Store) Reminders(now time.Time) []model.Reminder {
	return remind.Reminders(s.people, s.entries, s.categories, now)
}
