// Package model defines the persisted entity types for the leadlog journal:
// entries, people with important dates, categories, teams, follow-up options
// and the scalar settings. All types round-trip through encoding/json; the
// field names form the interchange contract for backup files.
package model

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque unique identifier.
func NewID() string {
	return uuid.NewString()
}

// Followup is a scheduled future check-in attached to an entry. The hours
// offset and absolute due time are stored directly, decoupled from the
// follow-up option list so later edits to the options never rewrite history.
type Followup struct {
	Hours int       `json:"hours"`
	Due   time.Time `json:"due"`
}

// Entry is one logged incident tied to a person and a category.
//
// PersonName is a point-in-time copy of the person's name at creation, not a
// live join: renaming a person must not rewrite history. Timestamp is set
// once at creation and preserved across edits.
type Entry struct {
	ID         string    `json:"id"`
	PersonID   string    `json:"personId"`
	PersonName string    `json:"personName"`
	Category   string    `json:"category"`
	SubType    string    `json:"subType,omitempty"`
	Duration   *int      `json:"duration,omitempty"`
	Notice     Notice    `json:"notice,omitzero"`
	Followup   *Followup `json:"followup,omitempty"`
	Notes      string    `json:"notes"`
	Timestamp  time.Time `json:"timestamp"`
}

// RemindWindow names the reminder lead time for an important date.
// Unrecognized values fall back to one week when the window is resolved.
const (
	Remind48Hours = "48 hours"
	Remind1Week   = "1 week"
	Remind2Weeks  = "2 weeks"
)

// ImportantDate is a per-person date worth a reminder (birthday, certification
// expiry). When Recurring is set the stored year is ignored and the date fires
// every year on its month/day.
type ImportantDate struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Date      time.Time `json:"date"`
	Remind    string    `json:"remind"`
	Recurring bool      `json:"recurring"`
}

// Person is a team member being tracked. TeamID may dangle if the team was
// deleted; display degrades to "no team" rather than failing.
type Person struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	TeamID string          `json:"teamId"`
	Dates  []ImportantDate `json:"dates"`
}

// Category is a configurable classification template that determines which
// optional fields an entry may carry. Editing or deleting a category does not
// retroactively alter entries that reference it.
type Category struct {
	ID             string   `json:"id"`
	Label          string   `json:"label"`
	Icon           string   `json:"icon"`
	Color          string   `json:"color"`
	HasSubType     bool     `json:"hasSubType"`
	SubTypes       []string `json:"subTypes,omitempty"`
	HasDuration    bool     `json:"hasDuration"`
	HasNotice      bool     `json:"hasNotice"`
	AlwaysNoNotice bool     `json:"alwaysNoNotice,omitempty"`
}

// Team is a grouping label. Inactive teams are hidden from assignment pickers
// but still resolve for historical display.
type Team struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// FollowupOption is a named quick-pick follow-up duration.
type FollowupOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Hours int    `json:"hours"`
}

// DurationSettings defines the selectable minute values as an arithmetic
// sequence from Increment to Max, step Increment.
type DurationSettings struct {
	Max       int `json:"max"`
	Increment int `json:"increment"`
}

// Options returns the selectable minute values. Partial increments beyond Max
// are excluded, not rounded: {max: 7, increment: 5} yields [5].
func (d DurationSettings) Options() []int {
	if d.Increment <= 0 {
		return nil
	}
	var opts []int
	for v := d.Increment; v <= d.Max; v += d.Increment {
		opts = append(opts, v)
	}
	return opts
}

// Valid reports whether the settings produce a non-empty option set.
func (d DurationSettings) Valid() bool {
	return d.Increment > 0 && d.Max >= d.Increment
}

// Reminder is an ephemeral notice that an important date or follow-up is
// within its lead-time window. Reminders are recomputed on demand and never
// persisted.
type Reminder struct {
	Person     string
	Label      string
	Days       int
	IsFollowup bool
}
