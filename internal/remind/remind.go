// Package remind computes due and upcoming notices from the current people,
// entry and category collections. It is a pure read over a snapshot: nothing
// is cached or persisted, every call recomputes from scratch. Cost is linear
// in the number of important dates and follow-ups, both bounded by manual
// data entry.
package remind

import (
	"math"
	"sort"
	"time"

	"leadlog/internal/model"
)

// Lead-time windows for the named remind values.
const (
	Window48Hours = 48 * time.Hour
	Window1Week   = 168 * time.Hour
	Window2Weeks  = 336 * time.Hour
)

// Window resolves the reminder lead time for a named remind value.
// Unrecognized values default to one week.
func Window(remind string) time.Duration {
	switch remind {
	case model.Remind48Hours:
		return Window48Hours
	case model.Remind1Week:
		return Window1Week
	case model.Remind2Weeks:
		return Window2Weeks
	default:
		return Window1Week
	}
}

// NextOccurrence returns the target occurrence of an important date relative
// to now. Non-recurring dates are their literal stored date. Recurring dates
// use the stored month/day in the current year, advanced to next year when
// that candidate is already in the past, so a recurring date always points at
// the next future occurrence and never reports as overdue.
func NextOccurrence(d model.ImportantDate, now time.Time) time.Time {
	if !d.Recurring {
		return d.Date
	}

	target := time.Date(now.Year(), d.Date.Month(), d.Date.Day(), 0, 0, 0, 0, now.Location())
	if target.Before(now) {
		target = time.Date(now.Year()+1, d.Date.Month(), d.Date.Day(), 0, 0, 0, 0, now.Location())
	}
	return target
}

// daysUntil converts an hour distance to whole display days, floored at zero.
// Zero renders as "Today!" in the presentation layer.
func daysUntil(hours float64) int {
	days := int(math.Ceil(hours / 24))
	if days < 0 {
		return 0
	}
	return days
}

// Reminders produces the combined notice list for the given snapshot, sorted
// ascending by days until due. Important-date reminders come first in the
// encounter order of people and their dates, then follow-ups in entry order;
// the sort is stable so ties keep that order.
//
// An important date is included iff 0 < hoursUntil <= window: a reminder
// never fires earlier than its lead time and never after the moment has
// passed (exactly zero is excluded).
//
// A follow-up is included iff -24 < hoursUntil < 48. The asymmetric window is
// intentional: a follow-up stays visible for a day after it was due so a
// just-missed check-in is not silently dropped.
func Reminders(people []model.Person, entries []model.Entry, categories []model.Category, now time.Time) []model.Reminder {
	var results []model.Reminder

	for _, person := range people {
		for _, date := range person.Dates {
			window := Window(date.Remind)
			target := NextOccurrence(date, now)

			hoursUntil := target.Sub(now).Hours()
			if hoursUntil > 0 && hoursUntil <= window.Hours() {
				results = append(results, model.Reminder{
					Person: person.Name,
					Label:  date.Label,
					Days:   daysUntil(hoursUntil),
				})
			}
		}
	}

	for _, entry := range entries {
		if entry.Followup == nil {
			continue
		}

		hoursUntil := entry.Followup.Due.Sub(now).Hours()
		if hoursUntil > -24 && hoursUntil < 48 {
			results = append(results, model.Reminder{
				Person:     entry.PersonName,
				Label:      "Follow-up: " + categoryLabel(categories, entry.Category),
				Days:       daysUntil(hoursUntil),
				IsFollowup: true,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Days < results[j].Days
	})

	return results
}

func categoryLabel(categories []model.Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Label
		}
	}
	return ""
}
