// Package report renders display-only artifacts (plain text, CSV) from a
// filtered entry set plus resolved person and category lookups. It has no
// write access to the store.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"leadlog/internal/model"
)

const dateFormat = "Jan 2, 2006"

// Options filters the entry set for a report.
type Options struct {
	From     time.Time
	To       time.Time
	PersonID string // empty means all people
}

// Filter returns the entries matching the options, preserving input order.
// The time range is inclusive on both ends; a zero From or To leaves that
// end unbounded.
func Filter(entries []model.Entry, opt Options) []model.Entry {
	var out []model.Entry
	for _, e := range entries {
		if !opt.From.IsZero() && e.Timestamp.Before(opt.From) {
			continue
		}
		if !opt.To.IsZero() && e.Timestamp.After(opt.To) {
			continue
		}
		if opt.PersonID != "" && e.PersonID != opt.PersonID {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Text renders the entry set as a plain-text report grouped by person,
// most-logged person first, each person's entries oldest first.
func Text(entries []model.Entry, people []model.Person, categories []model.Category, from, to time.Time) string {
	var lines []string

	lines = append(lines, "COACHING LOG REPORT")
	lines = append(lines, fmt.Sprintf("%s to %s", from.Format(dateFormat), to.Format(dateFormat)))
	lines = append(lines, fmt.Sprintf("Total: %d entries", len(entries)))
	lines = append(lines, "")

	grouped := map[string][]model.Entry{}
	var order []string
	for _, e := range entries {
		if _, seen := grouped[e.PersonID]; !seen {
			order = append(order, e.PersonID)
		}
		grouped[e.PersonID] = append(grouped[e.PersonID], e)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return len(grouped[order[i]]) > len(grouped[order[j]])
	})

	for _, personID := range order {
		group := grouped[personID]
		name := personName(people, personID, group)

		lines = append(lines, fmt.Sprintf("=== %s (%d) ===", name, len(group)))

		sorted := append([]model.Entry(nil), group...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		})

		for _, e := range sorted {
			lines = append(lines, entryLine(e, categories))
			if e.Notes != "" {
				lines = append(lines, "    "+e.Notes)
			}
		}

		lines = append(lines, "")
	}

	if len(entries) > 0 {
		lines = append(lines, "By category:")
		for _, cc := range Tally(entries, categories) {
			if cc.Count == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %s%s: %d", iconPrefix(cc.Category), cc.Category.Label, cc.Count))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func iconPrefix(c model.Category) string {
	if c.Icon == "" {
		return ""
	}
	return c.Icon + " "
}

// entryLine renders one entry: date, category icon/label, then the optional
// subtype, duration and notice annotations.
func entryLine(e model.Entry, categories []model.Category) string {
	cat, resolved := lookupCategory(categories, e.Category)

	label := e.Category
	icon := ""
	if resolved {
		label = cat.Label
		icon = cat.Icon + " "
	}

	line := fmt.Sprintf("  %s | %s%s", e.Timestamp.Format(dateFormat), icon, label)

	if e.SubType != "" {
		line += " - " + e.SubType
	}
	if e.Duration != nil {
		line += fmt.Sprintf(" - %d min", *e.Duration)
	}

	switch {
	case e.Notice == model.NoticeGiven:
		line += " (Notice)"
	case e.Notice == model.NoticeNotGiven && resolved && cat.HasNotice:
		line += " (No notice)"
	}

	return line
}

func personName(people []model.Person, personID string, group []model.Entry) string {
	for _, p := range people {
		if p.ID == personID {
			return p.Name
		}
	}
	// The person was deleted; fall back to the name snapshot on the entry.
	if len(group) > 0 && group[0].PersonName != "" {
		return group[0].PersonName
	}
	return "?"
}

func lookupCategory(categories []model.Category, id string) (model.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// csvHeader is the column contract for CSV exports.
var csvHeader = []string{"timestamp", "person", "category", "subType", "duration", "notice", "followupDue", "notes"}

// CSV writes the entry set as CSV with a header row, one row per entry, in
// input order.
func CSV(w io.Writer, entries []model.Entry, categories []model.Category) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range entries {
		label := e.Category
		if c, ok := lookupCategory(categories, e.Category); ok {
			label = c.Label
		}

		duration := ""
		if e.Duration != nil {
			duration = strconv.Itoa(*e.Duration)
		}

		followupDue := ""
		if e.Followup != nil {
			followupDue = e.Followup.Due.Format(time.RFC3339)
		}

		row := []string{
			e.Timestamp.Format(time.RFC3339),
			e.PersonName,
			label,
			e.SubType,
			duration,
			e.Notice.String(),
			followupDue,
			e.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CategoryCount is one cell of the per-category tally.
type CategoryCount struct {
	Category model.Category
	Count    int
}

// Tally counts entries per category, in category order. Entries referencing
// unknown categories are not counted.
func Tally(entries []model.Entry, categories []model.Category) []CategoryCount {
	counts := make([]CategoryCount, len(categories))
	for i, c := range categories {
		counts[i].Category = c
	}

	index := map[string]int{}
	for i, c := range categories {
		index[c.ID] = i
	}

	for _, e := range entries {
		if i, ok := index[e.Category]; ok {
			counts[i].Count++
		}
	}

	return counts
}
