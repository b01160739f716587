package views

import (
	"fmt"
	"strings"

	"leadlog/internal/model"
)

// entryLine formats one journal entry for list rendering.
func entryLine(e model.Entry, cat model.Category, catOK bool) string {
	label := e.Category
	icon := ""
	if catOK {
		label = cat.Label
		icon = cat.Icon + " "
	}

	parts := []string{icon + label}
	if e.SubType != "" {
		parts = append(parts, e.SubType)
	}
	if e.Duration != nil {
		parts = append(parts, fmt.Sprintf("%d min", *e.Duration))
	}
	if catOK && cat.HasNotice && !e.Notice.IsZero() {
		parts = append(parts, e.Notice.String())
	}

	return strings.Join(parts, " - ")
}

// truncate shortens s to at most width runes, appending an ellipsis.
func truncate(s string, width int) string {
	if width <= 1 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// clampCursor keeps a cursor inside a list of the given length.
func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
