package model

// DefaultCategories returns the built-in classification templates. These are
// the seed configuration on first run and what ResetAll restores.
func DefaultCategories() []Category {
	return []Category{
		{ID: "arrival", Label: "Arrival", Icon: "🚶", Color: "2d6a4f", HasSubType: true, SubTypes: []string{"Late", "Early"}, HasDuration: true, HasNotice: true},
		{ID: "lunch", Label: "Lunch", Icon: "🍔", Color: "e67e22", HasSubType: true, SubTypes: []string{"Early", "Late"}, HasDuration: true, HasNotice: true},
		{ID: "early_out", Label: "Early Out", Icon: "🚪", Color: "ff7b54", HasSubType: true, SubTypes: []string{"No Notice", "Short Notice"}, HasDuration: true},
		{ID: "no_show", Label: "No Show", Icon: "👻", Color: "d63031", HasSubType: true, SubTypes: []string{"No Notice", "Short Notice"}},
		{ID: "missing", Label: "Missing", Icon: "🔍", Color: "8e44ad", HasDuration: true, HasNotice: true},
		{ID: "unauth_break", Label: "Unauth Break", Icon: "🚫", Color: "c0392b", HasDuration: true, AlwaysNoNotice: true},
		{ID: "coaching", Label: "Coaching", Icon: "🎯", Color: "2980b9"},
		{ID: "highlight", Label: "Highlight", Icon: "⭐", Color: "f39c12"},
		{ID: "note", Label: "Note", Icon: "📝", Color: "7f8c8d"},
	}
}

// DefaultTeams returns the built-in teams. Only the first is active.
func DefaultTeams() []Team {
	return []Team{
		{ID: "t1", Name: "Team 1", Active: true},
		{ID: "t2", Name: "Team 2"},
		{ID: "t3", Name: "Team 3"},
		{ID: "t4", Name: "Team 4"},
		{ID: "t5", Name: "Team 5"},
	}
}

// DefaultFollowupOptions returns the built-in quick-pick follow-up durations.
func DefaultFollowupOptions() []FollowupOption {
	return []FollowupOption{
		{ID: NewID(), Label: "24 hours", Hours: 24},
		{ID: NewID(), Label: "48 hours", Hours: 48},
		{ID: NewID(), Label: "72 hours", Hours: 72},
		{ID: NewID(), Label: "1 week", Hours: 168},
		{ID: NewID(), Label: "2 weeks", Hours: 336},
	}
}

// DefaultDurationSettings returns the default minute picker configuration.
func DefaultDurationSettings() DurationSettings {
	return DurationSettings{Max: 60, Increment: 5}
}
