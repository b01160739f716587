package ui

// RefreshMsg asks the views to re-read their data from the journal.
// Sent on the store's change notification and on the refresh key.
type RefreshMsg struct{}
