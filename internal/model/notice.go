package model

import (
	"bytes"
	"fmt"
)

// Notice is the tri-state "was notice given" flag on an entry. "Not tracked"
// and "not given" carry different meaning: not tracked means the category does
// not record notice at all, not given means notice was explicitly absent.
//
// On the wire the three states map to a nullable boolean (absent/null, true,
// false) so backup files stay compatible with the original export contract.
type Notice int

const (
	NoticeNotTracked Notice = iota
	NoticeGiven
	NoticeNotGiven
)

// IsZero reports whether the notice is the untracked state. Used by
// encoding/json's omitzero to drop the field entirely.
func (n Notice) IsZero() bool {
	return n == NoticeNotTracked
}

// String returns a short human-readable form.
func (n Notice) String() string {
	switch n {
	case NoticeGiven:
		return "notice"
	case NoticeNotGiven:
		return "no notice"
	default:
		return ""
	}
}

// MarshalJSON encodes the tri-state as a nullable boolean.
func (n Notice) MarshalJSON() ([]byte, error) {
	switch n {
	case NoticeGiven:
		return []byte("true"), nil
	case NoticeNotGiven:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes true/false/null into the tri-state.
func (n *Notice) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("true")):
		*n = NoticeGiven
	case bytes.Equal(data, []byte("false")):
		*n = NoticeNotGiven
	case bytes.Equal(data, []byte("null")):
		*n = NoticeNotTracked
	default:
		return fmt.Errorf("invalid notice value: %s", data)
	}
	return nil
}
