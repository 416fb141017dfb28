package meeting

import (
	"fmt"
	"time"
)

// idLayout encodes the session's creation time into its directory
// name. Lexicographic order of ids equals chronological order.
const idLayout = "2006_01_02_15_04_05"

// labelLayout is the human-readable form shown in listings.
const labelLayout = "2006/01/02 15:04:05"

// SessionID identifies one recorded session. It doubles as the
// session's directory name under the notes root.
type SessionID string

// NewSessionID derives an id from the session's creation time.
func NewSessionID(t time.Time) SessionID {
	return SessionID(t.Format(idLayout))
}

// ParseSessionID recovers the creation time from an id. It fails for
// directory names that were not produced by NewSessionID.
func ParseSessionID(s string) (time.Time, error) {
	t, err := time.Parse(idLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid session id %q: %w", s, err)
	}
	return t, nil
}

// Label formats the id's creation time for display.
func (id SessionID) Label() string {
	t, err := ParseSessionID(string(id))
	if err != nil {
		return string(id)
	}
	return t.Format(labelLayout)
}
