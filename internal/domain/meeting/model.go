package meeting

import "time"

// Session represents one recorded meeting and its derived artifacts.
type Session struct {
	ID         SessionID
	CreatedAt  time.Time
	Title      string // optional, set by the user after recording
	Transcript string // append-only while recording, frozen afterwards
	Summary    string // optional, generated on first view
}
