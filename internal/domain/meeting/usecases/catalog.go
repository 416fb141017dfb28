package usecases

import (
	"time"

	"github.com/devbydaniel/meetnotes/internal/domain/meeting"
)

// Catalog is a read-only view over the stored sessions.
type Catalog struct {
	Store *meeting.Store
}

// Entry is one listed session with its display metadata.
type Entry struct {
	ID         meeting.SessionID
	Label      string
	RecordedAt time.Time
	HasSummary bool
	AudioBytes int64
}

// List returns every recorded session, most recent first. The label is
// the formatted creation time, with the stored title appended when one
// exists. Directories that don't parse as sessions are skipped.
func (c *Catalog) List() ([]Entry, error) {
	ids, err := c.Store.List()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		recordedAt, err := meeting.ParseSessionID(string(id))
		if err != nil {
			continue
		}

		label := id.Label()
		title, err := c.Store.ReadTitle(id)
		if err != nil {
			return nil, err
		}
		if title != "" {
			label += " - " + title
		}

		summary, err := c.Store.ReadSummary(id)
		if err != nil {
			return nil, err
		}

		entries = append(entries, Entry{
			ID:         id,
			Label:      label,
			RecordedAt: recordedAt,
			HasSummary: summary != "",
			AudioBytes: c.Store.AudioSize(id),
		})
	}
	return entries, nil
}
