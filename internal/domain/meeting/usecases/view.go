package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/devbydaniel/meetnotes/internal/domain/meeting"
)

// ErrNoSession reports an operation against a session id that has no
// directory in the store.
var ErrNoSession = errors.New("no such session")

// View assembles the read side of a single session and lazily fills in
// the summary.
type View struct {
	Store     *meeting.Store
	Summarize *Summarize
}

// SessionView is what the front-end shows for one session.
type SessionView struct {
	ID         meeting.SessionID
	Title      string
	Transcript string
	Summary    string
}

// Get returns the session's artifacts. When no summary has been
// persisted yet and a transcript exists, the summary is generated and
// stored before returning; subsequent calls read the stored file and
// make no chat call.
func (v *View) Get(ctx context.Context, id meeting.SessionID) (*SessionView, error) {
	if !v.Store.Exists(id) {
		return nil, fmt.Errorf("%w: %s", ErrNoSession, id)
	}

	sess, err := v.Store.Load(id)
	if err != nil {
		return nil, err
	}

	if sess.Summary == "" && sess.Transcript != "" {
		sess.Summary, err = v.Summarize.Execute(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	return &SessionView{
		ID:         sess.ID,
		Title:      sess.Title,
		Transcript: sess.Transcript,
		Summary:    sess.Summary,
	}, nil
}

// SetTitle stores the user-supplied title for an existing session.
func (v *View) SetTitle(id meeting.SessionID, title string) error {
	if !v.Store.Exists(id) {
		return fmt.Errorf("%w: %s", ErrNoSession, id)
	}
	return v.Store.WriteTitle(id, title)
}
