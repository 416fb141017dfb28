package meeting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Artifact filenames inside a session directory.
const (
	audioFile      = "audio.wav"
	transcriptFile = "transcript.txt"
	titleFile      = "title.txt"
	summaryFile    = "summary.txt"
)

// ErrSessionExists reports a directory collision on session creation.
var ErrSessionExists = errors.New("session already exists")

// Store persists sessions as one directory per session under a root.
// Artifacts are whole-file blobs: every write replaces the full
// accumulated value, and a missing artifact reads as empty.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the directory the store writes under.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) dir(id SessionID) string {
	return filepath.Join(s.root, string(id))
}

// Create allocates the directory for a new session. Two sessions must
// never share a directory, so an existing one is an error.
func (s *Store) Create(id SessionID) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("creating notes directory: %w", err)
	}
	if err := os.Mkdir(s.dir(id), 0o755); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrSessionExists, id)
		}
		return fmt.Errorf("creating session directory: %w", err)
	}
	return nil
}

// Exists reports whether a session directory is present.
func (s *Store) Exists(id SessionID) bool {
	info, err := os.Stat(s.dir(id))
	return err == nil && info.IsDir()
}

func (s *Store) readArtifact(id SessionID, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir(id), name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

func (s *Store) writeArtifact(id SessionID, name, content string) error {
	if err := os.WriteFile(filepath.Join(s.dir(id), name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (s *Store) ReadTranscript(id SessionID) (string, error) {
	return s.readArtifact(id, transcriptFile)
}

func (s *Store) WriteTranscript(id SessionID, transcript string) error {
	return s.writeArtifact(id, transcriptFile, transcript)
}

func (s *Store) ReadTitle(id SessionID) (string, error) {
	return s.readArtifact(id, titleFile)
}

func (s *Store) WriteTitle(id SessionID, title string) error {
	return s.writeArtifact(id, titleFile, title)
}

func (s *Store) ReadSummary(id SessionID) (string, error) {
	return s.readArtifact(id, summaryFile)
}

func (s *Store) WriteSummary(id SessionID, summary string) error {
	return s.writeArtifact(id, summaryFile, summary)
}

// WriteAudio replaces the session's audio file with the full
// accumulated recording.
func (s *Store) WriteAudio(id SessionID, wav []byte) error {
	if err := os.WriteFile(s.AudioPath(id), wav, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", audioFile, err)
	}
	return nil
}

// AudioPath returns where the session's audio lives on disk.
func (s *Store) AudioPath(id SessionID) string {
	return filepath.Join(s.dir(id), audioFile)
}

// AudioSize returns the audio file size in bytes, 0 when absent.
func (s *Store) AudioSize(id SessionID) int64 {
	info, err := os.Stat(s.AudioPath(id))
	if err != nil {
		return 0
	}
	return info.Size()
}

// Load reads a full session from disk. The caller is expected to have
// checked Exists; artifacts that were never written come back empty.
func (s *Store) Load(id SessionID) (*Session, error) {
	createdAt, err := ParseSessionID(string(id))
	if err != nil {
		return nil, err
	}
	transcript, err := s.ReadTranscript(id)
	if err != nil {
		return nil, err
	}
	title, err := s.ReadTitle(id)
	if err != nil {
		return nil, err
	}
	summary, err := s.ReadSummary(id)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:         id,
		CreatedAt:  createdAt,
		Title:      title,
		Transcript: transcript,
		Summary:    summary,
	}, nil
}

// List returns every stored session id, most recent first. Directory
// names that do not parse as session ids are skipped.
func (s *Store) List() ([]SessionID, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	var ids []SessionID
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := ParseSessionID(e.Name()); err != nil {
			continue
		}
		ids = append(ids, SessionID(e.Name()))
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	return ids, nil
}
