package session

import (
	"log/slog"
	"net/url"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileStore persists each key as a file under a state directory. It is
// the server-side analog of a browser profile's persistent storage:
// values survive restarts, and the last writer wins.
//
// The Store surface is deliberately error-free, so filesystem failures
// are logged and then collapse into "absent" on read and a no-op on
// write, matching how callers treat any other missing value.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore creates a FileStore rooted at dir on the given
// filesystem. Use afero.NewOsFs() in production and afero.NewMemMapFs()
// in tests.
func NewFileStore(fs afero.Fs, dir string) *FileStore {
	return &FileStore{fs: fs, dir: dir}
}

func (s *FileStore) path(key string) string {
	// Keys may contain characters that are not filename-safe (the
	// session key contains a colon), so escape them.
	return filepath.Join(s.dir, url.PathEscape(key))
}

// GetItem reads the value stored under key, if any.
func (s *FileStore) GetItem(key string) (string, bool) {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// SetItem writes value under key, replacing any previous value.
func (s *FileStore) SetItem(key, value string) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		slog.Error("session file store: create state dir", "dir", s.dir, "error", err)
		return
	}
	if err := afero.WriteFile(s.fs, s.path(key), []byte(value), 0o600); err != nil {
		slog.Error("session file store: write", "key", key, "error", err)
	}
}

// RemoveItem deletes the entry under key. Removing an absent key is a
// no-op.
func (s *FileStore) RemoveItem(key string) {
	if err := s.fs.Remove(s.path(key)); err != nil {
		// An already-missing file is the common case on sign-out
		// after a restart; anything else is worth a log line.
		if exists, _ := afero.Exists(s.fs, s.path(key)); exists {
			slog.Error("session file store: remove", "key", key, "error", err)
		}
	}
}
