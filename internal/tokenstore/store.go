// Package tokenstore owns the session token: a single opaque bearer credential
// held in memory and mirrored to durable storage so it survives restarts.
package tokenstore

import (
	"encoding/base64"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// StorageKey is the durable key (file name) the token persists under.
const StorageKey = "token"

// Store abstracts durable token storage.
type Store interface {
	// Load returns the persisted token, or "" when none is stored.
	Load() (string, error)

	// Save persists the token, replacing any previous value.
	Save(token string) error

	// Clear removes the persisted token.
	Clear() error
}

// FileStore persists the token to a file under a config directory. Without an
// encryption secret the token is written in plaintext; the file is still
// created with 0600 permissions.
type FileStore struct {
	path string
	box  *cipherBox
}

// NewFileStore creates a file store at dir/token. When secret is non-empty the
// token is sealed with AES-256-GCM at rest.
func NewFileStore(dir string, secret []byte) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "cannot determine config directory")
		}
		dir = filepath.Join(home, "espeeswap")
	}

	fs := &FileStore{path: filepath.Join(dir, StorageKey)}

	if len(secret) > 0 {
		box, err := newCipherBox(secret)
		if err != nil {
			return nil, err
		}
		fs.box = box
	}

	return fs, nil
}

// Path returns the file the token persists to.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads and, when configured, unseals the persisted token.
func (f *FileStore) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, "failed to read token file")
	}

	if f.box == nil {
		return string(data), nil
	}

	sealed, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		return "", errors.Wrap(err, "failed to decode sealed token")
	}

	plain, err := f.box.open(sealed)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// Save writes the token with restrictive permissions.
func (f *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return errors.Wrap(err, "failed to create token directory")
	}

	data := []byte(token)
	if f.box != nil {
		sealed, err := f.box.seal(data)
		if err != nil {
			return err
		}
		data = []byte(base64.StdEncoding.EncodeToString(sealed))
	}

	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write token file")
	}
	return nil
}

// Clear removes the token file.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove token file")
	}
	return nil
}

// MemoryStore is a Store backed by a plain variable. Used in tests and by
// callers that do not want reload persistence.
type MemoryStore struct {
	token string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored token.
func (m *MemoryStore) Load() (string, error) {
	return m.token, nil
}

// Save stores the token.
func (m *MemoryStore) Save(token string) error {
	m.token = token
	return nil
}

// Clear removes the token.
func (m *MemoryStore) Clear() error {
	m.token = ""
	return nil
}
