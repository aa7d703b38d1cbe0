package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lotterich/cli/internal/filex"
)

// TokenFileName is the fixed name the bearer token is persisted under.
// It is the CLI analogue of the browser's local-storage key.
const TokenFileName = "token"

// Store persists the session token as a single file on disk.
type Store struct {
	path string
}

// NewStore builds a store over the given file path. An empty path falls
// back to DefaultTokenPath.
func NewStore(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultTokenPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &Store{path: path}, nil
}

// DefaultTokenPath is <user config dir>/lotterich/token.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "lotterich", TokenFileName), nil
}

// Load reads the persisted token. A missing file is not an error and
// yields an empty token.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating the parent directory if needed. The file
// is owner-readable only.
func (s *Store) Save(token string) error {
	if err := filex.EnsureParent(s.path); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an absent token is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
