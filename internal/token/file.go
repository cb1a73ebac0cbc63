// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists the token in a single plain-text file. It backs the
// "session" storage plan: the default path lives in the OS temp directory,
// which the platform clears between login sessions.
//
// Writes use a write-to-temp-and-rename pattern so a crash mid-write can
// never leave a truncated token behind.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path. The parent
// directory is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultSessionFile returns the standard path for the session-scoped
// token file: <tempdir>/sirseer-scout/session-token.
func DefaultSessionFile() string {
	return filepath.Join(os.TempDir(), "sirseer-scout", "session-token")
}

// Get returns the stored token, or an empty string if the file does not exist.
func (s *FileStore) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token file %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Set atomically writes the token to the file with restricted permissions.
func (s *FileStore) Set(value string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	tempFile := s.path + ".tmp"
	if err := os.WriteFile(tempFile, []byte(value+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write temporary token file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tempFile, s.path); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp token file: %w", err)
	}

	return nil
}

// Delete removes the token file. A missing file is not an error.
func (s *FileStore) Delete() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file %s: %w", s.path, err)
	}
	return nil
}
