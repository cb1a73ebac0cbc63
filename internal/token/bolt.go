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
	"time"

	bolt "go.etcd.io/bbolt"
)

const tokenBucket = "tokens"

// BoltStore persists the token in a bbolt database. It backs the "local"
// storage plan, surviving across login sessions and reboots.
//
// The database is opened per operation so a CLI process never holds the
// file lock longer than a single read or write.
type BoltStore struct {
	path string
}

// NewBoltStore creates a bbolt-backed store at the given database path.
// The file is created on first write.
func NewBoltStore(path string) *BoltStore {
	return &BoltStore{path: path}
}

// DefaultLocalDB returns the standard path for the durable token
// database: ~/.sirseer/scout-tokens.db.
func DefaultLocalDB() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".sirseer", "scout-tokens.db")
}

// Get returns the stored token, or an empty string if the database or key
// does not exist.
func (s *BoltStore) Get() (string, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return "", nil
	}

	db, err := s.open()
	if err != nil {
		return "", err
	}
	defer db.Close()

	var value string
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(tokenBucket))
		if b == nil {
			return nil
		}
		value = string(b.Get([]byte(Key)))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to read token from %s: %w", s.path, err)
	}
	return value, nil
}

// Set writes the token under the fixed key, creating the database and
// bucket as needed.
func (s *BoltStore) Set(value string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		b, bErr := tx.CreateBucketIfNotExists([]byte(tokenBucket))
		if bErr != nil {
			return bErr
		}
		return b.Put([]byte(Key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write token to %s: %w", s.path, err)
	}
	return nil
}

// Delete removes the token key. A missing database or key is not an error.
func (s *BoltStore) Delete() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(tokenBucket))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(Key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete token from %s: %w", s.path, err)
	}
	return nil
}

func (s *BoltStore) open() (*bolt.DB, error) {
	db, err := bolt.Open(s.path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open token database %s: %w", s.path, err)
	}
	return db, nil
}
