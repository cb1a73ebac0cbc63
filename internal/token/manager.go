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
	"sync"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
)

// Manager owns the in-memory token and its two persistent stores. It is
// the single source of truth for token resolution: memory first, then the
// local store, then the session store. Each Manager is independent, so
// tests can run several side by side without shared state.
//
// Token resolution caches the first store hit in memory, so Token is a
// writer as well as a reader. The mutex keeps that safe when concurrent
// requests resolve the token at the same time.
type Manager struct {
	mu      sync.Mutex
	token   string
	local   Store
	session Store
}

// NewManager creates a Manager over the given local (durable) and session
// stores. Either store may be a MemoryStore when persistence is unwanted.
func NewManager(local, session Store) *Manager {
	return &Manager{
		local:   local,
		session: session,
	}
}

// NewDefaultManager creates a Manager with the standard on-disk stores:
// a bbolt database for the local plan and a temp-dir file for the session plan.
func NewDefaultManager() *Manager {
	return NewManager(
		NewBoltStore(DefaultLocalDB()),
		NewFileStore(DefaultSessionFile()),
	)
}

// SetToken sets the in-memory token immediately. An empty token clears it.
//
// When plan is PlanLocal or PlanSession the token is also written to the
// corresponding store; an empty token removes the key there instead. The
// other store is never touched.
func (m *Manager) SetToken(tok string, plan Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = tok

	var store Store
	switch plan {
	case PlanLocal:
		store = m.local
	case PlanSession:
		store = m.session
	case PlanNone:
		return nil
	default:
		return fmt.Errorf("unknown storage plan %q", plan)
	}

	if tok == "" {
		if err := store.Delete(); err != nil {
			return fmt.Errorf("failed to clear %s token store: %w", plan, err)
		}
		return nil
	}

	if err := store.Set(tok); err != nil {
		return fmt.Errorf("failed to persist token to %s store: %w", plan, err)
	}
	return nil
}

// Token resolves the active token. If no in-memory token is set it tries
// the local store, then the session store, caching the first hit. Returns
// ErrNoToken when nothing resolves.
func (m *Manager) Token() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" {
		return m.token, nil
	}

	for _, store := range []Store{m.local, m.session} {
		value, err := store.Get()
		if err != nil {
			// An unreadable store is indistinguishable from an absent
			// token for callers; keep trying the next store.
			continue
		}
		if value != "" {
			m.token = value
			return value, nil
		}
	}

	return "", scouterrors.ErrNoToken
}

// HasToken reports whether a token is available in memory or in either store.
func (m *Manager) HasToken() bool {
	_, err := m.Token()
	return err == nil
}
