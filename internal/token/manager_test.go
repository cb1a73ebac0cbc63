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
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
)

func newTestManager() (*Manager, *MemoryStore, *MemoryStore) {
	local := NewMemoryStore()
	session := NewMemoryStore()
	return NewManager(local, session), local, session
}

func TestSetTokenMemoryOnly(t *testing.T) {
	mgr, local, session := newTestManager()

	require.NoError(t, mgr.SetToken("t", PlanNone))

	assert.True(t, mgr.HasToken())

	localVal, err := local.Get()
	require.NoError(t, err)
	assert.Empty(t, localVal, "PlanNone must not write the local store")

	sessionVal, err := session.Get()
	require.NoError(t, err)
	assert.Empty(t, sessionVal, "PlanNone must not write the session store")
}

func TestSetTokenSessionPlan(t *testing.T) {
	mgr, local, session := newTestManager()

	require.NoError(t, mgr.SetToken("session-tok", PlanSession))

	sessionVal, err := session.Get()
	require.NoError(t, err)
	assert.Equal(t, "session-tok", sessionVal)

	localVal, err := local.Get()
	require.NoError(t, err)
	assert.Empty(t, localVal, "session plan must leave the local store untouched")
}

func TestSetTokenLocalPlan(t *testing.T) {
	mgr, local, session := newTestManager()

	require.NoError(t, mgr.SetToken("local-tok", PlanLocal))

	localVal, err := local.Get()
	require.NoError(t, err)
	assert.Equal(t, "local-tok", localVal)

	sessionVal, err := session.Get()
	require.NoError(t, err)
	assert.Empty(t, sessionVal, "local plan must leave the session store untouched")
}

func TestSetEmptyTokenRemovesKey(t *testing.T) {
	mgr, local, session := newTestManager()

	require.NoError(t, mgr.SetToken("tok", PlanLocal))
	require.NoError(t, mgr.SetToken("", PlanLocal))

	localVal, err := local.Get()
	require.NoError(t, err)
	assert.Empty(t, localVal)

	// The session store must still be untouched, and the manager must no
	// longer resolve a token.
	sessionVal, err := session.Get()
	require.NoError(t, err)
	assert.Empty(t, sessionVal)
	assert.False(t, mgr.HasToken())
}

func TestTokenResolvesLocalBeforeSession(t *testing.T) {
	mgr, local, session := newTestManager()

	require.NoError(t, local.Set("from-local"))
	require.NoError(t, session.Set("from-session"))

	tok, err := mgr.Token()
	require.NoError(t, err)
	assert.Equal(t, "from-local", tok)
}

func TestTokenFallsBackToSession(t *testing.T) {
	mgr, _, session := newTestManager()

	require.NoError(t, session.Set("from-session"))

	tok, err := mgr.Token()
	require.NoError(t, err)
	assert.Equal(t, "from-session", tok)
}

func TestTokenCachesStoreHit(t *testing.T) {
	mgr, local, _ := newTestManager()

	require.NoError(t, local.Set("cached"))

	tok, err := mgr.Token()
	require.NoError(t, err)
	require.Equal(t, "cached", tok)

	// Wiping the store must not affect subsequent reads.
	require.NoError(t, local.Delete())

	tok, err = mgr.Token()
	require.NoError(t, err)
	assert.Equal(t, "cached", tok)
}

func TestTokenConcurrentResolution(t *testing.T) {
	mgr, local, _ := newTestManager()
	require.NoError(t, local.Set("stored"))

	// Concurrent lookups all hit the lazy store-to-memory cache path;
	// run with -race to catch unsynchronized access.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := mgr.Token()
			assert.NoError(t, err)
			assert.Equal(t, "stored", tok)
		}()
	}
	wg.Wait()
}

func TestTokenErrNoToken(t *testing.T) {
	mgr, _, _ := newTestManager()

	_, err := mgr.Token()
	assert.True(t, errors.Is(err, scouterrors.ErrNoToken))
	assert.False(t, mgr.HasToken())
}

func TestParsePlan(t *testing.T) {
	tests := []struct {
		input   string
		want    Plan
		wantErr bool
	}{
		{input: "", want: PlanNone},
		{input: "none", want: PlanNone},
		{input: "session", want: PlanSession},
		{input: "local", want: PlanLocal},
		{input: "disk", wantErr: true},
		{input: "LOCAL", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePlan(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "ParsePlan(%q)", tt.input)
			continue
		}
		require.NoError(t, err, "ParsePlan(%q)", tt.input)
		assert.Equal(t, tt.want, got, "ParsePlan(%q)", tt.input)
	}
}
