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

// Package token manages the GitHub access token lifecycle.
//
// A Manager holds the active token in memory and can additionally persist
// it to one of two independent stores: a session-scoped file store that
// lives in the user's temp directory, and a durable local store backed by
// a bbolt database in the user's config directory. Both stores hold the
// token under the fixed key "gh-token".
//
// Resolution order when no in-memory token is set: local store first, then
// session store. The first value found is cached in memory for subsequent
// reads. Each Manager owns its own state, so multiple independent clients
// can coexist in a single process (and in tests).
//
// Example usage:
//
//	mgr := token.NewManager(localStore, sessionStore)
//	if err := mgr.SetToken("ghp_...", token.PlanLocal); err != nil {
//	    // Handle error
//	}
//	tok, err := mgr.Token()
package token
