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

import "fmt"

// Key is the fixed key under which the token is persisted in every store.
const Key = "gh-token"

// Store is a minimal key-value backend holding at most one token.
// Implementations must treat an absent token as ("", nil), not an error.
type Store interface {
	// Get returns the stored token, or an empty string if none is stored.
	Get() (string, error)

	// Set persists the given token, replacing any previous value.
	Set(value string) error

	// Delete removes the stored token. Deleting an absent token is not
	// an error.
	Delete() error
}

// Plan selects where, beyond process memory, a token is persisted.
type Plan string

// Storage plans for SetToken.
const (
	// PlanNone keeps the token in memory only.
	PlanNone Plan = "none"

	// PlanSession persists the token for the current login session.
	PlanSession Plan = "session"

	// PlanLocal persists the token durably across sessions.
	PlanLocal Plan = "local"
)

// ParsePlan converts a user-supplied string into a Plan. An empty string
// maps to PlanNone.
func ParsePlan(s string) (Plan, error) {
	switch Plan(s) {
	case "", PlanNone:
		return PlanNone, nil
	case PlanSession:
		return PlanSession, nil
	case PlanLocal:
		return PlanLocal, nil
	default:
		return PlanNone, fmt.Errorf("unknown storage plan %q (expected none, session, or local)", s)
	}
}
