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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrNoToken indicates that no GitHub token could be resolved from
	// memory, the local store, or the session store. Requests cannot be
	// built without a token, so this is surfaced before any network I/O.
	// Maps to exit code 2.
	ErrNoToken = errors.New("no github token available")

	// ErrInvalidRepo indicates a repository argument was not supplied in
	// <owner>/<repo> format. Maps to exit code 2.
	ErrInvalidRepo = errors.New("invalid repository format")
)
