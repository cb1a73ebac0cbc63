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

// Package main implements the sirseer-scout command-line interface.
// This tool lists GitHub resources (repositories, organizations, issues,
// collaborators) and fetches file contents over the REST API, outputting
// records as NDJSON or a JSON array.
//
// The CLI supports:
//   - Listing the authenticated user's repositories and organizations
//   - Aggregating every repository across all organizations (--all)
//   - Fetching decoded file contents from any repository
//   - Token storage management (memory, session, or durable local store)
//   - Customizable output destinations (stdout or file)
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	sirseer-scout repos [--all]
//	sirseer-scout issues <owner>/<repo> [--labels bug,p1]
//	sirseer-scout cat <owner>/<repo> <path>
//	sirseer-scout token set <token> --store local
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	sirseer-scout repos --all --output repos.ndjson
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Authentication or usage error
package main
