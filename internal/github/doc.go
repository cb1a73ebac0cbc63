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

// Package github provides a thin client for GitHub's REST API. It builds
// token-authenticated URLs, issues GET requests through an injected HTTP
// abstraction, and exposes resource listings (repositories, organizations,
// issues, collaborators, file contents) plus two aggregate operations that
// fan out concurrent requests and merge the results.
//
// The package includes:
//   - A Client interface covering every resource operation
//   - A REST implementation with configurable endpoint and auth style
//   - Mock client for testing
//   - Type definitions for the GitHub resources the client returns
//
// The client deliberately does not retry, inspect HTTP status codes, or
// handle rate limits; transport failures propagate to the caller unchanged.
//
// Basic usage:
//
//	mgr := token.NewDefaultManager()
//	client := github.NewRESTClient(mgr)
//	repos, err := client.ListAllRepos(ctx)
//	if err != nil {
//	    // Handle error
//	}
//	for _, repo := range repos {
//	    // Process repository
//	}
package github
