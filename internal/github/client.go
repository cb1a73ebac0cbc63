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

package github

import "context"

// Client defines the interface for interacting with GitHub's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// ListRepos retrieves the authenticated user's repositories.
	ListRepos(ctx context.Context) ([]Repository, error)

	// ListOrgs retrieves the authenticated user's organizations.
	ListOrgs(ctx context.Context) ([]Organization, error)

	// ListOrgRepos retrieves the repositories of a single organization.
	ListOrgRepos(ctx context.Context, org string) ([]Repository, error)

	// ListCollaborators retrieves the collaborators of a repository.
	ListCollaborators(ctx context.Context, owner, repo string) ([]User, error)

	// ListIssues retrieves a repository's issues, optionally filtered by
	// labels and state via opts.
	ListIssues(ctx context.Context, owner, repo string, opts IssueOptions) ([]Issue, error)

	// GetFile fetches a file through the contents endpoint and returns
	// its decoded contents.
	GetFile(ctx context.Context, owner, repo, path string) (string, error)

	// ListAllOrgRepos fetches the organization list, then fetches every
	// organization's repositories concurrently and returns the flattened
	// result. Any failure fails the whole aggregate; there are no
	// partial results.
	ListAllOrgRepos(ctx context.Context) ([]Repository, error)

	// ListAllRepos concurrently combines ListRepos and ListAllOrgRepos
	// into a single flattened list. The first failure from either branch
	// fails the aggregate.
	ListAllRepos(ctx context.Context) ([]Repository, error)
}
