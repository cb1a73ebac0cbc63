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

import (
	"context"
	"fmt"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
)

// MockClient is a configurable implementation of the Client interface for
// testing. Aggregate operations derive their results from the configured
// per-resource data, mirroring the real client's semantics.
type MockClient struct {
	// Data to return
	Repos         []Repository
	Orgs          []Organization
	OrgRepos      map[string][]Repository
	Issues        []Issue
	Collaborators []User
	Files         map[string]string // keyed by "owner/repo/path"

	// Error to return from every operation
	Err error

	// Behavior flags
	ShouldFailAuth bool

	// Track calls for verification
	CallCount int
	LastOrg   string
	LastOwner string
	LastRepo  string
	LastPath  string
	LastOpts  IssueOptions
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a mock client with empty data.
func NewMockClient() *MockClient {
	return &MockClient{
		OrgRepos: make(map[string][]Repository),
		Files:    make(map[string]string),
	}
}

func (m *MockClient) check(ctx context.Context) error {
	m.CallCount++

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return fmt.Errorf("building request: %w", scouterrors.ErrNoToken)
	}
	return m.Err
}

// ListRepos implements the Client interface.
func (m *MockClient) ListRepos(ctx context.Context) ([]Repository, error) {
	if err := m.check(ctx); err != nil {
		return nil, err
	}
	return m.Repos, nil
}

// ListOrgs implements the Client interface.
func (m *MockClient) ListOrgs(ctx context.Context) ([]Organization, error) {
	if err := m.check(ctx); err != nil {
		return nil, err
	}
	return m.Orgs, nil
}

// ListOrgRepos implements the Client interface.
func (m *MockClient) ListOrgRepos(ctx context.Context, org string) ([]Repository, error) {
	m.LastOrg = org
	if err := m.check(ctx); err != nil {
		return nil, err
	}
	return m.OrgRepos[org], nil
}

// ListCollaborators implements the Client interface.
func (m *MockClient) ListCollaborators(ctx context.Context, owner, repo string) ([]User, error) {
	m.LastOwner, m.LastRepo = owner, repo
	if err := m.check(ctx); err != nil {
		return nil, err
	}
	return m.Collaborators, nil
}

// ListIssues implements the Client interface.
func (m *MockClient) ListIssues(ctx context.Context, owner, repo string, opts IssueOptions) ([]Issue, error) {
	m.LastOwner, m.LastRepo, m.LastOpts = owner, repo, opts
	if err := m.check(ctx); err != nil {
		return nil, err
	}
	return m.Issues, nil
}

// GetFile implements the Client interface.
func (m *MockClient) GetFile(ctx context.Context, owner, repo, path string) (string, error) {
	m.LastOwner, m.LastRepo, m.LastPath = owner, repo, path
	if err := m.check(ctx); err != nil {
		return "", err
	}

	content, ok := m.Files[owner+"/"+repo+"/"+path]
	if !ok {
		return "", fmt.Errorf("no mock file configured for %s/%s/%s", owner, repo, path)
	}
	return content, nil
}

// ListAllOrgRepos implements the Client interface.
func (m *MockClient) ListAllOrgRepos(ctx context.Context) ([]Repository, error) {
	if err := m.check(ctx); err != nil {
		return nil, err
	}

	var all []Repository
	for _, org := range m.Orgs {
		all = append(all, m.OrgRepos[org.Login]...)
	}
	return all, nil
}

// ListAllRepos implements the Client interface.
func (m *MockClient) ListAllRepos(ctx context.Context) ([]Repository, error) {
	orgRepos, err := m.ListAllOrgRepos(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]Repository, 0, len(m.Repos)+len(orgRepos))
	all = append(all, m.Repos...)
	all = append(all, orgRepos...)
	return all, nil
}
