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
	"sync"
)

// orgReposResult carries one organization's repositories out of the fan-out.
type orgReposResult struct {
	org   string
	repos []Repository
	err   error
}

// ListAllOrgRepos fetches the organization list, then fetches every
// organization's repositories concurrently and flattens the per-org lists
// into one. The aggregate is all-or-nothing: if the organization listing
// fails, or any single org-repo fetch fails, the whole call fails and no
// partial list is returned. Result ordering between organizations is
// unspecified.
func (c *RESTClient) ListAllOrgRepos(ctx context.Context) ([]Repository, error) {
	orgs, err := c.ListOrgs(ctx)
	if err != nil {
		return nil, err
	}

	results := make(chan orgReposResult, len(orgs))
	var wg sync.WaitGroup

	for _, org := range orgs {
		wg.Add(1)
		go func(login string) {
			defer wg.Done()
			repos, err := c.ListOrgRepos(ctx, login)
			results <- orgReposResult{org: login, repos: repos, err: err}
		}(org.Login)
	}

	wg.Wait()
	close(results)

	var all []Repository
	for res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("failed to list repos for org %q: %w", res.org, res.err)
		}
		all = append(all, res.repos...)
	}

	return all, nil
}

// ListAllRepos concurrently fetches the user's own repositories and every
// organization repository, then flattens both lists into one. The first
// failure from either branch fails the aggregate; it is logged at debug
// level and returned, never swallowed.
func (c *RESTClient) ListAllRepos(ctx context.Context) ([]Repository, error) {
	var (
		wg       sync.WaitGroup
		own      []Repository
		ownErr   error
		orgRepos []Repository
		orgErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		own, ownErr = c.ListRepos(ctx)
	}()
	go func() {
		defer wg.Done()
		orgRepos, orgErr = c.ListAllOrgRepos(ctx)
	}()
	wg.Wait()

	for _, err := range []error{ownErr, orgErr} {
		if err != nil {
			c.log.WithError(err).Debug("aggregate repo listing failed")
			return nil, err
		}
	}

	all := make([]Repository, 0, len(own)+len(orgRepos))
	all = append(all, own...)
	all = append(all, orgRepos...)
	return all, nil
}
