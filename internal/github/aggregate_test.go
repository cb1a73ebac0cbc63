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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/sirseerhq/sirseer-scout/internal/token"
)

// newOrgServer builds a client over a server that knows two orgs and
// their repos. Per-path handlers can be overridden to inject failures.
func newOrgServer(t *testing.T, tokens TokenProvider, overrides map[string]http.HandlerFunc) *RESTClient {
	t.Helper()

	orgs := []Organization{
		{ID: 1, Login: "acme"},
		{ID: 2, Login: "initech"},
	}
	orgRepos := map[string][]Repository{
		"acme":    {{ID: 10, Name: "anvil"}, {ID: 11, Name: "rocket"}},
		"initech": {{ID: 20, Name: "tps"}},
	}
	ownRepos := []Repository{{ID: 30, Name: "dotfiles"}}

	mux := http.NewServeMux()
	mux.HandleFunc("/user/orgs", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(orgs)
	})
	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ownRepos)
	})
	mux.HandleFunc("/orgs/acme/repos", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(orgRepos["acme"])
	})
	mux.HandleFunc("/orgs/initech/repos", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(orgRepos["initech"])
	})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := overrides[r.URL.Path]; ok {
			h(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewRESTClient(tokens,
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()))
}

func repoNames(repos []Repository) []string {
	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListAllOrgReposFlattens(t *testing.T) {
	client := newOrgServer(t, staticTokens{tok: "t"}, nil)

	repos, err := client.ListAllOrgRepos(context.Background())
	if err != nil {
		t.Fatalf("ListAllOrgRepos() error = %v", err)
	}

	// Ordering between orgs is unspecified; compare as sets.
	want := []string{"anvil", "rocket", "tps"}
	if got := repoNames(repos); !equalNames(got, want) {
		t.Errorf("ListAllOrgRepos() = %v, want %v", got, want)
	}
}

func TestListAllOrgReposFailsOnOrgListError(t *testing.T) {
	client := newOrgServer(t, staticTokens{tok: "t"}, map[string]http.HandlerFunc{
		"/user/orgs": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		},
	})

	if _, err := client.ListAllOrgRepos(context.Background()); err == nil {
		t.Fatal("ListAllOrgRepos() should fail when the org listing fails")
	}
}

func TestListAllOrgReposAllOrNothing(t *testing.T) {
	client := newOrgServer(t, staticTokens{tok: "t"}, map[string]http.HandlerFunc{
		"/orgs/initech/repos": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		},
	})

	repos, err := client.ListAllOrgRepos(context.Background())
	if err == nil {
		t.Fatal("ListAllOrgRepos() should fail when any org fetch fails")
	}
	if repos != nil {
		t.Errorf("ListAllOrgRepos() returned partial results %v, want none", repos)
	}
}

func TestListAllReposMergesBothBranches(t *testing.T) {
	client := newOrgServer(t, staticTokens{tok: "t"}, nil)

	repos, err := client.ListAllRepos(context.Background())
	if err != nil {
		t.Fatalf("ListAllRepos() error = %v", err)
	}

	want := []string{"anvil", "dotfiles", "rocket", "tps"}
	if got := repoNames(repos); !equalNames(got, want) {
		t.Errorf("ListAllRepos() = %v, want %v", got, want)
	}
}

func TestListAllReposResolvesStoredTokenUnderFanOut(t *testing.T) {
	// Token lives only in a store, so both fan-out goroutines race to
	// resolve it through the manager's lazy cache. Run with -race.
	local := token.NewMemoryStore()
	if err := local.Set("stored"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	mgr := token.NewManager(local, token.NewMemoryStore())

	client := newOrgServer(t, mgr, nil)

	repos, err := client.ListAllRepos(context.Background())
	if err != nil {
		t.Fatalf("ListAllRepos() error = %v", err)
	}

	want := []string{"anvil", "dotfiles", "rocket", "tps"}
	if got := repoNames(repos); !equalNames(got, want) {
		t.Errorf("ListAllRepos() = %v, want %v", got, want)
	}
}

func TestListAllReposPropagatesFailure(t *testing.T) {
	client := newOrgServer(t, staticTokens{tok: "t"}, map[string]http.HandlerFunc{
		"/user/repos": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		},
	})

	repos, err := client.ListAllRepos(context.Background())
	if err == nil {
		t.Fatal("ListAllRepos() must propagate failures, not swallow them")
	}
	if repos != nil {
		t.Errorf("ListAllRepos() returned %v alongside an error", repos)
	}
}
