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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
)

// staticTokens is a TokenProvider returning a fixed token or error.
type staticTokens struct {
	tok string
	err error
}

func (s staticTokens) Token() (string, error) {
	return s.tok, s.err
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		style    AuthStyle
		segments []string
		query    map[string]string
		expected string
	}{
		{
			name:     "issues path with default token param",
			style:    AuthQuery,
			segments: []string{"repos", "o", "r", "issues"},
			query:    map[string]string{},
			expected: "https://api.github.com/repos/o/r/issues?access_token=t",
		},
		{
			name:     "nil query behaves like empty",
			style:    AuthQuery,
			segments: []string{"user", "repos"},
			expected: "https://api.github.com/user/repos?access_token=t",
		},
		{
			name:     "caller params are merged and sorted",
			style:    AuthQuery,
			segments: []string{"repos", "o", "r", "issues"},
			query:    map[string]string{"labels": "bug,help wanted"},
			expected: "https://api.github.com/repos/o/r/issues?access_token=t&labels=bug,help wanted",
		},
		{
			name:     "caller wins on access_token collision",
			style:    AuthQuery,
			segments: []string{"user", "orgs"},
			query:    map[string]string{"access_token": "override"},
			expected: "https://api.github.com/user/orgs?access_token=override",
		},
		{
			name:     "file path segment passes through unencoded",
			style:    AuthQuery,
			segments: []string{"repos", "o", "r", "contents", "docs/guide/intro.md"},
			expected: "https://api.github.com/repos/o/r/contents/docs/guide/intro.md?access_token=t",
		},
		{
			name:     "header auth omits the token param",
			style:    AuthHeader,
			segments: []string{"user", "repos"},
			expected: "https://api.github.com/user/repos",
		},
		{
			name:     "header auth keeps caller params",
			style:    AuthHeader,
			segments: []string{"repos", "o", "r", "issues"},
			query:    map[string]string{"state": "open"},
			expected: "https://api.github.com/repos/o/r/issues?state=open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewRESTClient(staticTokens{tok: "t"}, WithAuthStyle(tt.style))

			url, err := client.buildURL(tt.segments, tt.query)
			if err != nil {
				t.Fatalf("buildURL() error = %v", err)
			}
			if url != tt.expected {
				t.Errorf("buildURL() = %q, want %q", url, tt.expected)
			}
		})
	}
}

func TestBuildURLNoToken(t *testing.T) {
	client := NewRESTClient(staticTokens{err: scouterrors.ErrNoToken})

	// Token resolution must fail before any I/O, in both auth styles.
	for _, style := range []AuthStyle{AuthQuery, AuthHeader} {
		client.style = style
		_, err := client.buildURL([]string{"user", "repos"}, nil)
		if !errors.Is(err, scouterrors.ErrNoToken) {
			t.Errorf("style %v: buildURL() error = %v, want ErrNoToken", style, err)
		}
	}
}

func TestBuildURLCustomEndpoint(t *testing.T) {
	client := NewRESTClient(staticTokens{tok: "t"},
		WithBaseURL("https://ghe.internal/api/v3/"))

	url, err := client.buildURL([]string{"user", "orgs"}, nil)
	if err != nil {
		t.Fatalf("buildURL() error = %v", err)
	}

	want := "https://ghe.internal/api/v3/user/orgs?access_token=t"
	if url != want {
		t.Errorf("buildURL() = %q, want %q", url, want)
	}
}

// newTestClient returns a client pointed at a test server that records
// every request path+query it receives.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*RESTClient, *[]string) {
	t.Helper()

	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.RequestURI())
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewRESTClient(staticTokens{tok: "secret"},
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()))
	return client, &requests
}

func TestListIssuesRequestShape(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	issues, err := client.ListIssues(context.Background(), "dude", "where", IssueOptions{})
	if err != nil {
		t.Fatalf("ListIssues() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("ListIssues() = %v, want empty list", issues)
	}

	if len(*requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(*requests))
	}
	want := "/repos/dude/where/issues?access_token=secret"
	if (*requests)[0] != want {
		t.Errorf("request URI = %q, want %q", (*requests)[0], want)
	}
}

func TestListIssuesLabelsFilter(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"number": 7, "title": "crash on start", "state": "open"}]`))
	})

	issues, err := client.ListIssues(context.Background(), "dude", "where", IssueOptions{
		Labels: []string{"bug", "p1"},
		State:  "open",
	})
	if err != nil {
		t.Fatalf("ListIssues() error = %v", err)
	}
	if len(issues) != 1 || issues[0].Number != 7 {
		t.Errorf("ListIssues() = %+v, want single issue #7", issues)
	}

	want := "/repos/dude/where/issues?access_token=secret&labels=bug,p1&state=open"
	if (*requests)[0] != want {
		t.Errorf("request URI = %q, want %q", (*requests)[0], want)
	}
}

func TestListReposDecodesBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]Repository{
			{ID: 1, Name: "alpha", FullName: "dude/alpha"},
			{ID: 2, Name: "beta", FullName: "dude/beta", Private: true},
		})
	})

	repos, err := client.ListRepos(context.Background())
	if err != nil {
		t.Fatalf("ListRepos() error = %v", err)
	}
	if len(repos) != 2 {
		t.Fatalf("ListRepos() returned %d repos, want 2", len(repos))
	}
	if repos[1].Name != "beta" || !repos[1].Private {
		t.Errorf("ListRepos()[1] = %+v, want private repo beta", repos[1])
	}
}

func TestListCollaborators(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "login": "alice"}, {"id": 2, "login": "bob"}]`))
	})

	users, err := client.ListCollaborators(context.Background(), "dude", "where")
	if err != nil {
		t.Fatalf("ListCollaborators() error = %v", err)
	}
	if len(users) != 2 || users[0].Login != "alice" {
		t.Errorf("ListCollaborators() = %+v, want alice and bob", users)
	}

	want := "/repos/dude/where/collaborators?access_token=secret"
	if (*requests)[0] != want {
		t.Errorf("request URI = %q, want %q", (*requests)[0], want)
	}
}

func TestGetFile(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(FileContent{
			Name:     "file.txt",
			Path:     "file.txt",
			Encoding: "base64",
			Content:  "aGVsbG8gd29ybGQ=",
		})
	})

	content, err := client.GetFile(context.Background(), "dude", "where", "file.txt")
	if err != nil {
		t.Fatalf("GetFile() error = %v", err)
	}
	if content != "hello world" {
		t.Errorf("GetFile() = %q, want %q", content, "hello world")
	}

	want := "/repos/dude/where/contents/file.txt?access_token=secret"
	if (*requests)[0] != want {
		t.Errorf("request URI = %q, want %q", (*requests)[0], want)
	}
}

func TestGetReturnsErrNoTokenBeforeIO(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewRESTClient(staticTokens{err: scouterrors.ErrNoToken},
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()))

	_, err := client.ListRepos(context.Background())
	if !errors.Is(err, scouterrors.ErrNoToken) {
		t.Errorf("ListRepos() error = %v, want ErrNoToken", err)
	}
	if called {
		t.Error("no request should be issued when the token is unresolvable")
	}
}

func TestTransportErrorsPropagateUnchanged(t *testing.T) {
	transportErr := errors.New("connection reset by peer")
	client := NewRESTClient(staticTokens{tok: "t"},
		WithHTTPClient(failingDoer{err: transportErr}))

	_, err := client.ListOrgs(context.Background())
	if !errors.Is(err, transportErr) {
		t.Errorf("ListOrgs() error = %v, want the transport error unchanged", err)
	}
}

// failingDoer is a Doer that always fails.
type failingDoer struct {
	err error
}

func (d failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, d.err
}
