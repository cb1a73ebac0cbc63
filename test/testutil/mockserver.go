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

// Package testutil provides common test helpers for sirseer-scout
package testutil

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Fixtures holds the data a FixtureServer serves. Map keys for OrgRepos
// are org logins; keys for Files are "owner/repo/path".
type Fixtures struct {
	Repos         []map[string]interface{}
	Orgs          []map[string]interface{}
	OrgRepos      map[string][]map[string]interface{}
	Issues        map[string][]map[string]interface{} // keyed by "owner/repo"
	Collaborators map[string][]map[string]interface{} // keyed by "owner/repo"
	Files         map[string]string                   // raw contents, encoded on the fly
}

// FixtureServer is an httptest server that answers the subset of the
// GitHub REST API the client uses, from in-memory fixtures.
type FixtureServer struct {
	*httptest.Server
	Fixtures Fixtures

	mu       sync.Mutex
	requests []string
}

// NewFixtureServer starts a fixture server. The server is shut down when
// the test finishes.
func NewFixtureServer(t *testing.T, fixtures Fixtures) *FixtureServer {
	t.Helper()

	fs := &FixtureServer{Fixtures: fixtures}
	fs.Server = httptest.NewServer(http.HandlerFunc(fs.handle))
	t.Cleanup(fs.Server.Close)
	return fs
}

// Requests returns the request URIs seen so far, in order.
func (fs *FixtureServer) Requests() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]string(nil), fs.requests...)
}

func (fs *FixtureServer) handle(w http.ResponseWriter, r *http.Request) {
	fs.mu.Lock()
	fs.requests = append(fs.requests, r.URL.RequestURI())
	fs.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/")
	parts := strings.Split(path, "/")

	switch {
	case path == "user/repos":
		writeJSON(w, fs.Fixtures.Repos)
	case path == "user/orgs":
		writeJSON(w, fs.Fixtures.Orgs)
	case len(parts) == 3 && parts[0] == "orgs" && parts[2] == "repos":
		writeJSON(w, fs.Fixtures.OrgRepos[parts[1]])
	case len(parts) == 4 && parts[0] == "repos" && parts[3] == "issues":
		writeJSON(w, fs.Fixtures.Issues[parts[1]+"/"+parts[2]])
	case len(parts) == 4 && parts[0] == "repos" && parts[3] == "collaborators":
		writeJSON(w, fs.Fixtures.Collaborators[parts[1]+"/"+parts[2]])
	case len(parts) >= 5 && parts[0] == "repos" && parts[3] == "contents":
		key := parts[1] + "/" + parts[2] + "/" + strings.Join(parts[4:], "/")
		content, ok := fs.Fixtures.Files[key]
		if !ok {
			writeError(w, http.StatusNotFound, "Not Found")
			return
		}
		writeJSON(w, map[string]interface{}{
			"name":     parts[len(parts)-1],
			"path":     strings.Join(parts[4:], "/"),
			"content":  wrapBase64(content),
			"encoding": "base64",
			"size":     len(content),
		})
	default:
		writeError(w, http.StatusNotFound, fmt.Sprintf("no fixture for %s", path))
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if v == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// wrapBase64 encodes content the way the contents endpoint does: base64
// broken into newline-terminated lines.
func wrapBase64(content string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(content))

	var b strings.Builder
	for len(encoded) > 60 {
		b.WriteString(encoded[:60])
		b.WriteString("\n")
		encoded = encoded[60:]
	}
	b.WriteString(encoded)
	b.WriteString("\n")
	return b.String()
}

// NewErrorServer creates a mock server that always returns the specified
// status code.
func NewErrorServer(t *testing.T, statusCode int) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, statusCode, http.StatusText(statusCode))
	}))
	t.Cleanup(server.Close)
	return server
}
