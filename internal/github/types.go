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

import "time"

// Repository represents a GitHub repository. Responses carry many more
// fields; only those the CLI prints are decoded to keep payload handling
// cheap.
type Repository struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Owner         User   `json:"owner"`
	Private       bool   `json:"private"`
	Fork          bool   `json:"fork"`
	Description   string `json:"description,omitempty"`
	Language      string `json:"language,omitempty"`
	DefaultBranch string `json:"default_branch,omitempty"`
	HTMLURL       string `json:"html_url,omitempty"`
	CloneURL      string `json:"clone_url,omitempty"`
}

// Organization represents a GitHub organization membership entry.
type Organization struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// User represents a GitHub account, either a repository owner or a
// collaborator.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Type  string `json:"type,omitempty"`
}

// Label represents an issue label.
type Label struct {
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// Issue represents a GitHub issue with essential metadata.
type Issue struct {
	ID        int64     `json:"id"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	Body      string    `json:"body,omitempty"`
	User      User      `json:"user"`
	Labels    []Label   `json:"labels,omitempty"`
	Comments  int       `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	HTMLURL   string    `json:"html_url,omitempty"`
}

// FileContent is the response of the repository contents endpoint. The
// Content field holds base64 text that GitHub wraps across multiple lines;
// use DecodeContent to recover the raw file.
type FileContent struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	SHA      string `json:"sha"`
	Size     int    `json:"size"`
	Type     string `json:"type"`
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
}

// ListOptions carries pagination parameters for list endpoints. Zero
// values mean "let the API decide": the client reads only the first page
// by default, so callers that need deeper pages must ask for them
// explicitly.
type ListOptions struct {
	Page    int
	PerPage int
}

// IssueOptions configures ListIssues. Labels are joined with commas into
// a single filter parameter, matching the API's syntax.
type IssueOptions struct {
	Labels []string
	State  string
	ListOptions
}
