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
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// defaultAPIEndpoint is the public GitHub REST API host.
const defaultAPIEndpoint = "https://api.github.com"

// Doer issues HTTP requests. http.Client implements Doer, but simpler
// implementations can be injected in tests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenProvider resolves the access token used on every request.
// *token.Manager satisfies this interface.
type TokenProvider interface {
	Token() (string, error)
}

// AuthStyle selects how the token is attached to requests.
type AuthStyle int

// Supported auth styles.
const (
	// AuthQuery sends the token as the access_token query parameter.
	AuthQuery AuthStyle = iota

	// AuthHeader sends the token as an Authorization bearer header.
	AuthHeader
)

// ParseAuthStyle converts a config string into an AuthStyle.
func ParseAuthStyle(s string) (AuthStyle, error) {
	switch s {
	case "", "query":
		return AuthQuery, nil
	case "header":
		return AuthHeader, nil
	default:
		return AuthQuery, fmt.Errorf("unknown auth style %q (expected query or header)", s)
	}
}

// RESTClient implements the Client interface against GitHub's REST API.
// All resource operations funnel through a single generic GET helper.
type RESTClient struct {
	base       string
	tokens     TokenProvider
	httpClient Doer
	style      AuthStyle
	log        logrus.FieldLogger
}

var _ Client = (*RESTClient)(nil)

// Option configures a RESTClient.
type Option func(*RESTClient)

// WithBaseURL overrides the API endpoint, e.g. for GitHub Enterprise or a
// test server.
func WithBaseURL(endpoint string) Option {
	return func(c *RESTClient) {
		c.base = strings.TrimSuffix(endpoint, "/")
	}
}

// WithAuthStyle selects query-parameter or header authentication.
func WithAuthStyle(style AuthStyle) Option {
	return func(c *RESTClient) {
		c.style = style
	}
}

// WithHTTPClient injects the HTTP transport. The client never retries or
// interprets what the transport returns, so wrapping behavior belongs in
// the injected implementation.
func WithHTTPClient(doer Doer) Option {
	return func(c *RESTClient) {
		c.httpClient = doer
	}
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *RESTClient) {
		c.log = log
	}
}

// NewRESTClient creates a REST client authenticated by the given token
// provider. By default it talks to https://api.github.com with the token
// in the access_token query parameter.
func NewRESTClient(tokens TokenProvider, opts ...Option) *RESTClient {
	c := &RESTClient{
		base:   defaultAPIEndpoint,
		tokens: tokens,
		style:  AuthQuery,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		c.log = silent
	}
	if c.httpClient == nil {
		c.httpClient = newHTTPClient(c.style, c.tokens)
	}

	return c
}

// buildURL assembles a fully qualified API URL from path segments and
// query parameters. The token must be resolvable or the call fails with
// ErrNoToken before any network I/O happens.
//
// In query auth mode the token is merged in as a default access_token
// parameter; caller-supplied parameters win on key collision. Values are
// serialized as key=value pairs joined by & without URL-encoding — a
// known limitation kept for request compatibility, which also lets file
// paths with slashes pass through contents URLs untouched.
func (c *RESTClient) buildURL(segments []string, query map[string]string) (string, error) {
	tok, err := c.tokens.Token()
	if err != nil {
		return "", err
	}

	merged := make(map[string]string, len(query)+1)
	if c.style == AuthQuery {
		merged["access_token"] = tok
	}
	for k, v := range query {
		merged[k] = v
	}

	url := c.base + "/" + strings.Join(segments, "/")
	if len(merged) == 0 {
		return url, nil
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+merged[k])
	}

	return url + "?" + strings.Join(pairs, "&"), nil
}

// get builds the URL, issues a GET through the injected transport, and
// decodes the JSON body into out. Transport failures propagate unchanged:
// no retry, no status-code interpretation.
func (c *RESTClient) get(ctx context.Context, segments []string, query map[string]string, out interface{}) error {
	url, err := c.buildURL(segments, query)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	// Log the path, never the URL: in query mode the URL carries the token.
	path := strings.Join(segments, "/")
	c.log.WithField("path", path).Debug("github api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"path":   path,
		"status": resp.StatusCode,
	}).Debug("github api response")

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// ListRepos retrieves the authenticated user's repositories.
func (c *RESTClient) ListRepos(ctx context.Context) ([]Repository, error) {
	var repos []Repository
	if err := c.get(ctx, []string{"user", "repos"}, nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// ListOrgs retrieves the authenticated user's organizations.
func (c *RESTClient) ListOrgs(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	if err := c.get(ctx, []string{"user", "orgs"}, nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// ListOrgRepos retrieves the repositories of a single organization.
func (c *RESTClient) ListOrgRepos(ctx context.Context, org string) ([]Repository, error) {
	var repos []Repository
	if err := c.get(ctx, []string{"orgs", org, "repos"}, nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// ListCollaborators retrieves the collaborators of a repository.
func (c *RESTClient) ListCollaborators(ctx context.Context, owner, repo string) ([]User, error) {
	var users []User
	if err := c.get(ctx, []string{"repos", owner, repo, "collaborators"}, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListIssues retrieves a repository's issues. Labels and state filters
// from opts become query parameters; pagination stays on the API's first
// page unless opts asks otherwise.
func (c *RESTClient) ListIssues(ctx context.Context, owner, repo string, opts IssueOptions) ([]Issue, error) {
	query := make(map[string]string)
	if len(opts.Labels) > 0 {
		query["labels"] = strings.Join(opts.Labels, ",")
	}
	if opts.State != "" {
		query["state"] = opts.State
	}
	if opts.Page > 0 {
		query["page"] = strconv.Itoa(opts.Page)
	}
	if opts.PerPage > 0 {
		query["per_page"] = strconv.Itoa(opts.PerPage)
	}

	var issues []Issue
	if err := c.get(ctx, []string{"repos", owner, repo, "issues"}, query, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// GetFile fetches a file via the contents endpoint and returns its
// decoded contents. The path may contain slashes; it is appended to the
// URL as-is.
func (c *RESTClient) GetFile(ctx context.Context, owner, repo, path string) (string, error) {
	var content FileContent
	if err := c.get(ctx, []string{"repos", owner, repo, "contents", path}, nil, &content); err != nil {
		return "", err
	}
	return DecodeContent(content)
}
