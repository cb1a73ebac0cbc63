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
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/sirseerhq/sirseer-scout/pkg/version"
)

// maxResponseBytes caps how much of a response body the client will read.
const maxResponseBytes = 10 * 1024 * 1024 // 10MB

// newHTTPClient builds the default HTTP client: pooled transport, a
// User-Agent header, and a response size cap. In header auth mode the
// token is attached as an Authorization bearer header via oauth2; in
// query mode the token travels in the URL and the transport adds nothing.
func newHTTPClient(style AuthStyle, tokens TokenProvider) *http.Client {
	base := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	var rt http.RoundTripper = &userAgentTransport{base: base}

	if style == AuthHeader {
		rt = &oauth2.Transport{
			Source: tokenSource{tokens},
			Base:   rt,
		}
	}

	return &http.Client{Transport: rt}
}

// tokenSource adapts a TokenProvider to oauth2.TokenSource so the token
// is resolved lazily on each request rather than fixed at construction.
type tokenSource struct {
	tokens TokenProvider
}

// Token implements oauth2.TokenSource.
func (s tokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.tokens.Token()
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: tok}, nil
}

// userAgentTransport adds the standard User-Agent header and applies the
// response size cap.
type userAgentTransport struct {
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	req.Header.Set("User-Agent", fmt.Sprintf("sirseer-scout/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      maxResponseBytes,
		}
	}

	return resp, nil
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive
// memory usage on oversized responses.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}
