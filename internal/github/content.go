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
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeContent recovers the raw file from a contents-endpoint response.
//
// GitHub wraps the base64 payload across newline-separated lines. Each
// line is a self-contained base64 unit and must be decoded independently;
// decoding the whole blob at once fails on the padding GitHub emits at
// line boundaries. The decoded chunks are concatenated in order.
func DecodeContent(content FileContent) (string, error) {
	var b strings.Builder

	for i, line := range strings.Split(content.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		raw, err := base64.StdEncoding.DecodeString(line)
		if err != nil {
			return "", fmt.Errorf("failed to decode content line %d of %s: %w", i+1, content.Path, err)
		}
		b.Write(raw)
	}

	return b.String(), nil
}
