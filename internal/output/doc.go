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

// Package output provides utilities for writing listing results as NDJSON
// (Newline Delimited JSON) or as a single indented JSON array.
//
// NDJSON is the default: each record is flushed on its own line as soon as
// it is written, which keeps memory flat regardless of result size and
// pipes cleanly into jq and similar tools. The array writer exists for
// consumers that want one well-formed JSON document; it necessarily
// buffers all records until Close.
//
// Example usage:
//
//	w, err := output.NewFileWriter("repos.ndjson")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	for _, repo := range repos {
//	    if err := w.Write(repo); err != nil {
//	        log.Printf("Failed to write record: %v", err)
//	    }
//	}
package output
