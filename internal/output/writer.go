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

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// Writer handles streaming NDJSON output to a file or io.Writer.
// Each record is flushed as soon as it is written.
type Writer struct {
	mu        sync.Mutex
	output    io.Writer
	encoder   *json.Encoder
	count     int
	closeFunc func() error
}

// NewWriter creates a new NDJSON writer that writes to the specified output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		output:  w,
		encoder: json.NewEncoder(w),
	}
}

// NewFileWriter creates a new NDJSON writer that writes to a file.
// The caller must call Close() when done to ensure the file is properly closed.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		output:    file,
		encoder:   json.NewEncoder(file),
		closeFunc: file.Close,
	}, nil
}

// Write writes a single record as NDJSON.
func (w *Writer) Write(record interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying writer if it's a file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}

// ArrayWriter buffers records and writes them as one indented JSON array
// on Close. Unlike Writer it holds every record in memory, so it is meant
// for human-sized listings, not bulk exports.
type ArrayWriter struct {
	mu        sync.Mutex
	output    io.Writer
	records   []interface{}
	closeFunc func() error
}

// NewArrayWriter creates a writer that emits a JSON array on Close.
func NewArrayWriter(w io.Writer) *ArrayWriter {
	return &ArrayWriter{output: w}
}

// NewArrayFileWriter creates an array writer backed by a file.
func NewArrayFileWriter(filename string) (*ArrayWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &ArrayWriter{
		output:    file,
		closeFunc: file.Close,
	}, nil
}

// Write buffers a single record.
func (w *ArrayWriter) Write(record interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.records = append(w.records, record)
	return nil
}

// Close writes the buffered records as an indented JSON array and closes
// the underlying file, if any.
func (w *ArrayWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	records := w.records
	if records == nil {
		// An empty listing still produces a valid document.
		records = []interface{}{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.output.Write(data); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}
