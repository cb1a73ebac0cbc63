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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-scout/internal/github"
)

func newCatCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <owner>/<repo> <path>",
		Short: "Print a repository file's decoded contents",
		Long: `Fetch a file through the contents endpoint, decode its base64
payload, and write the raw contents to stdout (or --output).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := parseRepository(args[0])
			if err != nil {
				return err
			}

			client, _, err := buildClient(opts)
			if err != nil {
				return err
			}

			var out io.Writer = os.Stdout
			if opts.outputFile != "" {
				file, fErr := os.Create(opts.outputFile)
				if fErr != nil {
					return fmt.Errorf("failed to create output file: %w", fErr)
				}
				defer file.Close()
				out = file
			}

			return runCat(cmd.Context(), client, out, owner, repo, args[1])
		},
	}
}

// runCat executes the cat command against the given client.
func runCat(ctx context.Context, client github.Client, out io.Writer, owner, repo, path string) error {
	content, err := client.GetFile(ctx, owner, repo, path)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(out, content); err != nil {
		return fmt.Errorf("failed to write file contents: %w", err)
	}
	return nil
}
