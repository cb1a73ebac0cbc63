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

	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-scout/internal/config"
	"github.com/sirseerhq/sirseer-scout/internal/github"
	"github.com/sirseerhq/sirseer-scout/internal/output"
)

func newIssuesCommand(opts *globalOptions) *cobra.Command {
	var (
		labels []string
		state  string
	)

	cmd := &cobra.Command{
		Use:   "issues <owner>/<repo>",
		Short: "List a repository's issues",
		Long: `List a repository's issues as NDJSON records.

Only the API's first page is fetched. Use --labels to filter by one or
more labels and --state to select open, closed, or all issues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := parseRepository(args[0])
			if err != nil {
				return err
			}

			client, cfg, err := buildClient(opts)
			if err != nil {
				return err
			}
			writer, err := newOutputWriter(opts, cfg)
			if err != nil {
				return err
			}
			defer writer.Close()

			return runIssues(cmd.Context(), client, writer, owner, repo,
				issueOptions(cfg, labels, state))
		},
	}

	cmd.Flags().StringSliceVar(&labels, "labels", nil, "Filter issues by labels (comma separated)")
	cmd.Flags().StringVar(&state, "state", "", "Filter issues by state: open, closed, or all")

	return cmd
}

func newCollaboratorsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "collaborators <owner>/<repo>",
		Short: "List a repository's collaborators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := parseRepository(args[0])
			if err != nil {
				return err
			}

			client, cfg, err := buildClient(opts)
			if err != nil {
				return err
			}
			writer, err := newOutputWriter(opts, cfg)
			if err != nil {
				return err
			}
			defer writer.Close()

			return runCollaborators(cmd.Context(), client, writer, owner, repo)
		},
	}
}

// issueOptions combines the issue flags with config defaults. The
// configured page size becomes the per_page parameter; zero leaves the
// API's default in place.
func issueOptions(cfg *config.Config, labels []string, state string) github.IssueOptions {
	opts := github.IssueOptions{
		Labels: labels,
		State:  state,
	}
	if cfg.Defaults.PageSize > 0 {
		opts.PerPage = cfg.Defaults.PageSize
	}
	return opts
}

// runIssues executes the issues command against the given client.
func runIssues(ctx context.Context, client github.Client, writer output.OutputWriter, owner, repo string, opts github.IssueOptions) error {
	issues, err := client.ListIssues(ctx, owner, repo, opts)
	if err != nil {
		return err
	}

	for _, issue := range issues {
		if err := writer.Write(issue); err != nil {
			return fmt.Errorf("failed to write issue: %w", err)
		}
	}
	return nil
}

// runCollaborators executes the collaborators command against the given client.
func runCollaborators(ctx context.Context, client github.Client, writer output.OutputWriter, owner, repo string) error {
	users, err := client.ListCollaborators(ctx, owner, repo)
	if err != nil {
		return err
	}

	for _, user := range users {
		if err := writer.Write(user); err != nil {
			return fmt.Errorf("failed to write collaborator: %w", err)
		}
	}
	return nil
}
