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

	"github.com/sirseerhq/sirseer-scout/internal/github"
	"github.com/sirseerhq/sirseer-scout/internal/output"
)

func newReposCommand(opts *globalOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List the authenticated user's repositories",
		Long: `List the authenticated user's repositories as NDJSON records.

With --all, every repository of every organization the user belongs to is
fetched concurrently and merged into the listing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := buildClient(opts)
			if err != nil {
				return err
			}
			writer, err := newOutputWriter(opts, cfg)
			if err != nil {
				return err
			}
			defer writer.Close()

			return runRepos(cmd.Context(), client, writer, all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include repositories from all organizations")

	return cmd
}

func newOrgsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "orgs",
		Short: "List the authenticated user's organizations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := buildClient(opts)
			if err != nil {
				return err
			}
			writer, err := newOutputWriter(opts, cfg)
			if err != nil {
				return err
			}
			defer writer.Close()

			return runOrgs(cmd.Context(), client, writer)
		},
	}
}

func newOrgReposCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "org-repos <org>",
		Short: "List the repositories of a single organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := buildClient(opts)
			if err != nil {
				return err
			}
			writer, err := newOutputWriter(opts, cfg)
			if err != nil {
				return err
			}
			defer writer.Close()

			return runOrgRepos(cmd.Context(), client, writer, args[0])
		},
	}
}

// runRepos executes the repos command against the given client.
func runRepos(ctx context.Context, client github.Client, writer output.OutputWriter, all bool) error {
	var (
		repos []github.Repository
		err   error
	)
	if all {
		repos, err = client.ListAllRepos(ctx)
	} else {
		repos, err = client.ListRepos(ctx)
	}
	if err != nil {
		return err
	}

	return writeRepos(writer, repos)
}

// runOrgs executes the orgs command against the given client.
func runOrgs(ctx context.Context, client github.Client, writer output.OutputWriter) error {
	orgs, err := client.ListOrgs(ctx)
	if err != nil {
		return err
	}

	for _, org := range orgs {
		if err := writer.Write(org); err != nil {
			return fmt.Errorf("failed to write organization: %w", err)
		}
	}
	return nil
}

// runOrgRepos executes the org-repos command against the given client.
func runOrgRepos(ctx context.Context, client github.Client, writer output.OutputWriter, org string) error {
	repos, err := client.ListOrgRepos(ctx, org)
	if err != nil {
		return err
	}

	return writeRepos(writer, repos)
}

func writeRepos(writer output.OutputWriter, repos []github.Repository) error {
	for _, repo := range repos {
		if err := writer.Write(repo); err != nil {
			return fmt.Errorf("failed to write repository: %w", err)
		}
	}
	return nil
}
