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
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
	"github.com/sirseerhq/sirseer-scout/pkg/version"
)

func main() {
	rootCmd := newRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	token      string
	outputFile string
	format     string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "sirseer-scout",
		Short: "List GitHub resources and fetch file contents over the REST API",
		Long: `SirSeer Scout is a small tool for exploring GitHub over the REST API.
It lists repositories, organizations, issues, and collaborators for the
authenticated user and can aggregate every repository across all of the
user's organizations in a single call.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(os.Stderr)
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: standard locations)")
	flags.StringVar(&opts.token, "token", "", "GitHub access token (overrides stored tokens and env var)")
	flags.StringVar(&opts.outputFile, "output", "", "Output file path (default: stdout)")
	flags.StringVar(&opts.format, "format", "", "Output format: ndjson or json (default from config)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newReposCommand(opts),
		newOrgsCommand(opts),
		newOrgReposCommand(opts),
		newIssuesCommand(opts),
		newCollaboratorsCommand(opts),
		newCatCommand(opts),
		newTokenCommand(opts),
	)

	return cmd
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, scouterrors.ErrNoToken) ||
		errors.Is(err, scouterrors.ErrInvalidRepo) {
		return 2 // Authentication/usage errors
	}

	return 1 // General error
}
