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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-scout/internal/token"
)

func newTokenCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored GitHub access token",
	}

	cmd.AddCommand(
		newTokenSetCommand(opts),
		newTokenClearCommand(opts),
		newTokenStatusCommand(opts),
	)

	return cmd
}

func newTokenSetCommand(opts *globalOptions) *cobra.Command {
	var store string

	cmd := &cobra.Command{
		Use:   "set <token>",
		Short: "Store a GitHub access token",
		Long: `Store a GitHub access token for later runs.

The --store flag selects where the token is persisted: "session" keeps it
for the current login session, "local" keeps it durably across sessions.
Without --store the token is not persisted, which is only useful for
verifying that a value is accepted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := token.ParsePlan(store)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			mgr := newTokenManager(cfg)
			if err := mgr.SetToken(args[0], plan); err != nil {
				return err
			}

			if plan != token.PlanNone {
				fmt.Fprintf(cmd.OutOrStdout(), "Token stored in %s store\n", plan)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&store, "store", "", "Where to persist the token: local or session")

	return cmd
}

func newTokenClearCommand(opts *globalOptions) *cobra.Command {
	var store string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored GitHub access tokens",
		Long: `Remove the token from persistent storage.

With --store only the named store is cleared; without it both the local
and the session store are cleared.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			mgr := newTokenManager(cfg)

			plans := []token.Plan{token.PlanLocal, token.PlanSession}
			if store != "" {
				plan, pErr := token.ParsePlan(store)
				if pErr != nil {
					return pErr
				}
				if plan == token.PlanNone {
					return fmt.Errorf("nothing to clear for storage plan %q", store)
				}
				plans = []token.Plan{plan}
			}

			for _, plan := range plans {
				if err := mgr.SetToken("", plan); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s store\n", plan)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&store, "store", "", "Which store to clear: local or session (default: both)")

	return cmd
}

func newTokenStatusCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where a GitHub access token is available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			localPath := cfg.Token.LocalDB
			if localPath == "" {
				localPath = token.DefaultLocalDB()
			}
			sessionPath := cfg.Token.SessionFile
			if sessionPath == "" {
				sessionPath = token.DefaultSessionFile()
			}

			printTokenStatus(cmd.OutOrStdout(),
				token.NewBoltStore(localPath),
				token.NewFileStore(sessionPath))
			return nil
		},
	}
}

// printTokenStatus reports, per store, whether a token is present. Token
// values are never printed.
func printTokenStatus(out io.Writer, local, session token.Store) {
	report := func(name string, store token.Store) {
		value, err := store.Get()
		switch {
		case err != nil:
			fmt.Fprintf(out, "%s store: unreadable (%v)\n", name, err)
		case value == "":
			fmt.Fprintf(out, "%s store: no token\n", name)
		default:
			fmt.Fprintf(out, "%s store: token present\n", name)
		}
	}

	report("local", local)
	report("session", session)
}
