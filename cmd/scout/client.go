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
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sirseerhq/sirseer-scout/internal/config"
	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
	"github.com/sirseerhq/sirseer-scout/internal/github"
	"github.com/sirseerhq/sirseer-scout/internal/output"
	"github.com/sirseerhq/sirseer-scout/internal/token"
)

// loadConfig loads and validates the configuration for a command run.
func loadConfig(opts *globalOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newTokenManager builds the token manager over the configured stores,
// falling back to the standard on-disk locations.
func newTokenManager(cfg *config.Config) *token.Manager {
	localPath := cfg.Token.LocalDB
	if localPath == "" {
		localPath = token.DefaultLocalDB()
	}
	sessionPath := cfg.Token.SessionFile
	if sessionPath == "" {
		sessionPath = token.DefaultSessionFile()
	}
	return token.NewManager(token.NewBoltStore(localPath), token.NewFileStore(sessionPath))
}

// buildClient assembles the GitHub client for a command run. Token
// precedence: --token flag, then the configured environment variable,
// then whatever the token stores resolve.
func buildClient(opts *globalOptions) (github.Client, *config.Config, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	mgr := newTokenManager(cfg)
	if opts.token != "" {
		if err := mgr.SetToken(opts.token, token.PlanNone); err != nil {
			return nil, nil, err
		}
	} else if envTok := os.Getenv(cfg.GitHub.TokenEnv); envTok != "" {
		if err := mgr.SetToken(envTok, token.PlanNone); err != nil {
			return nil, nil, err
		}
	}

	style, err := github.ParseAuthStyle(cfg.GitHub.AuthStyle)
	if err != nil {
		return nil, nil, err
	}

	client := github.NewRESTClient(mgr,
		github.WithBaseURL(cfg.GitHub.APIEndpoint),
		github.WithAuthStyle(style),
		github.WithLogger(logrus.StandardLogger()),
	)
	return client, cfg, nil
}

// newOutputWriter creates the record writer for a command run, honoring
// the --format and --output flags with config defaults.
func newOutputWriter(opts *globalOptions, cfg *config.Config) (output.OutputWriter, error) {
	format := opts.format
	if format == "" {
		format = cfg.Defaults.OutputFormat
	}

	switch format {
	case "ndjson":
		if opts.outputFile == "" {
			return output.NewWriter(os.Stdout), nil
		}
		return output.NewFileWriter(opts.outputFile)
	case "json":
		if opts.outputFile == "" {
			return output.NewArrayWriter(os.Stdout), nil
		}
		return output.NewArrayFileWriter(opts.outputFile)
	default:
		return nil, fmt.Errorf("unknown output format %q (expected ndjson or json)", format)
	}
}

// parseRepository parses an owner/repo string into its components
func parseRepository(repoArg string) (owner, repo string, err error) {
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expected <owner>/<repo>, got %q: %w", repoArg, scouterrors.ErrInvalidRepo)
	}

	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("expected <owner>/<repo>, got %q: %w", repoArg, scouterrors.ErrInvalidRepo)
	}

	return owner, repo, nil
}
