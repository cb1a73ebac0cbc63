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

// Package config types define the configuration structures used throughout
// sirseer-scout. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for sirseer-scout.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	GitHub   GitHubConfig   `yaml:"github"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Token    TokenConfig    `yaml:"token"`
}

// GitHubConfig contains GitHub-specific settings including the API endpoint
// and authentication configuration. This allows easy configuration for
// GitHub Enterprise deployments by specifying a custom endpoint.
//
// AuthStyle selects how the token travels on each request: "query" sends
// it as the access_token query parameter (historic GitHub behavior),
// "header" sends it as an Authorization bearer header.
type GitHubConfig struct {
	APIEndpoint string `yaml:"api_endpoint"`
	TokenEnv    string `yaml:"token_env"`
	AuthStyle   string `yaml:"auth_style"`
}

// DefaultsConfig contains default settings that apply to all listing
// operations unless overridden by command-line flags.
type DefaultsConfig struct {
	OutputFormat string `yaml:"output_format"`
	PageSize     int    `yaml:"page_size"`
}

// TokenConfig locates the two persistent token stores. SessionFile is a
// plain file in a session-scoped location; LocalDB is a durable bbolt
// database. Paths support ~ expansion.
type TokenConfig struct {
	SessionFile string `yaml:"session_file"`
	LocalDB     string `yaml:"local_db"`
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases. These defaults are optimized for public GitHub.com usage but
// can be overridden for GitHub Enterprise or special requirements.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIEndpoint: "https://api.github.com",
			TokenEnv:    "GITHUB_TOKEN",
			AuthStyle:   "query",
		},
		Defaults: DefaultsConfig{
			OutputFormat: "ndjson",
			PageSize:     30,
		},
		Token: TokenConfig{
			SessionFile: "",
			LocalDB:     "~/.sirseer/scout-tokens.db",
		},
	}
}
