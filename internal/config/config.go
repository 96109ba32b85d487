// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the settings of the outbound Klevu API call.
	API API `envPrefix:"API_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds the settings of the outbound Klevu API call.
type API struct {
	// Endpoint is the full URL of the Klevu API endpoint
	// (e.g. "https://tiers.klevu.com/uti/getFeaturesAndUpgradeLink").
	// Env: API_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Method is "GET" or "POST". Empty means a plain GET request without
	// parameter placement.
	// Env: API_METHOD
	Method string `env:"METHOD"`

	// Params are the request parameters, sent in the query string for GET
	// and in the form body for POST.
	// Env: API_PARAMS (e.g. "store=1,lang=en")
	Params map[string]string `env:"PARAMS" envKeyValSeparator:"="`

	// RestAPIKey is sent as the restApiKey parameter when set. Never logged
	// in clear text.
	// Env: API_REST_API_KEY
	RestAPIKey string `env:"REST_API_KEY"`

	// Timeout bounds a single call (e.g. "30s"). Zero means the client default.
	// Env: API_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// InsecureSkipVerify disables TLS peer verification. Off by default.
	// Env: API_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`

	// UserAgent overrides the User-Agent header of outbound requests.
	// Env: API_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "error", ...).
	// Debug enables masked request/response dumps.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// LogLevel returns the configured verbosity, defaulting to info.
// Unknown names also fall back to info; validate rejects them earlier.
func (l Log) LogLevel() zerolog.Level {
	if strings.TrimSpace(l.Level) == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(l.Level)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		build()
}
