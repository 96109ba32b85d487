package config

import (
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Params collects repeatable key=value flags into a map.
// It implements the flag.Value interface.
type Params map[string]string

// String returns the parameters as a sorted, comma-separated key=value list.
func (p Params) String() string {
	if len(p) == 0 {
		return ""
	}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+p[k])
	}
	return strings.Join(pairs, ",")
}

// Set parses one key=value pair. The key must not be empty; the value may be.
func (p Params) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("need parameter in a form `key=value`, got %q", s)
	}
	p[strings.TrimSpace(key)] = value
	return nil
}

// parseFlags parses args into a partial [StructuredConfig].
//
// Flags:
//
//	-e/-endpoint Klevu API endpoint URL
//	-m/-method GET or POST
//	-p key=value request parameter (repeatable)
//	-rest-api-key Klevu REST API key
//	-timeout request timeout (e.g., "30s", "1m")
//	-insecure-skip-verify disable TLS peer verification
//	-user-agent User-Agent header value
//	-log-level zerolog level name
//	-c/-config json file path with configs
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var endpoint, method, restAPIKey, userAgent, logLevel, jsonConfigPath string
	var timeout time.Duration
	var insecure bool
	params := Params{}

	fs.StringVar(&endpoint, "e", "", "Klevu API endpoint URL")
	fs.StringVar(&endpoint, "endpoint", "", "Klevu API endpoint URL (alias)")
	fs.StringVar(&method, "m", "", "HTTP method: GET or POST")
	fs.StringVar(&method, "method", "", "HTTP method: GET or POST (alias)")
	fs.Var(params, "p", "Request parameter key=value (repeatable)")
	fs.StringVar(&restAPIKey, "rest-api-key", "", "Klevu REST API key")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&insecure, "insecure-skip-verify", false, "Disable TLS peer verification")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent header value")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var cfgParams map[string]string
	if len(params) > 0 {
		cfgParams = params
	}

	return &StructuredConfig{
		API: API{
			Endpoint:           endpoint,
			Method:             method,
			Params:             cfgParams,
			RestAPIKey:         restAPIKey,
			Timeout:            timeout,
			InsecureSkipVerify: insecure,
			UserAgent:          userAgent,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
