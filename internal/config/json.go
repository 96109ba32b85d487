package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	API struct {
		Endpoint           string            `json:"endpoint"`
		Method             string            `json:"method"`
		Params             map[string]string `json:"params,omitempty"`
		RestAPIKey         string            `json:"rest_api_key"`
		Timeout            Duration          `json:"timeout"`
		InsecureSkipVerify bool              `json:"insecure_skip_verify"`
		UserAgent          string            `json:"user_agent"`
	} `json:"api,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			Endpoint:           jsonCfg.API.Endpoint,
			Method:             jsonCfg.API.Method,
			Params:             jsonCfg.API.Params,
			RestAPIKey:         jsonCfg.API.RestAPIKey,
			Timeout:            time.Duration(jsonCfg.API.Timeout),
			InsecureSkipVerify: jsonCfg.API.InsecureSkipVerify,
			UserAgent:          jsonCfg.API.UserAgent,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
