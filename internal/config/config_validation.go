// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/klevu-api-request/models"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable.
// An empty endpoint is accepted here: sending without one is reported by the
// request sender as a configuration error of the call itself.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.API.validate(); err != nil {
		return err
	}
	return cfg.Log.validate()
}

func (a API) validate() error {
	if a.Endpoint != "" {
		u, err := url.Parse(a.Endpoint)
		if err != nil {
			return fmt.Errorf("%w: endpoint: %v", ErrInvalidAPIConfigs, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: endpoint must be an absolute http(s) URL", ErrInvalidAPIConfigs)
		}
	}

	if _, err := models.ParseMethod(a.Method); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAPIConfigs, err)
	}

	if a.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidAPIConfigs)
	}

	return nil
}

func (l Log) validate() error {
	if strings.TrimSpace(l.Level) == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(l.Level))); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}
	return nil
}
