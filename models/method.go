// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"net/http"
	"strings"
)

// Method is the HTTP method of an outbound Klevu API request.
// Only GET and POST are used by the Klevu endpoints.
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
)

// String implements fmt.Stringer.
func (m Method) String() string {
	return string(m)
}

// ParseMethod converts a case-insensitive method name to a [Method].
// An empty string yields [MethodGet].
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", http.MethodGet:
		return MethodGet, nil
	case http.MethodPost:
		return MethodPost, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
}
