// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// RawResponse is the unparsed reply of a single Klevu API call.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccessStatus reports whether the status code is in the 2xx range.
func (r RawResponse) IsSuccessStatus() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

//go:generate mockgen -source=response.go -destination=../internal/mock/response_model_mock.go -package=mock

// ResponseModel parses a raw HTTP reply into an application-level structure.
// A request carries the model it wants its reply parsed into; the sender
// hands the raw reply over via SetRawResponse and returns the same model.
type ResponseModel interface {
	// SetRawResponse parses raw into the model. Returns an error if the body
	// cannot be interpreted.
	SetRawResponse(raw RawResponse) error

	// IsSuccess reports whether the API call succeeded.
	IsSuccess() bool

	// Message returns a human-readable status or error message.
	Message() string
}

// EmptyResponse is the response model returned in place of a real one when
// the HTTP call could not be completed at all.
type EmptyResponse struct{}

// NoResponse is the shared [EmptyResponse] sentinel. Callers may compare
// a returned model against it with ==.
var NoResponse ResponseModel = EmptyResponse{}

func (EmptyResponse) SetRawResponse(RawResponse) error { return nil }

func (EmptyResponse) IsSuccess() bool { return false }

func (EmptyResponse) Message() string { return "No HTTP response received" }
