// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apirequest builds and sends single outbound calls to the Klevu
// API and keeps sensitive values out of the application log.
//
// A [Request] is an immutable value: every With* method returns a modified
// copy. Its [Kind] selects where parameters go on the wire:
//   - [KindPlain] sends the configured method without parameters;
//   - [KindGet] forces GET and puts parameters in the query string;
//   - [KindPost] forces POST and puts parameters in a form-encoded body.
//
// A [Sender] executes a Request. Configuration problems (no endpoint, no
// response model) are returned as errors before any network I/O. Transport
// failures are logged once and reported as [models.NoResponse], never as an
// error. When the configured log level is debug, masked dumps of the request
// and the reply body are logged; masking never changes what is sent.
package apirequest
