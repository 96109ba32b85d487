package apirequest

import "errors"

var (
	// ErrNoEndpoint is returned by Send when the request has no endpoint URL.
	ErrNoEndpoint = errors.New("unable to send a Klevu API request: no URL specified")
	// ErrNoResponseModel is returned by Send when the request has no response model.
	ErrNoResponseModel = errors.New("unable to send a Klevu API request: no response model specified")
	// ErrParseResponse wraps a failure of the response model to parse the reply.
	ErrParseResponse = errors.New("unable to parse Klevu API response")
)
