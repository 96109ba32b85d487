package response

import "errors"

// ErrMalformedXML is returned when a reply body is not well-formed XML.
var ErrMalformedXML = errors.New("malformed xml response")
