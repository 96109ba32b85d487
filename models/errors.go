package models

import "errors"

// ErrUnsupportedMethod is returned by [ParseMethod] for anything other than
// GET or POST.
var ErrUnsupportedMethod = errors.New("unsupported http method")
