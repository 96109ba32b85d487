package masking

import "errors"

// ErrMaskingFailed wraps any failure raised by a masking rule.
var ErrMaskingFailed = errors.New("masking failed")
