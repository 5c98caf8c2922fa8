package batch

import "errors"

// ErrTimeout is returned for items not completed within the WithTimeout limit.
var ErrTimeout = errors.New("batch: item timed out")
