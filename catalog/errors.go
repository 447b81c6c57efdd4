package catalog

import "errors"

var ErrNilActivityLog = errors.New("nil activity log supplied")
