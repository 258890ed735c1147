package leave

import "errors"

var ErrLeaveNotFound = errors.New("leave not found")
