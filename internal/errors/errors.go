package gerr

import "errors"

var (
	ErrStoreUnavailable = errors.New("data store unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("admin access required")
)
