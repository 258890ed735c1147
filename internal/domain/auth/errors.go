package auth

import "errors"

var (
	ErrUserNotFound      = errors.New("user does not exist")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrWrongOldPassword  = errors.New("wrong old password")
	ErrForbidden         = errors.New("you are not allowed to perform this action")
	ErrSeedAdminMismatch = errors.New("seed email belongs to a non-admin user")
)
