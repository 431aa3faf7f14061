package serviceuser

import "errors"

var (
	ErrServiceUserNotFound = errors.New("service user not found")
)
