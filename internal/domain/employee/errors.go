package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee ID already exists")
	ErrInvalidImage       = errors.New("profile image must be a jpg, jpeg or png file")
)
