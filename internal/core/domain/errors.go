package domain

import "errors"

var ErrForbidden = errors.New("access forbidden")
var ErrMissingFields = errors.New("missing required fields")
var ErrProjectNotFound = errors.New("project not found")
var ErrTaskNotFound = errors.New("task not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
