package user

import "errors"

var ErrUserNotFound = errors.New("user not found")

var ErrEmailTaken = errors.New("email already registered")

var ErrInvalidCredentials = errors.New("invalid credentials")

var ErrInvalidUser = errors.New("invalid user")
