package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoUserWasFound      = errors.New("no user was found")
	ErrWrongPassword       = errors.New("wrong password")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
