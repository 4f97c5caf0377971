package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")
	ErrAccountDisabled     = errors.New("account is disabled")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrFileTypeNotAllowed = errors.New("file type is not allowed")
	ErrFileTooLarge       = errors.New("file exceeds the size limit")
	ErrNoFileAttached     = errors.New("no file attached to the spreadsheet")
)
