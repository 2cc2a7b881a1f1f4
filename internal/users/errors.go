package users

import "errors"

var (
	// ErrNotFound indicates no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateUser indicates the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrPasswordMismatch indicates password and confirmation differ.
	ErrPasswordMismatch = errors.New("password confirmation does not match")

	// ErrPasswordTooShort indicates the password failed the minimum length.
	ErrPasswordTooShort = errors.New("password too short")

	// ErrInvalidCredentials indicates the password hash comparison failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
