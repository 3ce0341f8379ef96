package services

import "errors"

var (
	// ErrEmailTaken is returned when signup reuses an existing email.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrQuizNotFound indicates the referenced quiz does not exist.
	ErrQuizNotFound = errors.New("quiz not found")
)
