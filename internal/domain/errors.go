package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input is missing a required field or fails a
// business rule before reaching the store.
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrIntegrity is returned by repo functions when a write violates a database
// constraint: a duplicate email, a duplicate trip tuple, or a trip referencing
// a user or ride that does not exist.
// Handlers should map this to HTTP 400.
var ErrIntegrity = errors.New("integrity constraint violated")

// ErrInvalidCredentials is returned by the login flow when the email is unknown
// or the password does not match. The two cases are deliberately indistinguishable.
// Handlers should map this to HTTP 401.
var ErrInvalidCredentials = errors.New("invalid email or password")
