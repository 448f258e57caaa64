// Package domain contains the core data types for the RideSmart API.
// This package has no dependencies on the store or the transport and is
// imported by every other internal package (repo, service, handler).
package domain

// User is a registered RideSmart account.
// PasswordHash holds the bcrypt hash; the plaintext password never leaves the
// service layer.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}
