package domain

import "errors"

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a write collides with an existing record,
// such as a second review for the same (user, entity) pair or a taken
// username or email.
var ErrConflict = errors.New("record already exists")

// ErrForbidden is returned when the caller is authenticated but not
// allowed to act on the record, such as editing someone else's review.
var ErrForbidden = errors.New("operation not permitted")

// ErrInvalidCredentials is returned when login fails. It deliberately does
// not distinguish an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")
