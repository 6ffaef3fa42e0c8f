package user

import "errors"

// Domain errors. Conflicts are raised only from inside the registration and
// update transactions so there is no time-of-check/time-of-use gap between
// the existence checks and the writes.
var (
	// ErrUserAlreadyRegistered is returned when the uid already has a user record.
	ErrUserAlreadyRegistered = errors.New("user already registered")

	// ErrPhoneAlreadyRegistered is returned when another user holds the phone number.
	ErrPhoneAlreadyRegistered = errors.New("phone already registered")

	// ErrEmailAlreadyRegistered is returned when another user holds the email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrUserNotFound is returned when no user record exists for the uid.
	ErrUserNotFound = errors.New("user not found")

	// ErrPhoneMismatch is returned when a login is recorded with a phone
	// number that does not belong to the uid.
	ErrPhoneMismatch = errors.New("phone number does not match user")

	// ErrPhoneImmutable is returned when an update attempts to change the
	// phone number. The phone is the login anchor and never changes after
	// registration.
	ErrPhoneImmutable = errors.New("phone number cannot be changed")
)

// IsConflict reports whether err is one of the uniqueness conflicts.
func IsConflict(err error) bool {
	return errors.Is(err, ErrUserAlreadyRegistered) ||
		errors.Is(err, ErrPhoneAlreadyRegistered) ||
		errors.Is(err, ErrEmailAlreadyRegistered)
}
