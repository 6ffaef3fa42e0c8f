package user

import "context"

// Repository is the document-store port of the user module. The Mongo
// implementation is the only production one; tests substitute an in-memory
// fake.
//
// Conflict and not-found conditions are reported with the package sentinel
// errors so callers can classify them with errors.Is. Any other error is an
// infrastructure failure and must be treated as opaque.
type Repository interface {
	// CreateUserWithLogin atomically checks uid, phone and email
	// uniqueness, then writes the user record, both markers and the first
	// login-history record. All four writes commit together or none do.
	CreateUserWithLogin(ctx context.Context, u User, login LoginRecord) error

	// GetUser returns the user record for uid, or ErrUserNotFound.
	GetUser(ctx context.Context, uid string) (*User, error)

	// PhoneExists reports whether a phone marker exists for the normalized key.
	PhoneExists(ctx context.Context, phoneKey string) (bool, error)

	// AppendLogin appends one login-history record.
	AppendLogin(ctx context.Context, rec LoginRecord) error

	// ListLogins returns up to limit login-history records for uid,
	// newest first.
	ListLogins(ctx context.Context, uid string, limit int) ([]LoginRecord, error)

	// UpdateUser applies upd to the user record inside one transaction,
	// re-pointing the email marker when the email changes. Returns the
	// updated record, ErrUserNotFound, or ErrEmailAlreadyRegistered when
	// the new email is reserved by a different uid.
	UpdateUser(ctx context.Context, uid string, upd Update) (*User, error)

	// DeleteUser atomically removes the user record and both markers.
	// Login history is retained. Returns ErrUserNotFound when the uid is
	// unknown.
	DeleteUser(ctx context.Context, uid string) error
}
