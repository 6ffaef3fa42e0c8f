// Package user implements registration, profile and login-history endpoints
// backed by MongoDB.
//
// Uniqueness of uid, phone and email is enforced with marker documents: a
// standalone record whose sole purpose is to reserve a value that is not the
// user record's primary key. Registration reads all three key-spaces and
// writes the user, both markers and the first login-history record inside a
// single server-side transaction, so either all four documents appear
// together or none do.
package user
