package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// WithTransaction runs fn inside a MongoDB transaction on a fresh session.
// All reads and writes issued through the callback context belong to one
// atomic unit: either every write commits or none do, and the server aborts
// one side of any write-write conflict between concurrent transactions.
//
// Errors returned by fn abort the transaction and are passed through
// unchanged, so domain sentinel errors survive for errors.Is checks at the
// caller. Session creation failures are wrapped with ErrSessionFailed.
func WithTransaction(ctx context.Context, client *mongo.Client, fn func(ctx context.Context) (any, error)) (any, error) {
	session, err := client.StartSession()
	if err != nil {
		return nil, errors.Join(ErrSessionFailed, err)
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn)
}

// IsDuplicateKey reports whether err represents a unique-index violation.
// Inserts racing past the in-transaction existence checks surface as
// duplicate-key errors on commit; callers map them back to domain conflicts.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
