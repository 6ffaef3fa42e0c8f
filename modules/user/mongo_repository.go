package user

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	store "github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/mongo"
)

// Collection names.
const (
	usersCollection   = "users"
	phonesCollection  = "phone_markers"
	emailsCollection  = "email_markers"
	historyCollection = "login_history"
)

// MongoRepository implements Repository on top of a MongoDB database.
// Multi-document operations run inside server-side transactions, which
// require a replica set or a managed deployment (Atlas).
type MongoRepository struct {
	client  *mongo.Client
	users   *mongo.Collection
	phones  *mongo.Collection
	emails  *mongo.Collection
	history *mongo.Collection
}

// NewMongoRepository creates a repository over db.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		client:  db.Client(),
		users:   db.Collection(usersCollection),
		phones:  db.Collection(phonesCollection),
		emails:  db.Collection(emailsCollection),
		history: db.Collection(historyCollection),
	}
}

// EnsureIndexes creates the secondary indexes the module queries rely on.
// Safe to call on every startup; existing indexes are left untouched.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.history.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "uid", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}

// CreateUserWithLogin implements the atomic registration unit. The three
// existence checks and the four inserts share one transaction, so a
// concurrent transaction that read the same missing marker is aborted by the
// server on commit; its insert then fails with a duplicate key, which maps
// back to the matching conflict error. Exactly one of N concurrent attempts
// for the same uid, phone or email succeeds.
func (r *MongoRepository) CreateUserWithLogin(ctx context.Context, u User, login LoginRecord) error {
	_, err := store.WithTransaction(ctx, r.client, func(ctx context.Context) (any, error) {
		if err := r.users.FindOne(ctx, bson.M{"_id": u.UID}).Err(); err == nil {
			return nil, ErrUserAlreadyRegistered
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}

		phoneKey := NormalizePhoneKey(u.PhoneNumber)
		if err := r.phones.FindOne(ctx, bson.M{"_id": phoneKey}).Err(); err == nil {
			return nil, ErrPhoneAlreadyRegistered
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}

		emailKey := NormalizeEmailKey(u.Email)
		if err := r.emails.FindOne(ctx, bson.M{"_id": emailKey}).Err(); err == nil {
			return nil, ErrEmailAlreadyRegistered
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}

		if _, err := r.users.InsertOne(ctx, u); err != nil {
			if store.IsDuplicateKey(err) {
				return nil, ErrUserAlreadyRegistered
			}
			return nil, err
		}
		if _, err := r.phones.InsertOne(ctx, PhoneMarker{
			Key:         phoneKey,
			UID:         u.UID,
			PhoneNumber: u.PhoneNumber,
			CreatedAt:   u.CreatedAt,
		}); err != nil {
			if store.IsDuplicateKey(err) {
				return nil, ErrPhoneAlreadyRegistered
			}
			return nil, err
		}
		if _, err := r.emails.InsertOne(ctx, EmailMarker{
			Key:       emailKey,
			UID:       u.UID,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		}); err != nil {
			if store.IsDuplicateKey(err) {
				return nil, ErrEmailAlreadyRegistered
			}
			return nil, err
		}
		if _, err := r.history.InsertOne(ctx, login); err != nil {
			return nil, err
		}

		return nil, nil
	})
	return err
}

func (r *MongoRepository) GetUser(ctx context.Context, uid string) (*User, error) {
	var u User
	if err := r.users.FindOne(ctx, bson.M{"_id": uid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoRepository) PhoneExists(ctx context.Context, phoneKey string) (bool, error) {
	err := r.phones.FindOne(ctx, bson.M{"_id": phoneKey}).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return false, nil
	default:
		return false, err
	}
}

func (r *MongoRepository) AppendLogin(ctx context.Context, rec LoginRecord) error {
	_, err := r.history.InsertOne(ctx, rec)
	return err
}

func (r *MongoRepository) ListLogins(ctx context.Context, uid string, limit int) ([]LoginRecord, error) {
	cursor, err := r.history.Find(ctx, bson.M{"uid": uid},
		options.Find().
			SetSort(bson.D{{Key: "timestamp", Value: -1}}).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}

	var records []LoginRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateUser re-points the email marker and rewrites the user record inside
// one transaction, so a crash mid-update cannot strand a marker that no
// longer matches the user's email.
func (r *MongoRepository) UpdateUser(ctx context.Context, uid string, upd Update) (*User, error) {
	res, err := store.WithTransaction(ctx, r.client, func(ctx context.Context) (any, error) {
		var u User
		if err := r.users.FindOne(ctx, bson.M{"_id": uid}).Decode(&u); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}

		now := time.Now().UTC()

		if upd.Email != nil && *upd.Email != u.Email {
			newKey := NormalizeEmailKey(*upd.Email)
			oldKey := NormalizeEmailKey(u.Email)

			var marker EmailMarker
			err := r.emails.FindOne(ctx, bson.M{"_id": newKey}).Decode(&marker)
			switch {
			case err == nil:
				if marker.UID != uid {
					return nil, ErrEmailAlreadyRegistered
				}
			case errors.Is(err, mongo.ErrNoDocuments):
				if _, err := r.emails.DeleteOne(ctx, bson.M{"_id": oldKey}); err != nil {
					return nil, err
				}
				if _, err := r.emails.InsertOne(ctx, EmailMarker{
					Key:       newKey,
					UID:       uid,
					Email:     *upd.Email,
					CreatedAt: now,
				}); err != nil {
					if store.IsDuplicateKey(err) {
						return nil, ErrEmailAlreadyRegistered
					}
					return nil, err
				}
			default:
				return nil, err
			}
			u.Email = *upd.Email
		}

		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Address != nil {
			u.Address = *upd.Address
		}
		u.UpdatedAt = now

		if _, err := r.users.ReplaceOne(ctx, bson.M{"_id": uid}, u); err != nil {
			return nil, err
		}
		return &u, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*User), nil
}

// DeleteUser removes the user record and both markers atomically. History
// records are append-only and deliberately retained.
func (r *MongoRepository) DeleteUser(ctx context.Context, uid string) error {
	_, err := store.WithTransaction(ctx, r.client, func(ctx context.Context) (any, error) {
		var u User
		if err := r.users.FindOne(ctx, bson.M{"_id": uid}).Decode(&u); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}

		if _, err := r.users.DeleteOne(ctx, bson.M{"_id": uid}); err != nil {
			return nil, err
		}
		if _, err := r.phones.DeleteOne(ctx, bson.M{"_id": NormalizePhoneKey(u.PhoneNumber)}); err != nil {
			return nil, err
		}
		if _, err := r.emails.DeleteOne(ctx, bson.M{"_id": NormalizeEmailKey(u.Email)}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

var _ Repository = (*MongoRepository)(nil)
