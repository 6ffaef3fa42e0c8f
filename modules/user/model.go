package user

import "time"

// User is the registered user record. The externally issued identity
// provider uid doubles as the document key, which makes uid uniqueness a
// primary-key property rather than something the transaction has to check
// into existence.
type User struct {
	UID         string    `bson:"_id" json:"uid"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	Address     string    `bson:"address" json:"address"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PhoneMarker reserves a phone number. It exists iff a user currently holds
// that phone; the document key is the normalized phone value.
type PhoneMarker struct {
	Key         string    `bson:"_id"`
	UID         string    `bson:"uid"`
	PhoneNumber string    `bson:"phoneNumber"`
	CreatedAt   time.Time `bson:"createdAt"`
}

// EmailMarker reserves an email address. Re-pointed (old key deleted, new
// key created) when a user changes email.
type EmailMarker struct {
	Key       string    `bson:"_id"`
	UID       string    `bson:"uid"`
	Email     string    `bson:"email"`
	CreatedAt time.Time `bson:"createdAt"`
}

// LoginRecord is an append-only audit record of one login. Records are never
// mutated or deleted, and they survive unregistration.
type LoginRecord struct {
	ID          string    `bson:"_id"`
	UID         string    `bson:"uid"`
	PhoneNumber string    `bson:"phoneNumber"`
	Timestamp   time.Time `bson:"timestamp"`
	UserAgent   string    `bson:"userAgent"`
	IPAddress   string    `bson:"ipAddress"`
}

// HistoryEntry is the API representation of a LoginRecord, with the
// generated id attached and the timestamp converted to epoch seconds.
type HistoryEntry struct {
	ID          string  `json:"id"`
	UID         string  `json:"uid"`
	PhoneNumber string  `json:"phoneNumber"`
	Timestamp   float64 `json:"timestamp"`
	UserAgent   string  `json:"userAgent"`
	IPAddress   string  `json:"ipAddress"`
}

// Update carries the mutable user fields. Nil means "leave unchanged".
// Phone is absent on purpose: it is immutable after registration.
type Update struct {
	Name    *string
	Email   *string
	Address *string
}

// IsEmpty reports whether the update changes nothing.
func (u Update) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Address == nil
}
