package user

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/logger"
)

// History page bounds. The cap applies regardless of caller input.
const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 100
)

// RegisterInput carries the validated registration fields plus the request
// metadata recorded in the first login-history entry.
type RegisterInput struct {
	UID         string
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	UserAgent   string
	IPAddress   string
}

// Service implements the user module operations over a Repository.
// It owns input normalization, server-assigned timestamps and the
// sensitive-field denylist; format validation happens at the HTTP boundary
// before any Service call.
type Service struct {
	repo     Repository
	log      *slog.Logger
	redacted map[string]struct{}
}

// NewService creates a Service. redactedFields is the denylist of user
// payload keys stripped from API responses; field names are matched
// case-sensitively against the JSON keys of User.
func NewService(repo Repository, log *slog.Logger, redactedFields []string) *Service {
	redacted := make(map[string]struct{}, len(redactedFields))
	for _, f := range redactedFields {
		f = strings.TrimSpace(f)
		if f != "" {
			redacted[f] = struct{}{}
		}
	}
	return &Service{
		repo:     repo,
		log:      log.With(logger.Component("user.service")),
		redacted: redacted,
	}
}

// Register creates the user, both uniqueness markers and the first
// login-history record as one atomic unit. Conflicts surface as the package
// sentinel errors; anything else is an infrastructure failure.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	now := time.Now().UTC()
	u := User{
		UID:         in.UID,
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	login := LoginRecord{
		ID:          uuid.NewString(),
		UID:         u.UID,
		PhoneNumber: u.PhoneNumber,
		Timestamp:   now,
		UserAgent:   in.UserAgent,
		IPAddress:   in.IPAddress,
	}

	if err := s.repo.CreateUserWithLogin(ctx, u, login); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user registered", logger.UserID(u.UID))
	return &u, nil
}

// CheckPhone reports whether any user currently holds the phone number.
func (s *Service) CheckPhone(ctx context.Context, phone string) (bool, error) {
	return s.repo.PhoneExists(ctx, NormalizePhoneKey(strings.TrimSpace(phone)))
}

// RecordLogin appends a login-history record for uid. The phone number must
// match the user's registered phone; a mismatch and an unknown uid both
// report as not-found conditions.
func (s *Service) RecordLogin(ctx context.Context, uid, phone, userAgent, ipAddress string) error {
	u, err := s.repo.GetUser(ctx, uid)
	if err != nil {
		return err
	}
	if u.PhoneNumber != strings.TrimSpace(phone) {
		return ErrPhoneMismatch
	}

	rec := LoginRecord{
		ID:          uuid.NewString(),
		UID:         uid,
		PhoneNumber: u.PhoneNumber,
		Timestamp:   time.Now().UTC(),
		UserAgent:   userAgent,
		IPAddress:   ipAddress,
	}
	if err := s.repo.AppendLogin(ctx, rec); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "login recorded", logger.UserID(uid))
	return nil
}

// History returns up to limit login-history records for uid, newest first.
// A non-positive limit falls back to the default page size; the hard cap
// applies regardless of caller input.
func (s *Service) History(ctx context.Context, uid string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := s.repo.ListLogins(ctx, uid, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, HistoryEntry{
			ID:          rec.ID,
			UID:         rec.UID,
			PhoneNumber: rec.PhoneNumber,
			Timestamp:   float64(rec.Timestamp.UnixMilli()) / 1000,
			UserAgent:   rec.UserAgent,
			IPAddress:   rec.IPAddress,
		})
	}
	return entries, nil
}

// Get returns the user record for uid.
func (s *Service) Get(ctx context.Context, uid string) (*User, error) {
	return s.repo.GetUser(ctx, uid)
}

// Update applies the mutable fields to the user record. Email values are
// normalized the same way Register normalizes them so marker keys stay
// consistent.
func (s *Service) Update(ctx context.Context, uid string, upd Update) (*User, error) {
	if upd.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*upd.Email))
		upd.Email = &email
	}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		upd.Name = &name
	}
	if upd.Address != nil {
		address := strings.TrimSpace(*upd.Address)
		upd.Address = &address
	}

	u, err := s.repo.UpdateUser(ctx, uid, upd)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user updated", logger.UserID(uid))
	return u, nil
}

// Unregister deletes the user record and both markers. Login history is
// retained.
func (s *Service) Unregister(ctx context.Context, uid string) error {
	if err := s.repo.DeleteUser(ctx, uid); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "user unregistered", logger.UserID(uid))
	return nil
}

// Redact converts a user record into its API payload with denylisted fields
// stripped.
func (s *Service) Redact(u *User) map[string]any {
	payload := map[string]any{
		"uid":         u.UID,
		"name":        u.Name,
		"email":       u.Email,
		"phoneNumber": u.PhoneNumber,
		"address":     u.Address,
		"createdAt":   u.CreatedAt,
		"updatedAt":   u.UpdatedAt,
	}
	for field := range s.redacted {
		delete(payload, field)
	}
	return payload
}
