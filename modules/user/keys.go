package user

import "strings"

// Document-key placeholders. The store forbids some characters in document
// identifiers, so raw phone numbers and emails are mapped to key-safe
// strings. A validated E.164 phone contains only "+" and digits, so the
// phone mapping is injective. The email mapping lowercases first and uses
// distinct placeholders for "@" and ".".
const (
	plusPlaceholder = "_plus_"
	atPlaceholder   = "_at_"
	dotPlaceholder  = "_dot_"
)

// NormalizePhoneKey maps an E.164 phone number to a document-key-safe
// string. The same mapping is used to create and to look up phone markers;
// it must never change without migrating existing marker documents.
func NormalizePhoneKey(phone string) string {
	return strings.ReplaceAll(phone, "+", plusPlaceholder)
}

// NormalizeEmailKey maps an email address to a document-key-safe string.
// The value is lowercased first so that case variants of one address
// reserve the same marker.
func NormalizeEmailKey(email string) string {
	key := strings.ToLower(email)
	key = strings.ReplaceAll(key, "@", atPlaceholder)
	key = strings.ReplaceAll(key, ".", dotPlaceholder)
	return key
}
