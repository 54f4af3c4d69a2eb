// Package validation holds the pure input checks applied at the request
// boundary. Nothing here touches I/O; callers decide what to do with a
// non-empty FieldErrors.
package validation

import "strings"

// MinPasswordLength is deliberately the only password rule: no upper
// bound, no complexity classes.
const MinPasswordLength = 8

// User-facing messages. Keyed to the form fields they annotate.
const (
	MsgEmailInvalid     = "Email is invalid"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password is too short"
	MsgTitleRequired    = "Title is required"
	MsgSlugRequired     = "Slug is required"
	MsgMarkdownRequired = "Markdown is required"
)

// FieldErrors maps a form field name (email, password, title, slug,
// markdown) to a human-readable message.
type FieldErrors map[string]string

// Any reports whether at least one field failed validation.
func (fe FieldErrors) Any() bool { return len(fe) > 0 }

// ValidEmail reports whether candidate has a minimal email shape: a
// single-or-more character local part, an '@', and a non-empty domain.
// No DNS or deliverability checks.
func ValidEmail(candidate string) bool {
	at := strings.Index(candidate, "@")
	return at > 0 && at < len(candidate)-1
}

// PasswordError returns a message describing why candidate is not an
// acceptable password, or "" when it is. A password of exactly
// MinPasswordLength characters is acceptable.
func PasswordError(candidate string) string {
	if candidate == "" {
		return MsgPasswordRequired
	}
	if len(candidate) < MinPasswordLength {
		return MsgPasswordTooShort
	}
	return ""
}

// Credentials validates a signup/login form and returns per-field
// messages for anything malformed.
func Credentials(email, password string) FieldErrors {
	fe := FieldErrors{}
	if !ValidEmail(email) {
		fe["email"] = MsgEmailInvalid
	}
	if msg := PasswordError(password); msg != "" {
		fe["password"] = msg
	}
	return fe
}

// PostFields validates an authoring form; every field is required.
func PostFields(title, slug, markdown string) FieldErrors {
	fe := FieldErrors{}
	if title == "" {
		fe["title"] = MsgTitleRequired
	}
	if slug == "" {
		fe["slug"] = MsgSlugRequired
	}
	if markdown == "" {
		fe["markdown"] = MsgMarkdownRequired
	}
	return fe
}
