package apperr

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Category is a stable, user-facing error class. The catalogue is fixed:
// front-end copy keys off these values, so adding is fine but renaming is
// a breaking change.
type Category string

const (
	CategoryInvalidCredentials Category = "invalid_credentials"
	CategoryDuplicateAccount   Category = "duplicate_account"
	CategoryUnverified         Category = "unverified"
	CategoryExpiredSession     Category = "expired_session"
	CategoryUnauthorized       Category = "unauthorized"

	CategoryNotFound         Category = "not_found"
	CategoryPermissionDenied Category = "permission_denied"
	CategoryDuplicateEntry   Category = "duplicate_entry"
	CategoryForeignKey       Category = "foreign_key_violation"
	CategoryConstraint       Category = "constraint_violation"
	CategoryConnection       Category = "connection_failed"

	CategoryNetwork     Category = "network_error"
	CategoryTimeout     Category = "timeout"
	CategoryRateLimited Category = "rate_limited"

	CategoryValidation   Category = "validation"
	CategoryStorageQuota Category = "storage_quota"

	CategoryUnexpected Category = "unexpected"
)

// messages is the user-facing copy per category.
var messages = map[Category]string{
	CategoryInvalidCredentials: "Invalid email or password",
	CategoryDuplicateAccount:   "An account with this email already exists",
	CategoryUnverified:         "Please verify your email address first",
	CategoryExpiredSession:     "Your session has expired, please sign in again",
	CategoryUnauthorized:       "You are not authorized to perform this action",
	CategoryNotFound:           "The requested record was not found",
	CategoryPermissionDenied:   "You do not have permission to access this data",
	CategoryDuplicateEntry:     "This entry already exists",
	CategoryForeignKey:         "This record is referenced by other data",
	CategoryConstraint:         "The data violates a storage constraint",
	CategoryConnection:         "Could not reach the database, please try again",
	CategoryNetwork:            "Network error, please check your connection",
	CategoryTimeout:            "The operation timed out, please try again",
	CategoryRateLimited:        "Too many requests, please slow down",
	CategoryValidation:         "Some fields are invalid, please review your input",
	CategoryStorageQuota:       "Storage quota exceeded",
	CategoryUnexpected:         "An unexpected error occurred, please try again",
}

// Message returns the user-facing copy for a category.
func Message(cat Category) string {
	if m, ok := messages[cat]; ok {
		return m
	}
	return messages[CategoryUnexpected]
}

// Classify maps an error from the storage collaborator (or any component
// boundary) to a Category. Typed errors are checked first; the lower-cased
// substring catalogue only runs when nothing typed matches.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnexpected
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CategoryNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPgCode(pgErr.Code)
	}

	return classifyMessage(err.Error())
}

// Translate converts an error into the envelope's user-facing string.
func Translate(err error) string {
	return Message(Classify(err))
}

// classifyPgCode maps SQLSTATE codes. Class prefixes (first two chars)
// cover whole families.
func classifyPgCode(code string) Category {
	switch code {
	case "23505":
		return CategoryDuplicateEntry
	case "23503":
		return CategoryForeignKey
	case "23502", "23514":
		return CategoryConstraint
	case "42501":
		return CategoryPermissionDenied
	case "57014":
		return CategoryTimeout
	case "53100":
		return CategoryStorageQuota
	}
	if len(code) >= 2 {
		switch code[:2] {
		case "08":
			return CategoryConnection
		case "28":
			return CategoryInvalidCredentials
		case "22", "23":
			return CategoryConstraint
		case "53":
			return CategoryStorageQuota
		}
	}
	return CategoryUnexpected
}

// substring catalogue, checked in order. First hit wins, so the more
// specific patterns come first.
var patterns = []struct {
	needle string
	cat    Category
}{
	{"invalid login credentials", CategoryInvalidCredentials},
	{"invalid email or password", CategoryInvalidCredentials},
	{"user already registered", CategoryDuplicateAccount},
	{"email not confirmed", CategoryUnverified},
	{"token has expired", CategoryExpiredSession},
	{"jwt expired", CategoryExpiredSession},
	{"refresh token", CategoryExpiredSession},
	{"not authorized", CategoryUnauthorized},
	{"unauthorized", CategoryUnauthorized},

	{"duplicate key value", CategoryDuplicateEntry},
	{"already exists", CategoryDuplicateEntry},
	{"foreign key", CategoryForeignKey},
	{"violates check constraint", CategoryConstraint},
	{"not-null constraint", CategoryConstraint},
	{"row-level security", CategoryPermissionDenied},
	{"permission denied", CategoryPermissionDenied},
	{"no rows", CategoryNotFound},
	{"not found", CategoryNotFound},

	{"rate limit", CategoryRateLimited},
	{"too many requests", CategoryRateLimited},
	{"timeout", CategoryTimeout},
	{"timed out", CategoryTimeout},
	{"connection refused", CategoryConnection},
	{"connection reset", CategoryConnection},
	{"failed to connect", CategoryConnection},
	{"no such host", CategoryNetwork},
	{"network", CategoryNetwork},

	{"quota", CategoryStorageQuota},
	{"payload too large", CategoryStorageQuota},
	{"validation", CategoryValidation},
	{"invalid input", CategoryValidation},
}

func classifyMessage(msg string) Category {
	lower := strings.ToLower(msg)
	for _, p := range patterns {
		if strings.Contains(lower, p.needle) {
			return p.cat
		}
	}
	return CategoryUnexpected
}
