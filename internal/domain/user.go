package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of privilege tiers. All privilege checks go through
// User.IsModerator and User.IsAdmin; nothing else compares role strings.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// rank orders roles by privilege for comparisons.
func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleModerator:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants at least the privileges of other.
func (r Role) AtLeast(other Role) bool { return r.rank() >= other.rank() }

// User is an application account. Accounts are created unconfirmed on signup
// (or by backfill import) and are never deleted by the signup flow itself.
type User struct {
	ID          uuid.UUID
	Username    string
	Email       string
	Bio         *string
	Role        Role
	IsSuperuser bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsModerator reports whether the user holds the moderator role.
func (u *User) IsModerator() bool { return u.Role == RoleModerator }

// IsAdmin reports whether the user holds the admin role or superuser standing.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin || u.IsSuperuser }

const (
	// ReservedUsername cannot be claimed: it addresses the caller's own
	// profile on the users endpoint.
	ReservedUsername = "me"

	MaxUsernameLen = 100
	MaxEmailLen    = 254
)

var (
	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
	// Permissive shape check; deliverability is the mail hop's problem.
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateUsername checks the username shape shared by signup and admin
// user creation.
func ValidateUsername(username string) *FieldError {
	switch {
	case username == "":
		return &FieldError{Field: "username", Message: "required"}
	case len(username) > MaxUsernameLen:
		return &FieldError{Field: "username", Message: "must be at most 100 characters"}
	case username == ReservedUsername:
		return &FieldError{Field: "username", Message: `"me" is reserved`}
	case !usernameRe.MatchString(username):
		return &FieldError{Field: "username", Message: "may contain only letters, digits and .@+-_"}
	}
	return nil
}

// ValidateEmail checks the email shape shared by signup and admin user creation.
func ValidateEmail(email string) *FieldError {
	switch {
	case email == "":
		return &FieldError{Field: "email", Message: "required"}
	case len(email) > MaxEmailLen:
		return &FieldError{Field: "email", Message: "must be at most 254 characters"}
	case !emailRe.MatchString(email):
		return &FieldError{Field: "email", Message: "invalid email address"}
	}
	return nil
}
