// Package user implements staff accounts: username, unique email, a bcrypt
// password hash, and a role used for coarse authorization. Mechanics and
// inspectors referenced from repair orders are users.
package user

import (
	"errors"
	"fmt"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for user operations.
var (
	// ErrUserIsNotConstructed is returned when using an improperly
	// initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
	// ErrUsernameIsRequired is returned when the username is empty.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrEmailIsRequired is returned when the email is empty.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordTooShort is returned when the plain-text password is
	// shorter than 6 characters.
	ErrPasswordTooShort = errs.NewValueIsInvalidError("password must be at least 6 characters")
	// ErrInvalidCredentials is returned when a password check fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Role is the coarse authorization level of a user account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleUser  Role = "user"
)

// Validate checks the role value.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleStaff, RoleUser:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a valid role", string(r)),
		)
	}
}

// User is the aggregate root for staff accounts.
type User struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	role         Role

	guard guard.ConstructorGuard
}

// NewUser creates a user account, hashing the plain-text password with
// bcrypt. The role defaults to RoleUser when empty.
func NewUser(id kernel.UUID, username, email, password string, role Role) (*User, error) {
	if role == "" {
		role = RoleUser
	}

	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	u.role = role

	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %w", err)
	}
	u.passwordHash = string(hash)

	return u, nil
}

// RestoreUser reconstructs a user from persistent storage. The password hash
// is taken as stored.
func RestoreUser(id kernel.UUID, username, email, passwordHash string, role Role) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	u.role = role

	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the aggregate identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the display name.
func (u *User) Username() string {
	return u.username
}

// Email returns the unique login email.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the authorization level.
func (u *User) Role() Role {
	return u.role
}

// CheckPassword compares a plain-text password against the stored hash.
// Returns ErrInvalidCredentials on mismatch.
func (u *User) CheckPassword(password string) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// ChangePassword verifies the current password and replaces it with a new
// one. The new password must differ from the current one.
func (u *User) ChangePassword(current, next string) error {
	if err := u.CheckPassword(current); err != nil {
		return err
	}
	if len(next) < 6 {
		return ErrPasswordTooShort
	}
	if current == next {
		return errs.NewValueIsInvalidError("new password must differ from the current password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}
	u.passwordHash = string(hash)
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}
