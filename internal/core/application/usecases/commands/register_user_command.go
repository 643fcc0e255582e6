package commands

import (
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/user"
	"autoshop/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand creates a staff account. The password travels as plain
// text inside the command and is hashed by the user aggregate; it is never
// persisted or logged in the clear.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command. An empty role
// defaults to the regular user role.
func NewRegisterUserCommand(
	userID kernel.UUID,
	username, email, password string,
	role user.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier the new account will carry.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the display name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Email returns the login email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plain-text password for hashing.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested authorization level.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if role == "" {
		role = user.RoleUser
	}
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
