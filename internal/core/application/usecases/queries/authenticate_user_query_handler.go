package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/user"
	"autoshop/internal/pkg/token"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so a caller cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateUserQueryHandler checks login credentials against the stored
// bcrypt hash and issues an access token on success.
type AuthenticateUserQueryHandler struct {
	db     *gorm.DB
	issuer *token.Issuer
	now    func() time.Time
}

// NewAuthenticateUserQueryHandler creates a handler for logins.
func NewAuthenticateUserQueryHandler(db *gorm.DB, issuer *token.Issuer) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db, issuer: issuer, now: time.Now}
}

// Handle verifies the credentials and returns a signed token with the
// account identity.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, username, email, password_hash, role
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	var (
		id           uuid.UUID
		username     string
		email        string
		passwordHash string
		role         string
	)
	err := row.Scan(&id, &username, &email, &passwordHash, &role)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	account, err := user.RestoreUser(userID, username, email, passwordHash, user.Role(role))
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}
	if err = account.CheckPassword(query.Password()); err != nil {
		return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
	}

	signed, expiresAt, err := h.issuer.Issue(
		userID.String(), username, role, h.now(),
	)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		UserID:    userID,
		Username:  username,
		Role:      role,
	}, nil
}
