package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// sessionTokenTTL bounds how long an issued session token stays valid.
const sessionTokenTTL = 24 * time.Hour

// AuthenticateUserQueryHandler verifies credentials against the stored bcrypt
// hash and issues HS256-signed session tokens.
type AuthenticateUserQueryHandler struct {
	db        *gorm.DB
	jwtSecret []byte
}

// NewAuthenticateUserQueryHandler creates a handler for authentication queries.
// The secret signs issued tokens and must match the verification secret used
// at the HTTP boundary.
func NewAuthenticateUserQueryHandler(db *gorm.DB, jwtSecret []byte) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Handle executes the authentication query.
// Returns the user's identity and a signed token on success, and
// ErrInvalidCredentials for an unknown username or a wrong password.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	var id uuid.UUID
	var passwordHash string
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, password_hash
		FROM users
		WHERE username = ?
	`, query.Username()).Row().Scan(&id, &passwordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AuthenticateUserQueryResponse{}, errs.ErrInvalidCredentials
		}
		return AuthenticateUserQueryResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())) != nil {
		return AuthenticateUserQueryResponse{}, errs.ErrInvalidCredentials
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"typ": "session",
		"exp": time.Now().Add(sessionTokenTTL).Unix(),
	})
	token, err := t.SignedString(h.jwtSecret)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		UserID: userID,
		Token:  token,
	}, nil
}
