package staff

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"roomify/models"
	"roomify/utils"
)

const tokenDuration = 24 * time.Hour

// Authenticate verifies the credentials and issues a role-carrying JWT.
func (s *DefaultStaffService) Authenticate(ctx context.Context, email, password string) (string, *models.Staff, error) {
	record, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, utils.NewValidationError("invalid email or password")
		}
		return "", nil, err
	}
	if record.Status != models.StaffStatusActive {
		return "", nil, utils.NewValidationError("account is inactive")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return "", nil, utils.NewValidationError("invalid email or password")
	}

	token, err := utils.GenerateToken(record.ID, record.Role, tokenDuration)
	if err != nil {
		return "", nil, err
	}
	return token, record, nil
}

// RevokeToken blacklists a token hash until its natural expiry.
func (s *DefaultStaffService) RevokeToken(ctx context.Context, token string) error {
	if s.AuthCache == nil {
		return nil
	}
	return s.AuthCache.Set(ctx, RevocationKey(token), "revoked", tokenDuration).Err()
}

// RevocationKey derives the auth-cache key for a token. Shared with the
// auth middleware so revocation checks and writes agree.
func RevocationKey(token string) string {
	return "revoked:" + utils.HashToken(token)
}
