// Package services contains server-side business logic on top of the
// repositories: account signup and credential verification, and the
// post authoring operations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmaltsev/journal/internal/common"
	"github.com/dmaltsev/journal/internal/server/auth"
	"github.com/dmaltsev/journal/internal/server/config"
	"github.com/dmaltsev/journal/internal/server/models"
	"github.com/dmaltsev/journal/internal/server/repositories/repomanager"
)

// UserService provides account operations:
// - SignUp: create an account from an email and a raw password
// - FindByEmail: case-insensitive account lookup
// - VerifyCredentials: check a login attempt without leaking whether
//   the email exists
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		bcryptCost:  cfg.BcryptCost,
	}
}

// NormalizeEmail lowercases and trims an email so that lookups and the
// unique index compare the same representation.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp hashes the password and inserts the account. The insert is an
// atomic insert-if-absent on the email index: when two signups race on
// one email, exactly one wins and the rest get common.ErrEmailTaken.
func (s *UserService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Email: NormalizeEmail(email), PasswordHash: hash}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// FindByEmail returns the account for email (any casing) or
// common.ErrorNotFound. Password data never appears in errors or logs.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByEmail(ctx, NormalizeEmail(email))
}

// VerifyCredentials looks the account up and checks the password.
// Unknown email and wrong password both collapse to
// common.ErrorUnauthorized, and the unknown-email path still burns a
// hash-verify cycle so response timing does not tell the two apart.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.BurnHashCycle(password)
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}
