// Package users persists account records. The email column carries a
// unique index; concurrent creation races are settled by the database,
// with losers receiving common.ErrEmailTaken.
package users

import (
	"context"

	"github.com/dmaltsev/journal/internal/server/models"
)

type Repository interface {
	// Create inserts the account and returns it with id and creation
	// time filled in. A conflicting email yields common.ErrEmailTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the account stored under email, or
	// common.ErrorNotFound. The caller is expected to have normalized
	// the email already.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
