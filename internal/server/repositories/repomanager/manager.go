// Package repomanager vends repository implementations bound to a DB
// handle, so services can run them against either the pool or an open
// transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmaltsev/journal/internal/dbx"
	"github.com/dmaltsev/journal/internal/server/repositories/posts"
	"github.com/dmaltsev/journal/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
