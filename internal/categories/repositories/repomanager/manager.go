package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/moviecategories/internal/categories/repositories/categories"
	"github.com/dmitrijs2005/moviecategories/internal/dbx"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Categories(db dbx.DBTX) categories.Repository
}
