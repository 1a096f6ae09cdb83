// Package categories implements the PostgreSQL movie category store.
package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moviecategories/internal/categories/models"
	"github.com/dmitrijs2005/moviecategories/internal/common"
	"github.com/dmitrijs2005/moviecategories/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.MovieCategory, error) {
	query :=
		`SELECT id, category, description FROM movie_categories
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.MovieCategory, 0)
	for rows.Next() {
		var c models.MovieCategory
		if err := rows.Scan(&c.ID, &c.Category, &c.Description); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.MovieCategory, error) {
	query :=
		`SELECT id, category, description FROM movie_categories
		 WHERE id = $1
		 `
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*models.MovieCategory, error) {
	query :=
		`SELECT id, category, description FROM movie_categories
		 WHERE category = $1
		 `
	return r.getOne(ctx, query, name)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.MovieCategory, error) {
	c := &models.MovieCategory{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Category, &c.Description)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.MovieCategory) (int64, error) {
	query :=
		`INSERT INTO movie_categories (category, description)
         VALUES ($1, $2)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query, c.Category, c.Description).Scan(&id)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, common.ErrorAlreadyExists
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

// Update returns the number of affected rows.
func (r *PostgresRepository) Update(ctx context.Context, c *models.MovieCategory) (int64, error) {
	query :=
		`UPDATE movie_categories SET category = $1, description = $2
		 WHERE id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, c.Category, c.Description, c.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, common.ErrorAlreadyExists
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM movie_categories
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
