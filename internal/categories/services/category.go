// Package services contains the movie-categories business logic.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moviecategories/internal/categories/models"
	"github.com/dmitrijs2005/moviecategories/internal/categories/repositories/repomanager"
	"github.com/dmitrijs2005/moviecategories/internal/common"
	"github.com/dmitrijs2005/moviecategories/internal/dbx"
)

type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

func conflict(name string) error {
	return common.Conflict(fmt.Sprintf("Category '%s' already exist", name))
}

func notFound(id int64) error {
	return common.NotFound(fmt.Sprintf("Category %d not found", id))
}

func (s *CategoryService) GetAll(ctx context.Context) ([]models.MovieCategory, error) {
	return s.repomanager.Categories(s.db).GetAll(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*models.MovieCategory, error) {
	c, err := s.repomanager.Categories(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("error searching category: %w", err)
	}
	return c, nil
}

// Create stores c and returns its id; a taken name is a Conflict.
func (s *CategoryService) Create(ctx context.Context, c *models.MovieCategory) (int64, error) {
	repo := s.repomanager.Categories(s.db)

	_, err := repo.GetByName(ctx, c.Category)
	switch {
	case err == nil:
		return 0, conflict(c.Category)
	case !errors.Is(err, common.ErrorNotFound):
		return 0, fmt.Errorf("error searching category: %w", err)
	}

	id, err := repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return 0, conflict(c.Category)
		}
		return 0, fmt.Errorf("error creating category: %w", err)
	}
	return id, nil
}

// Update replaces name and description of category c.ID inside one
// transaction. Unknown ids are NotFound; a name owned by another category is
// a Conflict.
func (s *CategoryService) Update(ctx context.Context, c *models.MovieCategory) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Categories(tx)

		if _, err := repo.GetByID(ctx, c.ID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return notFound(c.ID)
			}
			return fmt.Errorf("error searching category: %w", err)
		}

		existing, err := repo.GetByName(ctx, c.Category)
		switch {
		case err == nil && existing.ID != c.ID:
			return conflict(c.Category)
		case err != nil && !errors.Is(err, common.ErrorNotFound):
			return fmt.Errorf("error searching category: %w", err)
		}

		if _, err := repo.Update(ctx, c); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return conflict(c.Category)
			}
			return fmt.Errorf("error updating category: %w", err)
		}
		return nil
	})
}

// Delete removes a category; deleting a missing id is not an error.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repomanager.Categories(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting category: %w", err)
	}
	return nil
}
