package categories

import (
	"context"

	"github.com/dmitrijs2005/moviecategories/internal/categories/models"
)

type Repository interface {
	GetAll(ctx context.Context) ([]models.MovieCategory, error)
	// GetByID and GetByName return common.ErrorNotFound when nothing matches.
	GetByID(ctx context.Context, id int64) (*models.MovieCategory, error)
	GetByName(ctx context.Context, name string) (*models.MovieCategory, error)
	// Create and Update return common.ErrorAlreadyExists on a duplicate name.
	Create(ctx context.Context, c *models.MovieCategory) (int64, error)
	Update(ctx context.Context, c *models.MovieCategory) (int64, error)
	Delete(ctx context.Context, id int64) error
}
