package users

import (
	"context"

	"github.com/dmitrijs2005/moviecategories/internal/identity/models"
)

// Repository is the credential store.
type Repository interface {
	// Create inserts user and sets its ID. A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// FindByEmail returns common.ErrorNotFound when no user has that email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
