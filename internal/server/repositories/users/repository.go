package users

import (
	"context"

	"github.com/gtsdev/usuarios/internal/server/models"
)

// Repository is the user collection. Insert, Replace and Delete must check
// and mutate in a single step so concurrent callers cannot interleave.
type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint32) (models.User, error)
	Insert(ctx context.Context, user models.User) (models.User, error)
	Replace(ctx context.Context, user models.User) (models.User, error)
	Delete(ctx context.Context, id uint32) error
}
