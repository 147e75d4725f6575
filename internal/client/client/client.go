package client

import (
	"context"

	"github.com/gtsdev/usuarios/internal/client/models"
)

// Client is the transport-agnostic contract the admin CLI talks to.
type Client interface {
	Close() error
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint32) (models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	Update(ctx context.Context, id uint32, u models.User) (models.User, error)
	Delete(ctx context.Context, id uint32) (string, error)
}
