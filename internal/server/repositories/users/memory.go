package users

import (
	"context"
	"sync"

	"github.com/gtsdev/usuarios/internal/common"
	"github.com/gtsdev/usuarios/internal/server/models"
)

// InMemoryRepository keeps users in a map guarded by one mutex.
// Every method holds the lock for its whole body and never blocks inside it.
type InMemoryRepository struct {
	mu    sync.Mutex
	users map[uint32]models.User
}

func NewInMemoryRepository(seed ...models.User) *InMemoryRepository {
	users := make(map[uint32]models.User, len(seed))
	for _, u := range seed {
		users[u.ID] = u
	}
	return &InMemoryRepository{users: users}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, u)
	}
	return result, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id uint32) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return models.User{}, common.ErrorNotFound
	}
	return u, nil
}

func (r *InMemoryRepository) Insert(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; ok {
		return models.User{}, common.ErrorAlreadyExists
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *InMemoryRepository) Replace(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return models.User{}, common.ErrorNotFound
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id uint32) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.users, id)
	return nil
}
