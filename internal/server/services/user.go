// Package services contains server-side business logic. This file implements
// UserService, the CRUD surface over the user collection shared by every
// transport.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gtsdev/usuarios/internal/common"
	"github.com/gtsdev/usuarios/internal/logging"
	"github.com/gtsdev/usuarios/internal/server/models"
	"github.com/gtsdev/usuarios/internal/server/repositories/users"
	"github.com/gtsdev/usuarios/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// UserService validates input at the boundary and delegates storage to a
// users.Repository. Every failure is returned to the caller; a failed call
// leaves the collection unchanged.
type UserService struct {
	repo   users.Repository
	logger logging.Logger
	inst   *telemetry.Instrumentation
}

// NewUserService constructs a UserService. inst may be nil to disable telemetry.
func NewUserService(repo users.Repository, logger logging.Logger, inst *telemetry.Instrumentation) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger.With("module", "user_service"),
		inst:   inst,
	}
}

// List returns every stored user in no particular order.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	ctx, op := s.inst.Start(ctx, "list")

	result, err := s.repo.List(ctx)
	if err != nil {
		op.Finish(ctx, outcome(err), err)
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	op.Finish(ctx, "ok", nil)
	s.logger.Info(ctx, "listing all users", "count", len(result))
	return result, nil
}

// Get returns the user with the given id or common.ErrorNotFound.
func (s *UserService) Get(ctx context.Context, id uint32) (models.User, error) {
	ctx, op := s.inst.Start(ctx, "get", idAttr(id))

	u, err := s.repo.Get(ctx, id)
	op.Finish(ctx, outcome(err), err)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "attempt to read a missing user", "id", id)
		}
		return models.User{}, fmt.Errorf("error getting user %d: %w", id, err)
	}

	s.logger.Info(ctx, "user found", "id", u.ID, "name", u.Name)
	return u, nil
}

// Create stores candidate. It fails with common.ErrorInvalidInput when the
// name is empty or the age is zero, and with common.ErrorAlreadyExists when
// the id is taken.
func (s *UserService) Create(ctx context.Context, candidate models.User) (models.User, error) {
	ctx, op := s.inst.Start(ctx, "create", idAttr(candidate.ID))

	if err := validate(candidate); err != nil {
		op.Finish(ctx, outcome(err), err)
		s.logger.Warn(ctx, "attempt to create a user with incomplete data", "id", candidate.ID)
		return models.User{}, err
	}

	u, err := s.repo.Insert(ctx, candidate)
	op.Finish(ctx, outcome(err), err)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.logger.Warn(ctx, "attempt to create an existing user", "id", candidate.ID)
		}
		return models.User{}, fmt.Errorf("error creating user %d: %w", candidate.ID, err)
	}

	s.logger.Info(ctx, "user created", "id", u.ID, "name", u.Name)
	return u, nil
}

// Update replaces the user stored under id with candidate. The id argument
// always overrides candidate.ID. Name and age are not validated here.
func (s *UserService) Update(ctx context.Context, id uint32, candidate models.User) (models.User, error) {
	ctx, op := s.inst.Start(ctx, "update", idAttr(id))

	candidate.ID = id

	u, err := s.repo.Replace(ctx, candidate)
	op.Finish(ctx, outcome(err), err)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "attempt to update a missing user", "id", id)
		}
		return models.User{}, fmt.Errorf("error updating user %d: %w", id, err)
	}

	s.logger.Info(ctx, "user updated", "id", u.ID, "name", u.Name)
	return u, nil
}

// Delete removes the user with the given id or returns common.ErrorNotFound.
func (s *UserService) Delete(ctx context.Context, id uint32) error {
	ctx, op := s.inst.Start(ctx, "delete", idAttr(id))

	err := s.repo.Delete(ctx, id)
	op.Finish(ctx, outcome(err), err)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "attempt to delete a missing user", "id", id)
		}
		return fmt.Errorf("error deleting user %d: %w", id, err)
	}

	s.logger.Info(ctx, "user deleted", "id", id)
	return nil
}

// --- helpers below ---

func validate(u models.User) error {
	if u.Name == "" || u.Age == 0 {
		return fmt.Errorf("name and age are required: %w", common.ErrorInvalidInput)
	}
	return nil
}

func idAttr(id uint32) attribute.KeyValue {
	return attribute.Int64("usuarios.id", int64(id))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, common.ErrorNotFound):
		return "not_found"
	case errors.Is(err, common.ErrorAlreadyExists):
		return "conflict"
	case errors.Is(err, common.ErrorInvalidInput):
		return "invalid_input"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}
