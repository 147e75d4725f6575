package cli

import (
	"context"
	"fmt"

	"github.com/gtsdev/usuarios/internal/client/models"
)

func (a *App) List(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	items, err := a.client.List(ctx)
	if err != nil {
		a.report(err)
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No users")
		return nil
	}
	for _, item := range items {
		fmt.Fprintln(a.out, item)
	}
	return nil
}

func (a *App) Get(ctx context.Context, id uint32) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	u, err := a.client.Get(ctx, id)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintln(a.out, u)
	return nil
}

func (a *App) Create(ctx context.Context) error {
	id, err := GetUint(a.reader, "Enter id", a.out, 32)
	if err != nil {
		a.report(err)
		return err
	}

	u, err := a.promptFields()
	if err != nil {
		a.report(err)
		return err
	}
	u.ID = uint32(id)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	created, err := a.client.Create(ctx, u)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintf(a.out, "Created %s\n", created)
	return nil
}

func (a *App) Update(ctx context.Context, id uint32) error {
	u, err := a.promptFields()
	if err != nil {
		a.report(err)
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	updated, err := a.client.Update(ctx, id, u)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintf(a.out, "Updated %s\n", updated)
	return nil
}

func (a *App) Delete(ctx context.Context, id uint32) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	msg, err := a.client.Delete(ctx, id)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

// promptFields reads name and age. Validation is left to the server.
func (a *App) promptFields() (models.User, error) {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return models.User{}, err
	}

	age, err := GetUint(a.reader, "Enter age", a.out, 8)
	if err != nil {
		return models.User{}, err
	}

	return models.User{Name: name, Age: uint8(age)}, nil
}
