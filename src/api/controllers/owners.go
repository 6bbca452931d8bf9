package controllers

import (
	"context"

	"backoffice/src/models"
	"backoffice/src/schemas"
)

type OwnersControllerI interface {
	ListOwners(ctx context.Context, query schemas.ListQuery) ([]models.Owner, error)
	GetOwner(ctx context.Context, id int64) (*schemas.OwnerForm, error)
	SaveOwner(ctx context.Context, form *schemas.OwnerForm, user string) (int64, error)
	DeleteOwner(ctx context.Context, id int64, user string) error
}

func (c *Controller) ListOwners(ctx context.Context, query schemas.ListQuery) ([]models.Owner, error) {
	owners, err := c.Owners.List(ctx, query)
	return owners, translate(err, "")
}

func (c *Controller) GetOwner(ctx context.Context, id int64) (*schemas.OwnerForm, error) {
	owner, err := c.Owners.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Owner not found")
	}
	return schemas.OwnerFormFromModel(owner), nil
}

func (c *Controller) SaveOwner(ctx context.Context, form *schemas.OwnerForm, user string) (int64, error) {
	if err := schemas.Validate(form); err != nil {
		return 0, err
	}
	id, err := c.Owners.Save(ctx, form.ToModel(), user)
	return id, translate(err, "Owner not found")
}

func (c *Controller) DeleteOwner(ctx context.Context, id int64, user string) error {
	return translate(c.Owners.Delete(ctx, id, user), "Owner not found")
}
