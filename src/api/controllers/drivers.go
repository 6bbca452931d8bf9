package controllers

import (
	"context"

	"backoffice/src/models"
	"backoffice/src/schemas"
)

type DriversControllerI interface {
	ListDrivers(ctx context.Context, query schemas.ListQuery) ([]models.Driver, error)
	GetDriver(ctx context.Context, id int64) (*schemas.DriverForm, error)
	SaveDriver(ctx context.Context, form *schemas.DriverForm, user string) (int64, error)
	DeleteDriver(ctx context.Context, id int64, user string) error
}

func (c *Controller) ListDrivers(ctx context.Context, query schemas.ListQuery) ([]models.Driver, error) {
	drivers, err := c.Drivers.List(ctx, query)
	return drivers, translate(err, "")
}

func (c *Controller) GetDriver(ctx context.Context, id int64) (*schemas.DriverForm, error) {
	driver, err := c.Drivers.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Driver not found")
	}
	return schemas.DriverFormFromModel(driver), nil
}

// SaveDriver validates form and upserts it; id 0 creates a new driver. The
// procedure still has the last word on business rules.
func (c *Controller) SaveDriver(ctx context.Context, form *schemas.DriverForm, user string) (int64, error) {
	if err := schemas.Validate(form); err != nil {
		return 0, err
	}
	id, err := c.Drivers.Save(ctx, form.ToModel(), user)
	return id, translate(err, "Driver not found")
}

func (c *Controller) DeleteDriver(ctx context.Context, id int64, user string) error {
	return translate(c.Drivers.Delete(ctx, id, user), "Driver not found")
}
