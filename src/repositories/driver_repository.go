package repositories

import (
	"context"

	"backoffice/src/models"
	"backoffice/src/procedures"
	"backoffice/src/schemas"
)

type DriverRepository interface {
	List(ctx context.Context, query schemas.ListQuery) ([]models.Driver, error)
	GetByID(ctx context.Context, id int64) (*models.Driver, error)
	Save(ctx context.Context, driver *models.Driver, updatedBy string) (int64, error)
	Delete(ctx context.Context, id int64, deletedBy string) error
}

type driverRepo struct {
	caller procedures.Caller
}

func NewDriverRepository(caller procedures.Caller) DriverRepository {
	return &driverRepo{caller: caller}
}

// List calls sp_driver_list(search, status). An empty status lists every
// driver.
func (r *driverRepo) List(ctx context.Context, query schemas.ListQuery) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := r.caller.Select(ctx, &drivers, procedures.DriverList, query.Search, query.Status); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *driverRepo) GetByID(ctx context.Context, id int64) (*models.Driver, error) {
	var driver models.Driver
	if err := r.caller.Get(ctx, &driver, procedures.DriverGet, id); err != nil {
		return nil, err
	}
	return &driver, nil
}

// Save calls sp_driver_save with the 33 parameters of Driver.SaveArgs and
// returns the id of the inserted or updated driver.
func (r *driverRepo) Save(ctx context.Context, driver *models.Driver, updatedBy string) (int64, error) {
	result, err := r.caller.Save(ctx, procedures.DriverSave, driver.SaveArgs(updatedBy)...)
	if err != nil {
		return 0, err
	}
	return result.ID, nil
}

func (r *driverRepo) Delete(ctx context.Context, id int64, deletedBy string) error {
	_, err := r.caller.Save(ctx, procedures.DriverDelete, id, deletedBy)
	return err
}
