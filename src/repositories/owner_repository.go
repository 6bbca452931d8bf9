package repositories

import (
	"context"

	"backoffice/src/models"
	"backoffice/src/procedures"
	"backoffice/src/schemas"
)

type OwnerRepository interface {
	List(ctx context.Context, query schemas.ListQuery) ([]models.Owner, error)
	GetByID(ctx context.Context, id int64) (*models.Owner, error)
	Save(ctx context.Context, owner *models.Owner, updatedBy string) (int64, error)
	Delete(ctx context.Context, id int64, deletedBy string) error
}

type ownerRepo struct {
	caller procedures.Caller
}

func NewOwnerRepository(caller procedures.Caller) OwnerRepository {
	return &ownerRepo{caller: caller}
}

func (r *ownerRepo) List(ctx context.Context, query schemas.ListQuery) ([]models.Owner, error) {
	var owners []models.Owner
	if err := r.caller.Select(ctx, &owners, procedures.OwnerList, query.Search, query.Status); err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (*models.Owner, error) {
	var owner models.Owner
	if err := r.caller.Get(ctx, &owner, procedures.OwnerGet, id); err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepo) Save(ctx context.Context, owner *models.Owner, updatedBy string) (int64, error) {
	result, err := r.caller.Save(ctx, procedures.OwnerSave, owner.SaveArgs(updatedBy)...)
	if err != nil {
		return 0, err
	}
	return result.ID, nil
}

func (r *ownerRepo) Delete(ctx context.Context, id int64, deletedBy string) error {
	_, err := r.caller.Save(ctx, procedures.OwnerDelete, id, deletedBy)
	return err
}
