package repositories

import (
	"context"

	"backoffice/src/models"
	"backoffice/src/procedures"
)

type LookupRepository interface {
	Lookup(ctx context.Context, list string) ([]models.LookupItem, error)
}

type lookupRepo struct {
	caller procedures.Caller
}

func NewLookupRepository(caller procedures.Caller) LookupRepository {
	return &lookupRepo{caller: caller}
}

// Lookup calls sp_lookup(list_name); the procedure knows every dropdown the
// screens use (states, driver_types, owners, teams...).
func (r *lookupRepo) Lookup(ctx context.Context, list string) ([]models.LookupItem, error) {
	var items []models.LookupItem
	if err := r.caller.Select(ctx, &items, procedures.Lookup, list); err != nil {
		return nil, err
	}
	return items, nil
}
