package repositories

import (
	"context"
	"errors"

	"backoffice/src/models"
	"backoffice/src/procedures"

	"gorm.io/gorm"
)

// ErrCustomerNotFound is returned for unknown customer codes.
var ErrCustomerNotFound = errors.New("customer not found")

type CustomerRepository interface {
	FindByCode(ctx context.Context, code string) (*models.Customer, error)
}

type customerRepo struct {
	db *gorm.DB
}

// NewCustomerRepository reads the customer directory of the control
// database.
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) FindByCode(ctx context.Context, code string) (*models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM "+procedures.CustomerLookup+"(?)", code).
		Scan(&customers).Error
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, ErrCustomerNotFound
	}
	return &customers[0], nil
}
