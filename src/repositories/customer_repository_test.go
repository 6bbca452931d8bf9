package repositories_test

import (
	"context"
	"regexp"
	"testing"

	"backoffice/src/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newControlDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestCustomerRepositoryFindByCode(t *testing.T) {
	columns := []string{"code", "name", "db_host", "db_port", "db_name", "db_user", "db_password", "active"}

	t.Run("found", func(t *testing.T) {
		db, mock := newControlDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_customer_lookup($1)")).
			WithArgs("ACME").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("ACME", "Acme Freight", "db.internal", 5432, "acme", "acme_app", "secret:acme/db", true))

		customer, err := repositories.NewCustomerRepository(db).FindByCode(context.Background(), "ACME")
		require.NoError(t, err)
		assert.Equal(t, "acme", customer.DBName)
		assert.Equal(t, 5432, customer.DBPort)
		assert.True(t, customer.Active)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown code", func(t *testing.T) {
		db, mock := newControlDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_customer_lookup($1)")).
			WithArgs("NOPE").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repositories.NewCustomerRepository(db).FindByCode(context.Background(), "NOPE")
		assert.ErrorIs(t, err, repositories.ErrCustomerNotFound)
	})
}
