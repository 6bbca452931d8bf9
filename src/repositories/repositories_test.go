package repositories_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"backoffice/src/models"
	"backoffice/src/procedures"
	"backoffice/src/repositories"
	"backoffice/src/schemas"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaller(t *testing.T) (procedures.Caller, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return procedures.NewCaller(sqlx.NewDb(db, "sqlmock"), "ACME"), mock
}

func resultRows(id int64, code int, message string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "result_code", "message"}).AddRow(id, code, message)
}

func anyArgs(n int) []driver.Value {
	args := make([]driver.Value, n)
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	return args
}

func TestDriverRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_driver_list($1, $2)")).
			WithArgs("smi", "A").
			WillReturnRows(sqlmock.NewRows([]string{"driver_id", "driver_code", "first_name", "last_name", "status"}).
				AddRow(1, "D001", "John", "Smith", "A"))

		drivers, err := repositories.NewDriverRepository(caller).List(ctx, schemas.ListQuery{Search: "smi", Status: "A"})
		require.NoError(t, err)
		require.Len(t, drivers, 1)
		assert.Equal(t, "D001", drivers[0].Code)
		assert.Equal(t, "John Smith", drivers[0].FullName())
	})

	t.Run("get missing driver", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_driver_get($1)")).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"driver_id"}))

		_, err := repositories.NewDriverRepository(caller).GetByID(ctx, 99)
		assert.ErrorIs(t, err, procedures.ErrNotFound)
	})

	t.Run("save sends every positional parameter", func(t *testing.T) {
		caller, mock := newCaller(t)
		record := &models.Driver{Code: "D002", FirstName: "Ann", LastName: "Lee", Status: "A"}
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_driver_save(")).
			WithArgs(anyArgs(len(record.SaveArgs("jdoe")))...).
			WillReturnRows(resultRows(12, 0, ""))

		id, err := repositories.NewDriverRepository(caller).Save(ctx, record, "jdoe")
		require.NoError(t, err)
		assert.Equal(t, int64(12), id)
	})

	t.Run("save rejected by the procedure", func(t *testing.T) {
		caller, mock := newCaller(t)
		record := &models.Driver{Code: "D001"}
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_driver_save(")).
			WithArgs(anyArgs(len(record.SaveArgs("jdoe")))...).
			WillReturnRows(resultRows(0, 3, "Driver code already in use"))

		_, err := repositories.NewDriverRepository(caller).Save(ctx, record, "jdoe")
		var procErr *procedures.ProcedureError
		require.True(t, errors.As(err, &procErr))
		assert.Equal(t, "Driver code already in use", procErr.Message)
	})

	t.Run("delete", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_driver_delete($1, $2)")).
			WithArgs(int64(12), "jdoe").
			WillReturnRows(resultRows(12, 0, ""))

		assert.NoError(t, repositories.NewDriverRepository(caller).Delete(ctx, 12, "jdoe"))
	})
}

func TestAgentAndOwnerRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("agent save", func(t *testing.T) {
		caller, mock := newCaller(t)
		agent := &models.Agent{Code: "AG1", Name: "North agency", Status: "A"}
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_agent_save(")).
			WithArgs(anyArgs(len(agent.SaveArgs("jdoe")))...).
			WillReturnRows(resultRows(4, 0, ""))

		id, err := repositories.NewAgentRepository(caller).Save(ctx, agent, "jdoe")
		require.NoError(t, err)
		assert.Equal(t, int64(4), id)
	})

	t.Run("owner list", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_owner_list($1, $2)")).
			WithArgs("", "").
			WillReturnRows(sqlmock.NewRows([]string{"owner_id", "owner_code", "owner_name"}).
				AddRow(1, "OW1", "Fleet One").
				AddRow(2, "OW2", "Fleet Two"))

		owners, err := repositories.NewOwnerRepository(caller).List(ctx, schemas.ListQuery{})
		require.NoError(t, err)
		assert.Len(t, owners, 2)
	})
}

func TestTeamRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save without lead driver", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_team_save($1, $2, $3, $4, $5, $6, $7)")).
			WithArgs(int64(0), "T1", "Night shift", "Maria", nil, "A", "jdoe").
			WillReturnRows(resultRows(5, 0, ""))

		team := &models.Team{Code: "T1", Name: "Night shift", Dispatcher: "Maria", Status: "A"}
		id, err := repositories.NewTeamRepository(caller).Save(ctx, team, "jdoe")
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("members", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_team_members($1)")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"team_id", "driver_id", "driver_code", "driver_name", "member_role"}).
				AddRow(5, 1, "D001", "John Smith", "LEAD").
				AddRow(5, 2, "D002", "Ann Lee", "CO"))

		members, err := repositories.NewTeamRepository(caller).Members(ctx, 5)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "LEAD", members[0].Role)
	})

	t.Run("add member rejected", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_team_member_add($1, $2, $3, $4)")).
			WithArgs(int64(5), int64(1), "CO", "jdoe").
			WillReturnRows(resultRows(0, 2, "Driver already belongs to team T2"))

		err := repositories.NewTeamRepository(caller).AddMember(ctx, 5, 1, "CO", "jdoe")
		var procErr *procedures.ProcedureError
		require.ErrorAs(t, err, &procErr)
		assert.Equal(t, 2, procErr.Code)
	})

	t.Run("remove member", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_team_member_remove($1, $2, $3)")).
			WithArgs(int64(5), int64(1), "jdoe").
			WillReturnRows(resultRows(5, 0, ""))

		assert.NoError(t, repositories.NewTeamRepository(caller).RemoveMember(ctx, 5, 1, "jdoe"))
	})
}

func TestSubRecordRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("addresses by entity", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_address_list($1, $2)")).
			WithArgs("DRIVER", int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"address_id", "entity_type", "entity_id", "city"}).
				AddRow(1, "DRIVER", 3, "Dallas"))

		addresses, err := repositories.NewSubRecordRepository(caller).Addresses(ctx, "DRIVER", 3)
		require.NoError(t, err)
		require.Len(t, addresses, 1)
		assert.Equal(t, "Dallas", addresses[0].City)
	})

	t.Run("save contact", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_contact_save($1, $2, $3, $4, $5, $6, $7, $8, $9)")).
			WithArgs(int64(0), "AGENT", int64(2), "Bob", "Dispatch", "555-0100", "bob@example.com", true, "jdoe").
			WillReturnRows(resultRows(8, 0, ""))

		contact := &models.Contact{EntityType: "AGENT", EntityID: 2, Name: "Bob", Title: "Dispatch",
			Phone: "555-0100", Email: "bob@example.com", IsPrimary: true}
		id, err := repositories.NewSubRecordRepository(caller).SaveContact(ctx, contact, "jdoe")
		require.NoError(t, err)
		assert.Equal(t, int64(8), id)
	})

	t.Run("comments", func(t *testing.T) {
		caller, mock := newCaller(t)
		created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_comment_list($1, $2)")).
			WithArgs("TEAM", int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"comment_id", "entity_type", "entity_id", "body", "created_by", "created_at"}).
				AddRow(1, "TEAM", 1, "Moved to nights", "jdoe", created))

		comments, err := repositories.NewSubRecordRepository(caller).Comments(ctx, "TEAM", 1)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, created, comments[0].CreatedAt)
	})

	t.Run("delete comment", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_comment_delete($1, $2, $3, $4)")).
			WithArgs(int64(1), "TEAM", int64(4), "jdoe").
			WillReturnRows(resultRows(1, 0, ""))

		assert.NoError(t, repositories.NewSubRecordRepository(caller).DeleteComment(ctx, "TEAM", 4, 1, "jdoe"))
	})

	t.Run("delete address owned by another entity", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_address_delete($1, $2, $3, $4)")).
			WithArgs(int64(555), "OWNER", int64(3), "jdoe").
			WillReturnRows(resultRows(0, 2, "Address not found"))

		err := repositories.NewSubRecordRepository(caller).DeleteAddress(ctx, "OWNER", 3, 555, "jdoe")
		var procErr *procedures.ProcedureError
		require.True(t, errors.As(err, &procErr))
		assert.Equal(t, "Address not found", procErr.Message)
	})
}

func TestLookupRepository(t *testing.T) {
	caller, mock := newCaller(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_lookup($1)")).
		WithArgs("states").
		WillReturnRows(sqlmock.NewRows([]string{"value", "text"}).AddRow("TX", "Texas").AddRow("OK", "Oklahoma"))

	items, err := repositories.NewLookupRepository(caller).Lookup(context.Background(), "states")
	require.NoError(t, err)
	assert.Equal(t, []models.LookupItem{{Value: "TX", Text: "Texas"}, {Value: "OK", Text: "Oklahoma"}}, items)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("login", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_user_login($1, $2)")).
			WithArgs("jdoe", "secret").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_name", "display_name", "result_code", "message"}).
				AddRow(7, "jdoe", "John Doe", 0, ""))

		result, err := repositories.NewUserRepository(caller).Login(ctx, "jdoe", "secret")
		require.NoError(t, err)
		assert.Equal(t, int64(7), result.UserID)
		assert.Equal(t, "John Doe", result.DisplayName)
	})

	t.Run("permissions", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_user_permissions($1)")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"permission_code"}).AddRow("DRIVER_VIEW").AddRow("TEAM_VIEW"))

		perms, err := repositories.NewUserRepository(caller).Permissions(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, []string{"DRIVER_VIEW", "TEAM_VIEW"}, perms)
	})

	t.Run("logout", func(t *testing.T) {
		caller, mock := newCaller(t)
		mock.ExpectExec(regexp.QuoteMeta("CALL sp_user_logout($1)")).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repositories.NewUserRepository(caller).Logout(ctx, 7))
	})
}
