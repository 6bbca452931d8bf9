package schemas_test

import (
	"net/url"
	"testing"
	"time"

	"backoffice/src/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDriverValues() url.Values {
	return url.Values{
		"id":              {"0"},
		"code":            {" d100 "},
		"first_name":      {"Maria"},
		"last_name":       {"Lopez"},
		"status":          {"a"},
		"state":           {"tx"},
		"email":           {"maria@example.com"},
		"hire_date":       {"2022-04-01"},
		"license_expires": {"2027/06/30"},
		"driver_type":     {"C"},
		"team_id":         {"4"},
		"pay_rate":        {"0.58"},
		"pay_type":        {"m"},
	}
}

func TestDriverFormBind(t *testing.T) {
	var form schemas.DriverForm
	require.NoError(t, form.Bind(validDriverValues()))

	assert.Equal(t, "D100", form.Code)
	assert.Equal(t, "A", form.Status)
	assert.Equal(t, "TX", form.State)
	assert.Equal(t, int64(4), form.TeamID)
	assert.Equal(t, 0.58, form.PayRate)
	require.NotNil(t, form.HireDate)
	assert.Equal(t, time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC), *form.HireDate)
	require.NotNil(t, form.LicenseExpires)
	assert.Equal(t, 2027, form.LicenseExpires.Year())
	assert.Nil(t, form.BirthDate)
	assert.NoError(t, schemas.Validate(&form))
}

func TestDriverFormBindConversionErrors(t *testing.T) {
	values := validDriverValues()
	values.Set("team_id", "four")
	values.Set("hire_date", "April 1st")

	var form schemas.DriverForm
	err := form.Bind(values)

	var verr *schemas.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be a whole number", verr.Fields["team_id"])
	assert.Contains(t, verr.Fields["hire_date"], "must be a date")
}

func TestDriverFormValidate(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		form := schemas.DriverForm{}
		err := schemas.Validate(&form)

		var verr *schemas.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "is required", verr.Fields["code"])
		assert.Equal(t, "is required", verr.Fields["first_name"])
		assert.Equal(t, "is required", verr.Fields["driver_type"])
	})

	t.Run("terminated drivers need a termination date", func(t *testing.T) {
		var form schemas.DriverForm
		values := validDriverValues()
		values.Set("status", "T")
		require.NoError(t, form.Bind(values))

		var verr *schemas.ValidationError
		require.ErrorAs(t, schemas.Validate(&form), &verr)
		assert.Equal(t, "is required", verr.Fields["termination_date"])

		values.Set("termination_date", "2024-01-31")
		require.NoError(t, form.Bind(values))
		assert.NoError(t, schemas.Validate(&form))
	})

	t.Run("owner operators need an owner", func(t *testing.T) {
		var form schemas.DriverForm
		values := validDriverValues()
		values.Set("driver_type", "O")
		require.NoError(t, form.Bind(values))

		var verr *schemas.ValidationError
		require.ErrorAs(t, schemas.Validate(&form), &verr)
		assert.Equal(t, "is required", verr.Fields["owner_id"])
	})

	t.Run("format rules", func(t *testing.T) {
		var form schemas.DriverForm
		values := validDriverValues()
		values.Set("email", "not-an-email")
		values.Set("state", "TEX")
		values.Set("pay_type", "X")
		require.NoError(t, form.Bind(values))

		var verr *schemas.ValidationError
		require.ErrorAs(t, schemas.Validate(&form), &verr)
		assert.Equal(t, "must be a valid email address", verr.Fields["email"])
		assert.Equal(t, "must be exactly 2 characters", verr.Fields["state"])
		assert.Equal(t, "must be one of M H P F", verr.Fields["pay_type"])
	})
}

func TestDriverFormRoundTrip(t *testing.T) {
	var form schemas.DriverForm
	require.NoError(t, form.Bind(validDriverValues()))

	back := schemas.DriverFormFromModel(form.ToModel())
	assert.Equal(t, &form, back)
}

func TestApplyErrors(t *testing.T) {
	form := schemas.AgentForm{}
	err := schemas.Validate(&form)
	fields := schemas.ApplyErrors(form.Fields(), err)

	byName := map[string]schemas.FormField{}
	for _, f := range fields {
		byName[f.Name] = f
	}
	assert.Equal(t, "is required", byName["code"].Error)
	assert.Equal(t, "is required", byName["status"].Error)
	assert.Empty(t, byName["company"].Error)
}

func TestPasswordForm(t *testing.T) {
	var form schemas.PasswordForm
	require.NoError(t, form.Bind(url.Values{"current": {"old"}, "new": {"longenough1"}, "confirm": {"different1"}}))

	var verr *schemas.ValidationError
	require.ErrorAs(t, schemas.Validate(&form), &verr)
	assert.Equal(t, "does not match", verr.Fields["confirm"])
}

func TestLoginFormKeepsPasswordVerbatim(t *testing.T) {
	var form schemas.LoginForm
	require.NoError(t, form.Bind(url.Values{"customer": {" acme"}, "username": {"jdoe "}, "password": {" p@ss "}}))

	assert.Equal(t, "ACME", form.Customer)
	assert.Equal(t, "jdoe", form.UserName)
	assert.Equal(t, " p@ss ", form.Password)
}

func TestTeamMemberForm(t *testing.T) {
	var form schemas.TeamMemberForm
	require.NoError(t, form.Bind(url.Values{"driver_id": {"12"}, "role": {"co"}}))
	assert.NoError(t, schemas.Validate(&form))

	require.NoError(t, form.Bind(url.Values{"role": {"boss"}}))
	var verr *schemas.ValidationError
	require.ErrorAs(t, schemas.Validate(&form), &verr)
	assert.Contains(t, verr.Fields, "driver_id")
	assert.Contains(t, verr.Fields, "role")
}

func TestListQueryFromValues(t *testing.T) {
	q := schemas.ListQueryFromValues(url.Values{"search": {" smith "}, "status": {"a"}})
	assert.Equal(t, schemas.ListQuery{Search: "smith", Status: "A"}, q)
}

func TestParseMergesConversionAndValidation(t *testing.T) {
	var form schemas.TeamMemberForm
	err := schemas.Parse(&form, url.Values{"driver_id": {"abc"}, "role": {"boss"}})

	var verr *schemas.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be a whole number", verr.Fields["driver_id"])
	assert.Contains(t, verr.Fields["role"], "must be one of")

	form = schemas.TeamMemberForm{}
	assert.NoError(t, schemas.Parse(&form, url.Values{"driver_id": {"4"}, "role": {"co"}}))
	assert.Equal(t, "CO", form.Role)
}
