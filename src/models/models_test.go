package models_test

import (
	"testing"
	"time"

	"backoffice/src/models"

	"github.com/stretchr/testify/assert"
)

func TestDriverSaveArgs(t *testing.T) {
	hired := time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC)
	driver := models.Driver{
		ID:        12,
		Code:      "D012",
		FirstName: "Maria",
		LastName:  "Lopez",
		HireDate:  &hired,
		TeamID:    4,
		PayRate:   0.62,
	}

	args := driver.SaveArgs("dispatch1")

	assert.Len(t, args, 33)
	assert.Equal(t, int64(12), args[0])
	assert.Equal(t, "D012", args[1])
	assert.Equal(t, &hired, args[22])
	// optional foreign keys become NULL when not selected
	assert.Nil(t, args[25])
	assert.Equal(t, int64(4), args[26])
	assert.Nil(t, args[27])
	assert.Equal(t, 0.62, args[28])
	assert.Equal(t, "dispatch1", args[32])
}

func TestDriverCells(t *testing.T) {
	expires := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	driver := models.Driver{Code: "D1", FirstName: "Ann", MiddleName: "B", LastName: "Cole", LicenseExpires: &expires}

	cells := driver.Cells()
	assert.Len(t, cells, len(models.DriverColumns))
	assert.Equal(t, "Ann B Cole", cells[1])
	assert.Equal(t, "2026-01-31", cells[6])
	assert.Equal(t, "", cells[7])
}

func TestCellsMatchColumns(t *testing.T) {
	assert.Len(t, models.Agent{}.Cells(), len(models.AgentColumns))
	assert.Len(t, models.Owner{}.Cells(), len(models.OwnerColumns))
	assert.Len(t, models.Team{}.Cells(), len(models.TeamColumns))
}

func TestTeamSaveArgs(t *testing.T) {
	team := models.Team{Name: "Night shift", Status: "A"}
	args := team.SaveArgs("jdoe")
	assert.Len(t, args, 7)
	assert.Nil(t, args[4])
}
