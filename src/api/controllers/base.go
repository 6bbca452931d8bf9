package controllers

import (
	"errors"

	"backoffice/src/procedures"
	"backoffice/src/repositories"
	"backoffice/src/utils"
)

// Controller serves the maintenance screens of one customer. It is built per
// request around the caller of the logged in customer's database.
type Controller struct {
	Drivers    repositories.DriverRepository
	Agents     repositories.AgentRepository
	Owners     repositories.OwnerRepository
	Teams      repositories.TeamRepository
	SubRecords repositories.SubRecordRepository
	Lookups    repositories.LookupRepository
	Users      repositories.UserRepository
}

func NewController(caller procedures.Caller) *Controller {
	return &Controller{
		Drivers:    repositories.NewDriverRepository(caller),
		Agents:     repositories.NewAgentRepository(caller),
		Owners:     repositories.NewOwnerRepository(caller),
		Teams:      repositories.NewTeamRepository(caller),
		SubRecords: repositories.NewSubRecordRepository(caller),
		Lookups:    repositories.NewLookupRepository(caller),
		Users:      repositories.NewUserRepository(caller),
	}
}

// translate turns procedure level failures into errors the handlers can show.
// A rejection carries a message written for users; anything else stays as is
// and ends up as the generic failure message.
func translate(err error, notFound string) error {
	var procErr *procedures.ProcedureError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &procErr):
		return utils.UnprocessableEntity(procErr.Message)
	case errors.Is(err, procedures.ErrNotFound):
		return utils.NotFound(notFound)
	}
	return err
}
