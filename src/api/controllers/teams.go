package controllers

import (
	"context"

	"backoffice/src/models"
	"backoffice/src/schemas"
)

type TeamsControllerI interface {
	ListTeams(ctx context.Context, query schemas.ListQuery) ([]models.Team, error)
	GetTeam(ctx context.Context, id int64) (*schemas.TeamForm, error)
	SaveTeam(ctx context.Context, form *schemas.TeamForm, user string) (int64, error)
	DeleteTeam(ctx context.Context, id int64, user string) error
	TeamMembers(ctx context.Context, teamID int64) ([]models.TeamMember, error)
	AddTeamMember(ctx context.Context, teamID int64, form *schemas.TeamMemberForm, user string) error
	RemoveTeamMember(ctx context.Context, teamID, driverID int64, user string) error
}

func (c *Controller) ListTeams(ctx context.Context, query schemas.ListQuery) ([]models.Team, error) {
	teams, err := c.Teams.List(ctx, query)
	return teams, translate(err, "")
}

func (c *Controller) GetTeam(ctx context.Context, id int64) (*schemas.TeamForm, error) {
	team, err := c.Teams.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Team not found")
	}
	return schemas.TeamFormFromModel(team), nil
}

func (c *Controller) SaveTeam(ctx context.Context, form *schemas.TeamForm, user string) (int64, error) {
	if err := schemas.Validate(form); err != nil {
		return 0, err
	}
	id, err := c.Teams.Save(ctx, form.ToModel(), user)
	return id, translate(err, "Team not found")
}

func (c *Controller) DeleteTeam(ctx context.Context, id int64, user string) error {
	return translate(c.Teams.Delete(ctx, id, user), "Team not found")
}

func (c *Controller) TeamMembers(ctx context.Context, teamID int64) ([]models.TeamMember, error) {
	members, err := c.Teams.Members(ctx, teamID)
	return members, translate(err, "Team not found")
}

func (c *Controller) AddTeamMember(ctx context.Context, teamID int64, form *schemas.TeamMemberForm, user string) error {
	if err := schemas.Validate(form); err != nil {
		return err
	}
	return translate(c.Teams.AddMember(ctx, teamID, form.DriverID, form.Role, user), "Team not found")
}

func (c *Controller) RemoveTeamMember(ctx context.Context, teamID, driverID int64, user string) error {
	return translate(c.Teams.RemoveMember(ctx, teamID, driverID, user), "Team member not found")
}
