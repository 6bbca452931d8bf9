package repositories

import (
	"context"

	"backoffice/src/models"
	"backoffice/src/procedures"
	"backoffice/src/schemas"
)

type TeamRepository interface {
	List(ctx context.Context, query schemas.ListQuery) ([]models.Team, error)
	GetByID(ctx context.Context, id int64) (*models.Team, error)
	Save(ctx context.Context, team *models.Team, updatedBy string) (int64, error)
	Delete(ctx context.Context, id int64, deletedBy string) error
	Members(ctx context.Context, teamID int64) ([]models.TeamMember, error)
	AddMember(ctx context.Context, teamID, driverID int64, role, updatedBy string) error
	RemoveMember(ctx context.Context, teamID, driverID int64, updatedBy string) error
}

type teamRepo struct {
	caller procedures.Caller
}

func NewTeamRepository(caller procedures.Caller) TeamRepository {
	return &teamRepo{caller: caller}
}

func (r *teamRepo) List(ctx context.Context, query schemas.ListQuery) ([]models.Team, error) {
	var teams []models.Team
	if err := r.caller.Select(ctx, &teams, procedures.TeamList, query.Search, query.Status); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepo) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	var team models.Team
	if err := r.caller.Get(ctx, &team, procedures.TeamGet, id); err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepo) Save(ctx context.Context, team *models.Team, updatedBy string) (int64, error) {
	result, err := r.caller.Save(ctx, procedures.TeamSave, team.SaveArgs(updatedBy)...)
	if err != nil {
		return 0, err
	}
	return result.ID, nil
}

func (r *teamRepo) Delete(ctx context.Context, id int64, deletedBy string) error {
	_, err := r.caller.Save(ctx, procedures.TeamDelete, id, deletedBy)
	return err
}

func (r *teamRepo) Members(ctx context.Context, teamID int64) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.caller.Select(ctx, &members, procedures.TeamMembers, teamID); err != nil {
		return nil, err
	}
	return members, nil
}

// AddMember calls sp_team_member_add(team_id, driver_id, role, updated_by).
// The procedure rejects drivers that already belong to another team.
func (r *teamRepo) AddMember(ctx context.Context, teamID, driverID int64, role, updatedBy string) error {
	_, err := r.caller.Save(ctx, procedures.TeamMemberAdd, teamID, driverID, role, updatedBy)
	return err
}

func (r *teamRepo) RemoveMember(ctx context.Context, teamID, driverID int64, updatedBy string) error {
	_, err := r.caller.Save(ctx, procedures.TeamMemberRemove, teamID, driverID, updatedBy)
	return err
}
