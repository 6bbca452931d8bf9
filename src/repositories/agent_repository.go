package repositories

import (
	"context"

	"backoffice/src/models"
	"backoffice/src/procedures"
	"backoffice/src/schemas"
)

type AgentRepository interface {
	List(ctx context.Context, query schemas.ListQuery) ([]models.Agent, error)
	GetByID(ctx context.Context, id int64) (*models.Agent, error)
	Save(ctx context.Context, agent *models.Agent, updatedBy string) (int64, error)
	Delete(ctx context.Context, id int64, deletedBy string) error
}

type agentRepo struct {
	caller procedures.Caller
}

func NewAgentRepository(caller procedures.Caller) AgentRepository {
	return &agentRepo{caller: caller}
}

func (r *agentRepo) List(ctx context.Context, query schemas.ListQuery) ([]models.Agent, error) {
	var agents []models.Agent
	if err := r.caller.Select(ctx, &agents, procedures.AgentList, query.Search, query.Status); err != nil {
		return nil, err
	}
	return agents, nil
}

func (r *agentRepo) GetByID(ctx context.Context, id int64) (*models.Agent, error) {
	var agent models.Agent
	if err := r.caller.Get(ctx, &agent, procedures.AgentGet, id); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *agentRepo) Save(ctx context.Context, agent *models.Agent, updatedBy string) (int64, error) {
	result, err := r.caller.Save(ctx, procedures.AgentSave, agent.SaveArgs(updatedBy)...)
	if err != nil {
		return 0, err
	}
	return result.ID, nil
}

func (r *agentRepo) Delete(ctx context.Context, id int64, deletedBy string) error {
	_, err := r.caller.Save(ctx, procedures.AgentDelete, id, deletedBy)
	return err
}
