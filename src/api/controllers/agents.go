package controllers

import (
	"context"

	"backoffice/src/models"
	"backoffice/src/schemas"
)

type AgentsControllerI interface {
	ListAgents(ctx context.Context, query schemas.ListQuery) ([]models.Agent, error)
	GetAgent(ctx context.Context, id int64) (*schemas.AgentForm, error)
	SaveAgent(ctx context.Context, form *schemas.AgentForm, user string) (int64, error)
	DeleteAgent(ctx context.Context, id int64, user string) error
}

func (c *Controller) ListAgents(ctx context.Context, query schemas.ListQuery) ([]models.Agent, error) {
	agents, err := c.Agents.List(ctx, query)
	return agents, translate(err, "")
}

func (c *Controller) GetAgent(ctx context.Context, id int64) (*schemas.AgentForm, error) {
	agent, err := c.Agents.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Agent not found")
	}
	return schemas.AgentFormFromModel(agent), nil
}

func (c *Controller) SaveAgent(ctx context.Context, form *schemas.AgentForm, user string) (int64, error) {
	if err := schemas.Validate(form); err != nil {
		return 0, err
	}
	id, err := c.Agents.Save(ctx, form.ToModel(), user)
	return id, translate(err, "Agent not found")
}

func (c *Controller) DeleteAgent(ctx context.Context, id int64, user string) error {
	return translate(c.Agents.Delete(ctx, id, user), "Agent not found")
}
