package queries

import (
	"context"

	"github.com/google/uuid"
)

type AgentView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Badge string    `json:"badge"`
}

type AgentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AgentView, error)
}

type AgentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AgentView, error)
}

type agentQueriesImpl struct {
	readStore AgentReadStore
}

func NewAgentQueries(readStore AgentReadStore) AgentQueries {
	return &agentQueriesImpl{readStore: readStore}
}

func (q *agentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AgentView, error) {
	return q.readStore.FindByID(ctx, id)
}
