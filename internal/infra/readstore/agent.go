package readstore

import (
	"context"

	"github.com/Jes6241/parquimetros-api/internal/infra"
	"github.com/Jes6241/parquimetros-api/internal/pkg/pgconv"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AgentReadStore struct {
	db *pgxpool.Pool
}

func NewAgentReadStore(db *pgxpool.Pool) *AgentReadStore {
	return &AgentReadStore{db: db}
}

func (r *AgentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AgentView, error) {
	const query = `
		SELECT id, email, name, badge
		FROM agents
		WHERE id = $1 AND is_active = true`

	var view queries.AgentView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Email, &view.Name, &view.Badge)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("agent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find agent by id", err)
	}
	return &view, nil
}
