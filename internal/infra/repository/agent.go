package repository

import (
	"context"
	"time"

	"github.com/Jes6241/parquimetros-api/internal/domain/agent"
	"github.com/Jes6241/parquimetros-api/internal/infra"
	"github.com/Jes6241/parquimetros-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AgentRepository struct {
	db *pgxpool.Pool
}

func NewAgentRepository(db *pgxpool.Pool) *AgentRepository {
	return &AgentRepository{db: db}
}

func (r *AgentRepository) FindByEmail(ctx context.Context, email string) (*agent.Agent, error) {
	const query = `
		SELECT id, email, name, badge, password_hash, is_active, created_at, updated_at
		FROM agents
		WHERE email = $1`

	var (
		id           uuid.UUID
		foundEmail   string
		name         string
		badge        string
		passwordHash string
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := r.db.QueryRow(ctx, query, email).Scan(
		&id, &foundEmail, &name, &badge, &passwordHash, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("agent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find agent by email", err)
	}

	return agent.ReconstructAgent(id, foundEmail, name, badge, passwordHash, isActive, createdAt, updatedAt), nil
}
