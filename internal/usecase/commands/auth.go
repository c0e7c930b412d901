package commands

import (
	"context"
	"log/slog"

	"github.com/Jes6241/parquimetros-api/internal/domain/agent"
	"github.com/Jes6241/parquimetros-api/internal/infra"
	"github.com/Jes6241/parquimetros-api/internal/pkg/errs"
	"github.com/Jes6241/parquimetros-api/internal/pkg/jwt"
	"github.com/Jes6241/parquimetros-api/internal/pkg/password"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrAgentInactive      = errs.New("agent inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Token string
	Agent *queries.AgentView
}

type AgentRepository interface {
	FindByEmail(ctx context.Context, email string) (*agent.Agent, error)
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	agentRepo  AgentRepository
	jwtService *jwt.Service
}

func NewAuthCommands(agentRepo AgentRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		agentRepo:  agentRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	found, err := a.agentRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Verify(found.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !found.IsActive() {
		return nil, errs.Mark(agent.ErrInactive, ErrAgentInactive)
	}

	token, err := a.jwtService.GenerateToken(found.ID(), found.Email())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.Info("agent logged in", "agent_id", found.ID(), "badge", found.Badge())

	return &LoginResult{
		Token: token,
		Agent: &queries.AgentView{
			ID:    found.ID(),
			Email: found.Email(),
			Name:  found.Name(),
			Badge: found.Badge(),
		},
	}, nil
}
