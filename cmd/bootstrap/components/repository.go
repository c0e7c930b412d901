package components

import (
	"github.com/Jes6241/parquimetros-api/internal/infra/readstore"
	"github.com/Jes6241/parquimetros-api/internal/infra/repository"
	"github.com/Jes6241/parquimetros-api/internal/usecase/commands"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewSessionRepository,
			fx.As(new(commands.SessionRepository)),
		),
		fx.Annotate(
			repository.NewAgentRepository,
			fx.As(new(commands.AgentRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewSessionReadStore,
			fx.As(new(queries.SessionReadStore)),
		),
		fx.Annotate(
			readstore.NewZoneReadStore,
			fx.As(new(queries.ZoneReadStore)),
		),
		fx.Annotate(
			readstore.NewAgentReadStore,
			fx.As(new(queries.AgentReadStore)),
		),
	),
)
