//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/Jes6241/parquimetros-api/internal/domain/agent"
	"github.com/Jes6241/parquimetros-api/internal/pkg/jwt"
	"github.com/Jes6241/parquimetros-api/internal/pkg/password"
	"github.com/Jes6241/parquimetros-api/internal/usecase/commands"
	commandsmock "github.com/Jes6241/parquimetros-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	agentEmail    = "agente@municipio.gob.mx"
	agentPassword = "secret123"
)

func newAuthUnderTest(t *testing.T) (commands.AuthCommands, *commandsmock.MockAgentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockAgentRepository(ctrl)
	jwtService := jwt.NewService("test-secret", time.Hour)
	return commands.NewAuthCommands(repo, jwtService), repo
}

func storedAgent(t *testing.T, active bool) *agent.Agent {
	t.Helper()
	hash, err := password.Hash(agentPassword)
	require.NoError(t, err)
	now := time.Now()
	return agent.ReconstructAgent(uuid.New(), agentEmail, "Agente Uno", "A-001", hash, active, now, now)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns a token and the agent view", func(t *testing.T) {
		sut, repo := newAuthUnderTest(t)
		found := storedAgent(t, true)
		repo.EXPECT().FindByEmail(gomock.Any(), agentEmail).Return(found, nil).Times(1)

		result, err := sut.Login(ctx, agentEmail, agentPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, found.ID(), result.Agent.ID)
		assert.Equal(t, "A-001", result.Agent.Badge)
	})

	t.Run("wrong password", func(t *testing.T) {
		sut, repo := newAuthUnderTest(t)
		repo.EXPECT().FindByEmail(gomock.Any(), agentEmail).Return(storedAgent(t, true), nil).Times(1)

		_, err := sut.Login(ctx, agentEmail, "wrong")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same credential error", func(t *testing.T) {
		sut, repo := newAuthUnderTest(t)
		repo.EXPECT().FindByEmail(gomock.Any(), agentEmail).Return(nil, notFoundErr()).Times(1)

		_, err := sut.Login(ctx, agentEmail, agentPassword)
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive agent", func(t *testing.T) {
		sut, repo := newAuthUnderTest(t)
		repo.EXPECT().FindByEmail(gomock.Any(), agentEmail).Return(storedAgent(t, false), nil).Times(1)

		_, err := sut.Login(ctx, agentEmail, agentPassword)
		require.ErrorIs(t, err, commands.ErrAgentInactive)
	})
}
