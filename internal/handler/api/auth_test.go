//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Jes6241/parquimetros-api/internal/handler/api"
	"github.com/Jes6241/parquimetros-api/internal/pkg/config"
	"github.com/Jes6241/parquimetros-api/internal/pkg/cookie"
	"github.com/Jes6241/parquimetros-api/internal/pkg/jwt"
	"github.com/Jes6241/parquimetros-api/internal/usecase/commands"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"
	"github.com/Jes6241/parquimetros-api/tests/common/httptest"
	commandsmock "github.com/Jes6241/parquimetros-api/tests/mock/commands"
	queriesmock "github.com/Jes6241/parquimetros-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockAgentQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAgentQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.NewTestConfig().Cookie)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Stand-in for the auth middleware
		if c.GetHeader("Authorization") != "" {
			c.Set("agent_id", uuid.New().String())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	body := map[string]any{"email": "agente@municipio.gob.mx", "password": "secret123"}
	agentView := &queries.AgentView{
		ID:    uuid.New(),
		Email: "agente@municipio.gob.mx",
		Name:  "Agente Uno",
		Badge: "A-001",
	}

	s.Run("success: returns 200 and sets the access token cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "agente@municipio.gob.mx", "secret123").
			Return(&commands.LoginResult{Token: "test-jwt-token", Agent: agentView}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, w.Code)

		var resp map[string]any
		httptest.DecodeBody(s.T(), w, &resp)
		s.Equal(true, resp["success"])

		found := false
		for _, c := range w.Result().Cookies() {
			if c.Name == cookie.AccessTokenCookieName {
				found = true
				s.Equal("test-jwt-token", c.Value)
				s.True(c.HttpOnly)
			}
		}
		s.True(found, "access token cookie not set")
	})

	s.Run("fail: bad credentials return 401", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnauthorized, w.Code)

		var resp map[string]any
		httptest.DecodeBody(s.T(), w, &resp)
		s.Equal(false, resp["success"])
	})

	s.Run("fail: inactive agent returns 401", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrAgentInactive).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("fail: malformed email returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"email": "not-an-email", "password": "x"}, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: clears the cookie", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusOK, w.Code)

		for _, c := range w.Result().Cookies() {
			if c.Name == cookie.AccessTokenCookieName {
				s.Equal(-1, c.MaxAge)
			}
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the agent profile", func() {
		agentView := &queries.AgentView{ID: uuid.New(), Email: "agente@municipio.gob.mx", Name: "Agente Uno", Badge: "A-001"}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(agentView, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "some-token")
		s.Equal(http.StatusOK, w.Code)

		var resp map[string]any
		httptest.DecodeBody(s.T(), w, &resp)
		agent, ok := resp["agent"].(map[string]any)
		s.Require().True(ok)
		s.Equal("A-001", agent["badge"])
	})

	s.Run("fail: missing agent context returns 401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
