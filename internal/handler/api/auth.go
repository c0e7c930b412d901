package api

import (
	"errors"
	"net/http"

	"github.com/Jes6241/parquimetros-api/internal/handler/dto/request"
	"github.com/Jes6241/parquimetros-api/internal/handler/dto/response"
	"github.com/Jes6241/parquimetros-api/internal/handler/httperr"
	"github.com/Jes6241/parquimetros-api/internal/handler/middleware"
	"github.com/Jes6241/parquimetros-api/internal/pkg/config"
	"github.com/Jes6241/parquimetros-api/internal/pkg/cookie"
	"github.com/Jes6241/parquimetros-api/internal/pkg/jwt"
	"github.com/Jes6241/parquimetros-api/internal/usecase/commands"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	commands     commands.AuthCommands
	agentQueries queries.AgentQueries
	jwtService   *jwt.Service
	cookieConfig config.CookieConfig
}

func NewAuthHandler(
	cmds commands.AuthCommands,
	agentQueries queries.AgentQueries,
	jwtService *jwt.Service,
	cookieConfig config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		commands:     cmds,
		agentQueries: agentQueries,
		jwtService:   jwtService,
		cookieConfig: cookieConfig,
	}
}

// @Summary Agent login
// @Description Authenticate an enforcement agent and set the access token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} response.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Correo y contraseña son requeridos")
		return
	}

	result, err := h.commands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Credenciales inválidas")
		case errors.Is(err, commands.ErrAgentInactive):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Agente inactivo")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieConfig, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, response.FromLogin(result.Agent))
}

// @Summary Agent logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.LogoutResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cookieConfig)
	c.JSON(http.StatusOK, response.NewLogoutResponse())
}

// @Summary Current agent
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	agentID, ok := middleware.GetAgentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing agent context"), "No autenticado")
		return
	}

	agent, err := h.agentQueries.GetByID(c.Request.Context(), agentID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "No autenticado")
		return
	}

	c.JSON(http.StatusOK, response.FromAgent(agent))
}
