package response

import (
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"
)

type LoginResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Agent   *queries.AgentView `json:"agent"`
}

func FromLogin(agent *queries.AgentView) *LoginResponse {
	return &LoginResponse{
		Success: true,
		Message: "Sesión iniciada",
		Agent:   agent,
	}
}

type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewLogoutResponse() *LogoutResponse {
	return &LogoutResponse{Success: true, Message: "Sesión cerrada"}
}

type MeResponse struct {
	Success bool               `json:"success"`
	Agent   *queries.AgentView `json:"agent"`
}

func FromAgent(agent *queries.AgentView) *MeResponse {
	return &MeResponse{Success: true, Agent: agent}
}
