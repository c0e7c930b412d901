package usecase

import (
	"github.com/Jes6241/parquimetros-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is what the auth middleware needs from the token layer.
type TokenValidator interface {
	ValidateToken(token string) (agentID uuid.UUID, email string, err error)
}

type jwtTokenValidator struct {
	service *jwt.Service
}

func NewTokenValidator(service *jwt.Service) TokenValidator {
	return &jwtTokenValidator{service: service}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, string, error) {
	claims, err := v.service.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.AgentID, claims.Email, nil
}
