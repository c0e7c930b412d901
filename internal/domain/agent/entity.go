package agent

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInactive = errors.New("agent is inactive")

// Agent is an enforcement officer allowed to consult the expired list and
// issue fines.
type Agent struct {
	id           uuid.UUID
	email        string
	name         string
	badge        string
	passwordHash string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func ReconstructAgent(
	id uuid.UUID,
	email, name, badge, passwordHash string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Agent {
	return &Agent{
		id:           id,
		email:        email,
		name:         name,
		badge:        badge,
		passwordHash: passwordHash,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Agent) ID() uuid.UUID        { return a.id }
func (a *Agent) Email() string        { return a.email }
func (a *Agent) Name() string         { return a.name }
func (a *Agent) Badge() string        { return a.badge }
func (a *Agent) PasswordHash() string { return a.passwordHash }
func (a *Agent) IsActive() bool       { return a.isActive }
func (a *Agent) CreatedAt() time.Time { return a.createdAt }
func (a *Agent) UpdatedAt() time.Time { return a.updatedAt }
