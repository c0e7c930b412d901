package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ZoneView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	HourlyRate float64   `json:"hourlyRate"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ZoneQueries interface {
	ListZones(ctx context.Context) ([]*ZoneView, error)
}

type ZoneReadStore interface {
	FindActive(ctx context.Context) ([]*ZoneView, error)
}

type zoneQueriesImpl struct {
	readStore ZoneReadStore
}

func NewZoneQueries(readStore ZoneReadStore) ZoneQueries {
	return &zoneQueriesImpl{readStore: readStore}
}

func (q *zoneQueriesImpl) ListZones(ctx context.Context) ([]*ZoneView, error) {
	return q.readStore.FindActive(ctx)
}
