package readstore

import (
	"context"

	"github.com/Jes6241/parquimetros-api/internal/infra"
	"github.com/Jes6241/parquimetros-api/internal/pkg/pgconv"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ZoneReadStore struct {
	db *pgxpool.Pool
}

func NewZoneReadStore(db *pgxpool.Pool) *ZoneReadStore {
	return &ZoneReadStore{db: db}
}

func (r *ZoneReadStore) FindActive(ctx context.Context) ([]*queries.ZoneView, error) {
	const query = `
		SELECT id, name, hourly_rate, active, created_at
		FROM parking_zones
		WHERE active = true
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query zones", err)
	}
	defer rows.Close()

	var zones []*queries.ZoneView
	for rows.Next() {
		var (
			zone queries.ZoneView
			rate pgtype.Numeric
		)
		if err := rows.Scan(&zone.ID, &zone.Name, &rate, &zone.Active, &zone.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan zone row", err)
		}
		rateValue, err := pgconv.Float64FromNumeric(rate)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert zone rate", err)
		}
		zone.HourlyRate = rateValue
		zones = append(zones, &zone)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read zone rows", err)
	}
	return zones, nil
}
