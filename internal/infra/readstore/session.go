package readstore

import (
	"context"
	"time"

	"github.com/Jes6241/parquimetros-api/internal/infra"
	"github.com/Jes6241/parquimetros-api/internal/pkg/pgconv"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionViewColumns = `id, plate, zone, location, meter_id, start_time, end_time,
	paid_minutes, amount, payment_method, status, fine_reference, created_at, updated_at`

// SessionReadStore serves the aggregate views. These are bulk reads: they
// filter on end_time against the given clock value and never write the
// expiry flag back.
type SessionReadStore struct {
	db *pgxpool.Pool
}

func NewSessionReadStore(db *pgxpool.Pool) *SessionReadStore {
	return &SessionReadStore{db: db}
}

func (r *SessionReadStore) FindActive(ctx context.Context, now time.Time) ([]*queries.SessionView, error) {
	const query = `
		SELECT ` + sessionViewColumns + `
		FROM parking_sessions
		WHERE status = 'active' AND end_time >= $1
		ORDER BY end_time ASC`

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active sessions", err)
	}
	defer rows.Close()

	return collectSessionViews(rows)
}

func (r *SessionReadStore) FindExpired(ctx context.Context, now time.Time, limit int32) ([]*queries.SessionView, error) {
	const query = `
		SELECT ` + sessionViewColumns + `
		FROM parking_sessions
		WHERE end_time < $1 AND status IN ('active', 'expired')
		ORDER BY end_time DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query expired sessions", err)
	}
	defer rows.Close()

	return collectSessionViews(rows)
}

func (r *SessionReadStore) FindByPlate(ctx context.Context, plate string, limit int32) ([]*queries.SessionView, error) {
	const query = `
		SELECT ` + sessionViewColumns + `
		FROM parking_sessions
		WHERE plate = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, plate, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query sessions by plate", err)
	}
	defer rows.Close()

	return collectSessionViews(rows)
}

func (r *SessionReadStore) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	const query = `SELECT count(*) FROM parking_sessions WHERE created_at >= $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count sessions created since", err)
	}
	return count, nil
}

func (r *SessionReadStore) CountActiveAt(ctx context.Context, now time.Time) (int64, error) {
	const query = `SELECT count(*) FROM parking_sessions WHERE status = 'active' AND end_time >= $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, now).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count active sessions", err)
	}
	return count, nil
}

func (r *SessionReadStore) CountExpiredCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	const query = `SELECT count(*) FROM parking_sessions WHERE status = 'expired' AND created_at >= $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count expired sessions created since", err)
	}
	return count, nil
}

func (r *SessionReadStore) SumAmountCreatedSince(ctx context.Context, since time.Time) (float64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM parking_sessions WHERE created_at >= $1`

	var sum pgtype.Numeric
	if err := r.db.QueryRow(ctx, query, since).Scan(&sum); err != nil {
		return 0, infra.WrapRepoErr("failed to sum amounts created since", err)
	}

	total, err := pgconv.Float64FromNumeric(sum)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to convert amount sum", err)
	}
	return total, nil
}

func collectSessionViews(rows pgx.Rows) ([]*queries.SessionView, error) {
	var views []*queries.SessionView
	for rows.Next() {
		view, err := scanSessionView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan session row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read session rows", err)
	}
	return views, nil
}

func scanSessionView(row pgx.Row) (*queries.SessionView, error) {
	var (
		view          queries.SessionView
		id            uuid.UUID
		location      pgtype.Text
		meterID       pgtype.Text
		amount        pgtype.Numeric
		fineReference pgtype.Text
	)

	if err := row.Scan(
		&id, &view.Plate, &view.Zone, &location, &meterID, &view.StartTime, &view.EndTime,
		&view.PaidMinutes, &amount, &view.PaymentMethod, &view.Status, &fineReference,
		&view.CreatedAt, &view.UpdatedAt,
	); err != nil {
		return nil, err
	}

	amountValue, err := pgconv.Float64FromNumeric(amount)
	if err != nil {
		return nil, err
	}

	view.ID = id
	view.Location = pgconv.StringPtrFromPgtype(location)
	view.MeterID = pgconv.StringPtrFromPgtype(meterID)
	view.Amount = amountValue
	view.FineReference = pgconv.StringPtrFromPgtype(fineReference)
	return &view, nil
}
