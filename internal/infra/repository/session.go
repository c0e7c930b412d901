package repository

import (
	"context"
	"time"

	"github.com/Jes6241/parquimetros-api/internal/domain/session"
	"github.com/Jes6241/parquimetros-api/internal/infra"
	"github.com/Jes6241/parquimetros-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionColumns = `id, plate, zone, location, meter_id, start_time, end_time,
	paid_minutes, amount, payment_method, status, fine_reference, created_at, updated_at`

// SessionRepository is the write side of the session ledger. The store is
// the single synchronization point; none of these calls take more than one
// insert-or-update round trip.
type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) (*session.Session, error) {
	const query = `
		INSERT INTO parking_sessions
			(plate, zone, location, meter_id, start_time, end_time, paid_minutes, amount, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + sessionColumns

	row := r.db.QueryRow(ctx, query,
		s.Plate().String(),
		s.Zone(),
		pgconv.StringPtrToPgtype(s.Location()),
		pgconv.StringPtrToPgtype(s.MeterID()),
		s.StartTime(),
		s.EndTime(),
		s.PaidMinutes(),
		s.Amount(),
		s.PaymentMethod(),
		s.Status().String(),
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create session", err)
	}
	return created, nil
}

func (r *SessionRepository) FindLatestByPlate(ctx context.Context, plate string) (*session.Session, error) {
	const query = `
		SELECT ` + sessionColumns + `
		FROM parking_sessions
		WHERE plate = $1
		ORDER BY end_time DESC
		LIMIT 1`

	found, err := scanSession(r.db.QueryRow(ctx, query, plate))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no session for plate", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find latest session by plate", err)
	}
	return found, nil
}

func (r *SessionRepository) FindLatestActiveByPlate(ctx context.Context, plate string) (*session.Session, error) {
	const query = `
		SELECT ` + sessionColumns + `
		FROM parking_sessions
		WHERE plate = $1 AND status = 'active'
		ORDER BY end_time DESC
		LIMIT 1`

	found, err := scanSession(r.db.QueryRow(ctx, query, plate))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active session for plate", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active session by plate", err)
	}
	return found, nil
}

// Update persists the mutable fields of a session. There is no version
// guard: concurrent extends on the same row are last-write-wins.
func (r *SessionRepository) Update(ctx context.Context, s *session.Session) error {
	const query = `
		UPDATE parking_sessions
		SET end_time = $2,
		    paid_minutes = $3,
		    amount = $4,
		    status = $5,
		    fine_reference = $6,
		    updated_at = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		s.ID(),
		s.EndTime(),
		s.PaidMinutes(),
		s.Amount(),
		s.Status().String(),
		pgconv.StringPtrToPgtype(s.FineReference()),
		s.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetExpired records the lazy active→expired edge. The status guard keeps a
// concurrent fine from being overwritten; zero rows affected is not an
// error.
func (r *SessionRepository) SetExpired(ctx context.Context, id uuid.UUID, at time.Time) error {
	const query = `
		UPDATE parking_sessions
		SET status = 'expired', updated_at = $2
		WHERE id = $1 AND status = 'active'`

	if _, err := r.db.Exec(ctx, query, id, at); err != nil {
		return infra.WrapRepoErr("failed to mark session expired", err)
	}
	return nil
}

func (r *SessionRepository) SetFined(ctx context.Context, id uuid.UUID, fineReference *string, at time.Time) (*session.Session, error) {
	const query = `
		UPDATE parking_sessions
		SET status = 'fined', fine_reference = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + sessionColumns

	fined, err := scanSession(r.db.QueryRow(ctx, query, id, pgconv.StringPtrToPgtype(fineReference), at))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to mark session fined", err)
	}
	return fined, nil
}

func scanSession(row pgx.Row) (*session.Session, error) {
	var (
		id            uuid.UUID
		plateRaw      string
		zone          string
		location      pgtype.Text
		meterID       pgtype.Text
		startTime     time.Time
		endTime       time.Time
		paidMinutes   int32
		amount        pgtype.Numeric
		paymentMethod string
		status        string
		fineReference pgtype.Text
		createdAt     time.Time
		updatedAt     time.Time
	)

	if err := row.Scan(
		&id, &plateRaw, &zone, &location, &meterID, &startTime, &endTime,
		&paidMinutes, &amount, &paymentMethod, &status, &fineReference,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	plate, err := session.NewPlate(plateRaw)
	if err != nil {
		return nil, err
	}

	amountValue, err := pgconv.Float64FromNumeric(amount)
	if err != nil {
		return nil, err
	}

	return session.ReconstructSession(
		id,
		plate,
		zone,
		pgconv.StringPtrFromPgtype(location),
		pgconv.StringPtrFromPgtype(meterID),
		startTime,
		endTime,
		paidMinutes,
		amountValue,
		paymentMethod,
		session.Status(status),
		pgconv.StringPtrFromPgtype(fineReference),
		createdAt,
		updatedAt,
	), nil
}
