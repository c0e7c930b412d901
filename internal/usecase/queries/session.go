package queries

import (
	"context"
	"math"
	"time"

	"github.com/Jes6241/parquimetros-api/internal/domain/session"
	"github.com/Jes6241/parquimetros-api/internal/pkg/clock"
	"github.com/Jes6241/parquimetros-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidPlate = errs.New("invalid plate")

const (
	expiredListLimit = 50
	historyListLimit = 20
)

// SessionView is the read model for one parking session row.
type SessionView struct {
	ID            uuid.UUID `json:"id"`
	Plate         string    `json:"plate"`
	Zone          string    `json:"zone"`
	Location      *string   `json:"location,omitempty"`
	MeterID       *string   `json:"meterId,omitempty"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	PaidMinutes   int32     `json:"paidMinutes"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	FineReference *string   `json:"fineReference,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ActiveSessionItem is a still-valid session with its remaining time
// computed at query time. The list read never writes the expiry flag.
type ActiveSessionItem struct {
	SessionView
	RemainingMinutes int `json:"remainingMinutes"`
}

type ExpiredSessionItem struct {
	SessionView
	ExpiredMinutes int `json:"expiredMinutes"`
}

// DailyStatistics aggregates the calendar day starting at local midnight.
// The four figures are independent queries; an active session may well have
// been paid on a prior day.
type DailyStatistics struct {
	Date          string  `json:"date"`
	PaymentsToday int64   `json:"pagos_hoy"`
	ActiveNow     int64   `json:"activos_ahora"`
	ExpiredToday  int64   `json:"expirados_hoy"`
	RevenueToday  float64 `json:"ingresos_hoy"`
}

type SessionQueries interface {
	ListActive(ctx context.Context) ([]*ActiveSessionItem, error)
	ListExpired(ctx context.Context) ([]*ExpiredSessionItem, error)
	History(ctx context.Context, plate string) (string, []*SessionView, error)
	Statistics(ctx context.Context) (*DailyStatistics, error)
}

type SessionReadStore interface {
	FindActive(ctx context.Context, now time.Time) ([]*SessionView, error)
	FindExpired(ctx context.Context, now time.Time, limit int32) ([]*SessionView, error)
	FindByPlate(ctx context.Context, plate string, limit int32) ([]*SessionView, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountActiveAt(ctx context.Context, now time.Time) (int64, error)
	CountExpiredCreatedSince(ctx context.Context, since time.Time) (int64, error)
	SumAmountCreatedSince(ctx context.Context, since time.Time) (float64, error)
}

type sessionQueriesImpl struct {
	readStore SessionReadStore
	clock     clock.Clock
}

func NewSessionQueries(readStore SessionReadStore, clock clock.Clock) SessionQueries {
	return &sessionQueriesImpl{readStore: readStore, clock: clock}
}

func (q *sessionQueriesImpl) ListActive(ctx context.Context) ([]*ActiveSessionItem, error) {
	now := q.clock.Now()
	views, err := q.readStore.FindActive(ctx, now)
	if err != nil {
		return nil, err
	}

	items := make([]*ActiveSessionItem, len(views))
	for i, v := range views {
		items[i] = &ActiveSessionItem{
			SessionView:      *v,
			RemainingMinutes: remainingMinutes(v.EndTime, now),
		}
	}
	return items, nil
}

func (q *sessionQueriesImpl) ListExpired(ctx context.Context) ([]*ExpiredSessionItem, error) {
	now := q.clock.Now()
	views, err := q.readStore.FindExpired(ctx, now, expiredListLimit)
	if err != nil {
		return nil, err
	}

	items := make([]*ExpiredSessionItem, len(views))
	for i, v := range views {
		items[i] = &ExpiredSessionItem{
			SessionView:    *v,
			ExpiredMinutes: -remainingMinutes(v.EndTime, now),
		}
	}
	return items, nil
}

// History returns the normalized plate alongside the rows so callers echo
// the same value the store was queried with.
func (q *sessionQueriesImpl) History(ctx context.Context, rawPlate string) (string, []*SessionView, error) {
	plate, err := session.NewPlate(rawPlate)
	if err != nil {
		return "", nil, errs.Mark(err, ErrInvalidPlate)
	}
	views, err := q.readStore.FindByPlate(ctx, plate.String(), historyListLimit)
	if err != nil {
		return "", nil, err
	}
	return plate.String(), views, nil
}

func (q *sessionQueriesImpl) Statistics(ctx context.Context) (*DailyStatistics, error) {
	now := q.clock.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	payments, err := q.readStore.CountCreatedSince(ctx, dayStart)
	if err != nil {
		return nil, err
	}
	active, err := q.readStore.CountActiveAt(ctx, now)
	if err != nil {
		return nil, err
	}
	expired, err := q.readStore.CountExpiredCreatedSince(ctx, dayStart)
	if err != nil {
		return nil, err
	}
	revenue, err := q.readStore.SumAmountCreatedSince(ctx, dayStart)
	if err != nil {
		return nil, err
	}

	return &DailyStatistics{
		Date:          dayStart.Format("2006-01-02"),
		PaymentsToday: payments,
		ActiveNow:     active,
		ExpiredToday:  expired,
		RevenueToday:  revenue,
	}, nil
}

func remainingMinutes(endTime, now time.Time) int {
	return int(math.Round(endTime.Sub(now).Minutes()))
}
