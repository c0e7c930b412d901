package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Jes6241/parquimetros-api/internal/domain/session"
	"github.com/Jes6241/parquimetros-api/internal/infra"
	"github.com/Jes6241/parquimetros-api/internal/pkg/clock"
	"github.com/Jes6241/parquimetros-api/internal/pkg/errs"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlate            = errs.New("plate is required")
	ErrInvalidMinutes          = errs.New("minutes must be greater than zero")
	ErrInvalidAmount           = errs.New("amount cannot be negative")
	ErrActiveSessionNotFound   = errs.New("no active session for plate")
	ErrSessionNotFound         = errs.New("session not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type PayInput struct {
	Plate         string
	Zone          string
	Location      *string
	Minutes       int
	Amount        float64
	PaymentMethod string
	MeterID       *string
}

type ExtendInput struct {
	Plate        string
	ExtraMinutes int
	ExtraAmount  float64
}

// VerifyResult reports window validity against the clock. Validity is
// computed here; the stored status is only a cache of it.
type VerifyResult struct {
	Found            bool
	Valid            bool
	Plate            string
	Session          *queries.SessionView
	RemainingMinutes int
	ExpiredMinutes   int
}

type SessionRepository interface {
	Create(ctx context.Context, s *session.Session) (*session.Session, error)
	FindLatestByPlate(ctx context.Context, plate string) (*session.Session, error)
	FindLatestActiveByPlate(ctx context.Context, plate string) (*session.Session, error)
	Update(ctx context.Context, s *session.Session) error
	SetExpired(ctx context.Context, id uuid.UUID, at time.Time) error
	SetFined(ctx context.Context, id uuid.UUID, fineReference *string, at time.Time) (*session.Session, error)
}

type SessionCommands interface {
	Pay(ctx context.Context, input PayInput) (*queries.SessionView, error)
	Verify(ctx context.Context, plate string) (*VerifyResult, error)
	Extend(ctx context.Context, input ExtendInput) (*queries.SessionView, error)
	MarkFined(ctx context.Context, id uuid.UUID, fineReference *string) (*queries.SessionView, error)
}

type sessionCommandsImpl struct {
	repo  SessionRepository
	clock clock.Clock
}

func NewSessionCommands(repo SessionRepository, clock clock.Clock) SessionCommands {
	return &sessionCommandsImpl{repo: repo, clock: clock}
}

// Pay opens a new session starting now. Prior sessions for the plate are
// left untouched; the latest by end time stays authoritative for Verify.
func (c *sessionCommandsImpl) Pay(ctx context.Context, input PayInput) (*queries.SessionView, error) {
	plate, err := session.NewPlate(input.Plate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlate)
	}

	entity, err := session.NewSession(
		plate,
		input.Zone,
		input.Location,
		input.MeterID,
		input.Minutes,
		input.Amount,
		input.PaymentMethod,
		c.clock.Now(),
	)
	if err != nil {
		return nil, markDomainError(err)
	}

	created, err := c.repo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("parking payment registered",
		"plate", plate.String(),
		"minutes", input.Minutes,
		"expires_at", created.EndTime(),
	)

	return viewFromEntity(created), nil
}

// Verify consults the latest session by end time. When the window has
// elapsed and the row still says active, the expiry flag is written back
// best-effort; the response does not depend on that write succeeding.
func (c *sessionCommandsImpl) Verify(ctx context.Context, rawPlate string) (*VerifyResult, error) {
	plate, err := session.NewPlate(rawPlate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlate)
	}

	latest, err := c.repo.FindLatestByPlate(ctx, plate.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &VerifyResult{Found: false, Plate: plate.String()}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	remaining := latest.RemainingMinutes(now)

	if remaining > 0 {
		return &VerifyResult{
			Found:            true,
			Valid:            true,
			Plate:            plate.String(),
			Session:          viewFromEntity(latest),
			RemainingMinutes: remaining,
		}, nil
	}

	if latest.Status() == session.StatusActive {
		if markErr := latest.MarkExpired(now); markErr == nil {
			if updErr := c.repo.SetExpired(ctx, latest.ID(), now); updErr != nil {
				slog.Warn("failed to persist lazy expiry", "session_id", latest.ID(), "error", updErr)
			}
		}
	}

	return &VerifyResult{
		Found:          true,
		Valid:          false,
		Plate:          plate.String(),
		Session:        viewFromEntity(latest),
		ExpiredMinutes: -remaining,
	}, nil
}

// Extend is a read-then-write without a compare-and-swap guard: concurrent
// extends on the same plate race and the last write wins. A window that has
// elapsed but was never verified is still flagged active in storage and
// remains extendable.
func (c *sessionCommandsImpl) Extend(ctx context.Context, input ExtendInput) (*queries.SessionView, error) {
	plate, err := session.NewPlate(input.Plate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlate)
	}
	if input.ExtraMinutes <= 0 {
		return nil, ErrInvalidMinutes
	}
	if input.ExtraAmount < 0 {
		return nil, ErrInvalidAmount
	}

	active, err := c.repo.FindLatestActiveByPlate(ctx, plate.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrActiveSessionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := active.Extend(input.ExtraMinutes, input.ExtraAmount, c.clock.Now()); err != nil {
		return nil, markDomainError(err)
	}

	if err := c.repo.Update(ctx, active); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("parking time extended",
		"plate", plate.String(),
		"extra_minutes", input.ExtraMinutes,
		"new_end_time", active.EndTime(),
	)

	return viewFromEntity(active), nil
}

// MarkFined transitions unconditionally, whatever the current status, and
// overwrites any previous fine reference.
func (c *sessionCommandsImpl) MarkFined(ctx context.Context, id uuid.UUID, fineReference *string) (*queries.SessionView, error) {
	fined, err := c.repo.SetFined(ctx, id, fineReference, c.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("session marked as fined", "session_id", id)

	return viewFromEntity(fined), nil
}

func markDomainError(err error) error {
	switch {
	case errors.Is(err, session.ErrNonPositiveMinutes):
		return errs.Mark(err, ErrInvalidMinutes)
	case errors.Is(err, session.ErrNegativeAmount):
		return errs.Mark(err, ErrInvalidAmount)
	case errors.Is(err, session.ErrNotActive):
		return errs.Mark(err, ErrActiveSessionNotFound)
	default:
		return err
	}
}

func viewFromEntity(s *session.Session) *queries.SessionView {
	return &queries.SessionView{
		ID:            s.ID(),
		Plate:         s.Plate().String(),
		Zone:          s.Zone(),
		Location:      s.Location(),
		MeterID:       s.MeterID(),
		StartTime:     s.StartTime(),
		EndTime:       s.EndTime(),
		PaidMinutes:   s.PaidMinutes(),
		Amount:        s.Amount(),
		PaymentMethod: s.PaymentMethod(),
		Status:        s.Status().String(),
		FineReference: s.FineReference(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}
