//go:build unit || e2e

package builder

import (
	"time"

	domsession "github.com/Jes6241/parquimetros-api/internal/domain/session"
	reqdto "github.com/Jes6241/parquimetros-api/internal/handler/dto/request"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	ID            uuid.UUID
	Plate         string
	Zone          string
	Location      *string
	MeterID       *string
	StartTime     time.Time
	Minutes       int
	Amount        float64
	PaymentMethod string
	Status        domsession.Status
	FineReference *string
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:            uuid.New(),
		Plate:         "ABC123",
		Zone:          "Centro",
		StartTime:     time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		Minutes:       60,
		Amount:        15.0,
		PaymentMethod: "efectivo",
		Status:        domsession.StatusActive,
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.Minutes) * time.Minute)
}

// Build methods
func (b *SessionBuilder) BuildDomain() (*domsession.Session, error) {
	plate, err := domsession.NewPlate(b.Plate)
	if err != nil {
		return nil, err
	}
	return domsession.NewSession(plate, b.Zone, b.Location, b.MeterID, b.Minutes, b.Amount, b.PaymentMethod, b.StartTime)
}

// BuildStored reconstructs a session as the repository would return it,
// with id and audit timestamps assigned.
func (b *SessionBuilder) BuildStored() *domsession.Session {
	plate, _ := domsession.NewPlate(b.Plate)
	return domsession.ReconstructSession(
		b.ID,
		plate,
		b.Zone,
		b.Location,
		b.MeterID,
		b.StartTime,
		b.EndTime(),
		int32(b.Minutes),
		b.Amount,
		b.PaymentMethod,
		b.Status,
		b.FineReference,
		b.StartTime,
		b.StartTime,
	)
}

func (b *SessionBuilder) BuildView() *queries.SessionView {
	return &queries.SessionView{
		ID:            b.ID,
		Plate:         b.Plate,
		Zone:          b.Zone,
		Location:      b.Location,
		MeterID:       b.MeterID,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime(),
		PaidMinutes:   int32(b.Minutes),
		Amount:        b.Amount,
		PaymentMethod: b.PaymentMethod,
		Status:        b.Status.String(),
		FineReference: b.FineReference,
		CreatedAt:     b.StartTime,
		UpdatedAt:     b.StartTime,
	}
}

func (b *SessionBuilder) BuildPayRequestDTO() reqdto.PayRequest {
	zone := b.Zone
	return reqdto.PayRequest{
		Plate:         b.Plate,
		Zone:          &zone,
		Location:      b.Location,
		Minutes:       b.Minutes,
		Amount:        &b.Amount,
		PaymentMethod: &b.PaymentMethod,
		MeterID:       b.MeterID,
	}
}

func (b *SessionBuilder) BuildExtendRequestDTO(extraMinutes int, extraAmount float64) reqdto.ExtendRequest {
	return reqdto.ExtendRequest{
		Plate:        b.Plate,
		ExtraMinutes: extraMinutes,
		ExtraAmount:  &extraAmount,
	}
}
