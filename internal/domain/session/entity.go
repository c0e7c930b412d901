package session

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveMinutes = errors.New("minutes must be greater than zero")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrNotActive          = errors.New("session is not active")
	ErrFinedIsTerminal    = errors.New("fined session cannot change status")
)

// Session is one paid parking window for a plate. A plate accumulates a
// history of sessions; only the latest by end time is consulted for
// verification. paid minutes always equals end-start in minutes.
type Session struct {
	id            uuid.UUID
	plate         Plate
	zone          string
	location      *string
	meterID       *string
	startTime     time.Time
	endTime       time.Time
	paidMinutes   int32
	amount        float64
	paymentMethod string
	status        Status
	fineReference *string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewSession opens an active window of the given minutes starting at now.
// The id and audit timestamps are assigned by the store on insert.
func NewSession(
	plate Plate,
	zone string,
	location *string,
	meterID *string,
	minutes int,
	amount float64,
	paymentMethod string,
	now time.Time,
) (*Session, error) {
	if minutes <= 0 {
		return nil, ErrNonPositiveMinutes
	}
	if amount < 0 {
		return nil, ErrNegativeAmount
	}
	if zone == "" {
		zone = DefaultZone
	}
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	return &Session{
		plate:         plate,
		zone:          zone,
		location:      location,
		meterID:       meterID,
		startTime:     now,
		endTime:       now.Add(time.Duration(minutes) * time.Minute),
		paidMinutes:   int32(minutes),
		amount:        amount,
		paymentMethod: paymentMethod,
		status:        StatusActive,
	}, nil
}

func ReconstructSession(
	id uuid.UUID,
	plate Plate,
	zone string,
	location *string,
	meterID *string,
	startTime, endTime time.Time,
	paidMinutes int32,
	amount float64,
	paymentMethod string,
	status Status,
	fineReference *string,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:            id,
		plate:         plate,
		zone:          zone,
		location:      location,
		meterID:       meterID,
		startTime:     startTime,
		endTime:       endTime,
		paidMinutes:   paidMinutes,
		amount:        amount,
		paymentMethod: paymentMethod,
		status:        status,
		fineReference: fineReference,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Extend pushes the window end forward. The stored status must still be
// active, even if the window has already elapsed by the clock: a caller may
// extend a lapsed window and the next Verify re-evaluates it.
func (s *Session) Extend(extraMinutes int, extraAmount float64, now time.Time) error {
	if extraMinutes <= 0 {
		return ErrNonPositiveMinutes
	}
	if extraAmount < 0 {
		return ErrNegativeAmount
	}
	if s.status != StatusActive {
		return ErrNotActive
	}

	s.endTime = s.endTime.Add(time.Duration(extraMinutes) * time.Minute)
	s.paidMinutes += int32(extraMinutes)
	s.amount += extraAmount
	s.updatedAt = now
	return nil
}

// MarkExpired records the active→expired edge. Fined is terminal.
func (s *Session) MarkExpired(now time.Time) error {
	if s.status == StatusFined {
		return ErrFinedIsTerminal
	}
	s.status = StatusExpired
	s.updatedAt = now
	return nil
}

// MarkFined is unconditional: any status moves to fined, and a repeated call
// overwrites the fine reference.
func (s *Session) MarkFined(fineReference *string, now time.Time) {
	s.status = StatusFined
	s.fineReference = fineReference
	s.updatedAt = now
}

// RemainingMinutes is positive while the window is still open, zero or
// negative once it has elapsed.
func (s *Session) RemainingMinutes(now time.Time) int {
	return int(math.Round(s.endTime.Sub(now).Minutes()))
}

// IsValidAt reports whether the window covers now. Strictly greater than
// zero: an exactly-elapsed window is already invalid.
func (s *Session) IsValidAt(now time.Time) bool {
	return s.RemainingMinutes(now) > 0
}

func (s *Session) ID() uuid.UUID          { return s.id }
func (s *Session) Plate() Plate           { return s.plate }
func (s *Session) Zone() string           { return s.zone }
func (s *Session) Location() *string      { return s.location }
func (s *Session) MeterID() *string       { return s.meterID }
func (s *Session) StartTime() time.Time   { return s.startTime }
func (s *Session) EndTime() time.Time     { return s.endTime }
func (s *Session) PaidMinutes() int32     { return s.paidMinutes }
func (s *Session) Amount() float64        { return s.amount }
func (s *Session) PaymentMethod() string  { return s.paymentMethod }
func (s *Session) Status() Status         { return s.status }
func (s *Session) FineReference() *string { return s.fineReference }
func (s *Session) CreatedAt() time.Time   { return s.createdAt }
func (s *Session) UpdatedAt() time.Time   { return s.updatedAt }
