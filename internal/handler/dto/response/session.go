package response

import (
	"fmt"
	"time"

	"github.com/Jes6241/parquimetros-api/internal/domain/session"
	"github.com/Jes6241/parquimetros-api/internal/usecase/commands"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// SessionData mirrors the session read model on the wire.
type SessionData struct {
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

type PaymentInfo struct {
	ID        uuid.UUID `json:"id"`
	Plate     string    `json:"plate"`
	Zone      string    `json:"zone"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	PaidTime  string    `json:"paidTime"`
	Amount    float64   `json:"amount"`
}

type PayResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Payment PaymentInfo `json:"payment"`
}

func FromPayView(v *queries.SessionView) *PayResponse {
	paid := session.FormatDuration(int(v.PaidMinutes))
	return &PayResponse{
		Success: true,
		Message: fmt.Sprintf("Tiempo de %s registrado para %s", paid, v.Plate),
		Payment: PaymentInfo{
			ID:        v.ID,
			Plate:     v.Plate,
			Zone:      v.Zone,
			StartTime: v.StartTime,
			EndTime:   v.EndTime,
			PaidTime:  paid,
			Amount:    v.Amount,
		},
	}
}

type VerifyNotFoundResponse struct {
	Success bool   `json:"success"`
	Found   bool   `json:"found"`
	Plate   string `json:"plate"`
	Message string `json:"message"`
}

type VerifyValidResponse struct {
	Success          bool      `json:"success"`
	Found            bool      `json:"found"`
	Valid            bool      `json:"valid"`
	Expired          bool      `json:"expired"`
	Plate            string    `json:"plate"`
	Zone             string    `json:"zone"`
	Location         *string   `json:"location,omitempty"`
	MeterID          *string   `json:"meterId,omitempty"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	PaidMinutes      int32     `json:"paidMinutes"`
	TimeRemaining    string    `json:"timeRemaining"`
	RemainingMinutes int       `json:"remainingMinutes"`
	Amount           float64   `json:"amount"`
	PaymentMethod    string    `json:"paymentMethod"`
}

type VerifyExpiredResponse struct {
	Success        bool      `json:"success"`
	Found          bool      `json:"found"`
	Valid          bool      `json:"valid"`
	Expired        bool      `json:"expired"`
	Plate          string    `json:"plate"`
	Zone           string    `json:"zone"`
	Location       *string   `json:"location,omitempty"`
	MeterID        *string   `json:"meterId,omitempty"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	PaidMinutes    int32     `json:"paidMinutes"`
	TimeExpired    string    `json:"timeExpired"`
	ExpiredMinutes int       `json:"expiredMinutes"`
	Amount         float64   `json:"amount"`
}

func FromVerifyResult(r *commands.VerifyResult) any {
	if !r.Found {
		return &VerifyNotFoundResponse{
			Success: true,
			Found:   false,
			Plate:   r.Plate,
			Message: "No se encontró pago de parquímetro para esta placa",
		}
	}

	v := r.Session
	if r.Valid {
		return &VerifyValidResponse{
			Success:          true,
			Found:            true,
			Valid:            true,
			Expired:          false,
			Plate:            v.Plate,
			Zone:             v.Zone,
			Location:         v.Location,
			MeterID:          v.MeterID,
			StartTime:        v.StartTime,
			EndTime:          v.EndTime,
			PaidMinutes:      v.PaidMinutes,
			TimeRemaining:    session.FormatDuration(r.RemainingMinutes),
			RemainingMinutes: r.RemainingMinutes,
			Amount:           v.Amount,
			PaymentMethod:    v.PaymentMethod,
		}
	}

	return &VerifyExpiredResponse{
		Success:        true,
		Found:          true,
		Valid:          false,
		Expired:        true,
		Plate:          v.Plate,
		Zone:           v.Zone,
		Location:       v.Location,
		MeterID:        v.MeterID,
		StartTime:      v.StartTime,
		EndTime:        v.EndTime,
		PaidMinutes:    v.PaidMinutes,
		TimeExpired:    session.FormatDuration(r.ExpiredMinutes),
		ExpiredMinutes: r.ExpiredMinutes,
		Amount:         v.Amount,
	}
}

type ExtendInfo struct {
	ID          uuid.UUID `json:"id"`
	Plate       string    `json:"plate"`
	NewEndTime  time.Time `json:"newEndTime"`
	TotalTime   string    `json:"totalTime"`
	TotalAmount float64   `json:"totalAmount"`
}

type ExtendResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Payment ExtendInfo `json:"payment"`
}

func FromExtendView(v *queries.SessionView, extraMinutes int) *ExtendResponse {
	return &ExtendResponse{
		Success: true,
		Message: fmt.Sprintf("Tiempo extendido %s para %s", session.FormatDuration(extraMinutes), v.Plate),
		Payment: ExtendInfo{
			ID:          v.ID,
			Plate:       v.Plate,
			NewEndTime:  v.EndTime,
			TotalTime:   session.FormatDuration(int(v.PaidMinutes)),
			TotalAmount: v.Amount,
		},
	}
}

type MarkFinedResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Session *SessionData `json:"session"`
}

func FromMarkFinedView(v *queries.SessionView) (*MarkFinedResponse, error) {
	data, err := sessionDataFromView(v)
	if err != nil {
		return nil, err
	}
	return &MarkFinedResponse{
		Success: true,
		Message: "Sesión marcada como multada",
		Session: data,
	}, nil
}

type ActiveSessionData struct {
	SessionData
	TimeRemaining    string `json:"timeRemaining"`
	RemainingMinutes int    `json:"remainingMinutes"`
}

type ActiveListResponse struct {
	Success bool                 `json:"success"`
	Total   int                  `json:"total"`
	Active  []*ActiveSessionData `json:"active"`
}

func FromActiveItems(items []*queries.ActiveSessionItem) (*ActiveListResponse, error) {
	active := make([]*ActiveSessionData, len(items))
	for i, item := range items {
		var data ActiveSessionData
		if err := copier.Copy(&data.SessionData, &item.SessionView); err != nil {
			return nil, err
		}
		data.TimeRemaining = session.FormatDuration(item.RemainingMinutes)
		data.RemainingMinutes = item.RemainingMinutes
		active[i] = &data
	}
	return &ActiveListResponse{Success: true, Total: len(active), Active: active}, nil
}

type ExpiredSessionData struct {
	SessionData
	TimeExpired    string `json:"timeExpired"`
	ExpiredMinutes int    `json:"expiredMinutes"`
}

type ExpiredListResponse struct {
	Success bool                  `json:"success"`
	Total   int                   `json:"total"`
	Expired []*ExpiredSessionData `json:"expired"`
}

func FromExpiredItems(items []*queries.ExpiredSessionItem) (*ExpiredListResponse, error) {
	expired := make([]*ExpiredSessionData, len(items))
	for i, item := range items {
		var data ExpiredSessionData
		if err := copier.Copy(&data.SessionData, &item.SessionView); err != nil {
			return nil, err
		}
		data.TimeExpired = session.FormatDuration(item.ExpiredMinutes)
		data.ExpiredMinutes = item.ExpiredMinutes
		expired[i] = &data
	}
	return &ExpiredListResponse{Success: true, Total: len(expired), Expired: expired}, nil
}

type HistoryResponse struct {
	Success bool           `json:"success"`
	Plate   string         `json:"plate"`
	Total   int            `json:"total"`
	History []*SessionData `json:"history"`
}

func FromHistoryViews(plate string, views []*queries.SessionView) (*HistoryResponse, error) {
	history := make([]*SessionData, len(views))
	for i, v := range views {
		data, err := sessionDataFromView(v)
		if err != nil {
			return nil, err
		}
		history[i] = data
	}
	return &HistoryResponse{Success: true, Plate: plate, Total: len(history), History: history}, nil
}

type StatisticsResponse struct {
	Success    bool                     `json:"success"`
	Date       string                   `json:"date"`
	Statistics *queries.DailyStatistics `json:"statistics"`
}

func FromStatistics(stats *queries.DailyStatistics) *StatisticsResponse {
	return &StatisticsResponse{
		Success:    true,
		Date:       stats.Date,
		Statistics: stats,
	}
}

func sessionDataFromView(v *queries.SessionView) (*SessionData, error) {
	var data SessionData
	if err := copier.Copy(&data, v); err != nil {
		return nil, err
	}
	return &data, nil
}
