package request

// PayRequest registers a new paid parking window. Optional fields fall back
// to the ledger defaults (zone "General", payment method "efectivo").
type PayRequest struct {
	Plate         string   `json:"plate" binding:"required"`
	Zone          *string  `json:"zone,omitempty"`
	Location      *string  `json:"location,omitempty"`
	Minutes       int      `json:"minutes" binding:"required,gt=0"`
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gte=0"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	MeterID       *string  `json:"meterId,omitempty"`
}

func (r PayRequest) ZoneOrEmpty() string {
	if r.Zone == nil {
		return ""
	}
	return *r.Zone
}

func (r PayRequest) AmountOrZero() float64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}

func (r PayRequest) PaymentMethodOrEmpty() string {
	if r.PaymentMethod == nil {
		return ""
	}
	return *r.PaymentMethod
}

type ExtendRequest struct {
	Plate        string   `json:"plate" binding:"required"`
	ExtraMinutes int      `json:"extraMinutes" binding:"required,gt=0"`
	ExtraAmount  *float64 `json:"extraAmount,omitempty" binding:"omitempty,gte=0"`
}

func (r ExtendRequest) ExtraAmountOrZero() float64 {
	if r.ExtraAmount == nil {
		return 0
	}
	return *r.ExtraAmount
}

type MarkFinedRequest struct {
	FineReference *string `json:"fineReference,omitempty"`
}
