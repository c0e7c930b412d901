package session

// Status is the lifecycle state of a parking session. Expiry is evaluated
// lazily against the clock on read; the stored value may lag behind until a
// Verify touches the row.
type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusFined   Status = "fined"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusFined:
		return true
	}
	return false
}
