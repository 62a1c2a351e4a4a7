package model

import "fmt"

// Status is the lifecycle state of a pickup. The usual flow is
// pending -> scheduled -> completed, but the API accepts any of the
// three values on update.
type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusCompleted:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown pickup status %q", s)
	}
	return st, nil
}
