package lead

import "time"

// Status represents lead status
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Lead represents a sales contact record. ID and CreatedAt are immutable
// after creation; UpdatedAt is touched on every mutation.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsActive returns true if the lead is active
func (l *Lead) IsActive() bool {
	return l.Status == StatusActive
}
