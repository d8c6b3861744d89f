package models

import "time"

// Default values the client backfills when the gateway omits optional fields on create.
const (
	DefaultAssignedHours float64 = 40
	DefaultLeaveHours    float64 = 0
)

// Member is a tracked team participant with scheduling attributes.
type Member struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	AssignedHours float64   `json:"assignedHours"`
	LeaveHours    float64   `json:"leaveHours"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"-"`
}

// ProgressPercent reports assigned hours against a full 40h week, clamped to [0, 100].
func (m Member) ProgressPercent() float64 {
	pct := m.AssignedHours / DefaultAssignedHours * 100
	switch {
	case pct > 100:
		return 100
	case pct < 0:
		return 0
	}
	return pct
}

// Workload buckets assigned hours into the bands shown on member cards.
func (m Member) Workload() Workload {
	switch {
	case m.AssignedHours >= 40:
		return WorkloadFull
	case m.AssignedHours >= 30:
		return WorkloadPartial
	default:
		return WorkloadLow
	}
}

type Workload string

const (
	WorkloadFull    Workload = "full"
	WorkloadPartial Workload = "partial"
	WorkloadLow     Workload = "low"
)
