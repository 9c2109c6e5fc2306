package planning

import (
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
)

type ConflictType string

const (
	ConflictWorkerOverlap    ConflictType = "worker-overlap"
	ConflictClientDoubleBook ConflictType = "client-double-booking"
	ConflictCapacityExceeded ConflictType = "capacity-exceeded"
)

// Conflict is a business situation to surface, not a program error: detected
// conflicts are returned as ordinary values and never abort a computation.
type Conflict struct {
	Type ConflictType `json:"type"`
	// Day is set for overlap conflicts (1=Monday..7=Sunday), zero for
	// capacity findings.
	Day           assignment.Weekday `json:"day,omitempty"`
	AssignmentIDs []string           `json:"assignment_ids,omitempty"`
	WorkerID      string             `json:"worker_id,omitempty"`
	ClientID      string             `json:"client_id,omitempty"`
	// TotalHours carries the offending weekly total for capacity findings.
	TotalHours float64 `json:"total_hours,omitempty"`
	MaxHours   float64 `json:"max_hours,omitempty"`
}

type ReassignReason string

const (
	ReasonHoliday ReassignReason = "holiday"
	ReasonWeekend ReassignReason = "weekend"
)

// ReassignedService records festive-day service moved from a laborable
// worker onto a holiday/weekend worker. Created fresh per computation and
// never persisted here.
type ReassignedService struct {
	Date               time.Time      `json:"date"`
	OriginalWorkerID   string         `json:"original_worker_id"`
	ReassignedWorkerID string         `json:"reassigned_worker_id"`
	OriginalHours      float64        `json:"original_hours"`
	ReassignedHours    float64        `json:"reassigned_hours"`
	Reason             ReassignReason `json:"reason"`
}

// UnresolvedService flags a festive day whose laborable service could not be
// absorbed by any holiday/weekend worker. Surfaced explicitly instead of
// dropping the service without trace.
type UnresolvedService struct {
	Date     time.Time      `json:"date"`
	WorkerID string         `json:"worker_id"`
	Hours    float64        `json:"hours"`
	Reason   ReassignReason `json:"reason"`
}

type ReassignmentResult struct {
	Reassignments        []ReassignedService `json:"reassignments"`
	Unresolved           []UnresolvedService `json:"unresolved"`
	TotalReassignedHours float64             `json:"total_reassigned_hours"`
}

// DayPlanEntry is one row of the month plan; only days with nonzero
// scheduled hours appear.
type DayPlanEntry struct {
	Date      time.Time `json:"date"`
	Hours     float64   `json:"hours"`
	IsHoliday bool      `json:"is_holiday"`
	WorkerID  string    `json:"worker_id"`
}

type MonthlyPlan struct {
	Planning      []DayPlanEntry      `json:"planning"`
	Reassignments []ReassignedService `json:"reassignments"`
	Unresolved    []UnresolvedService `json:"unresolved"`
}

type BalanceStatus string

const (
	StatusExcess  BalanceStatus = "excess"
	StatusDeficit BalanceStatus = "deficit"
	StatusPerfect BalanceStatus = "perfect"
)

// Balance compares used hours against a budget for one month. Ephemeral and
// recomputed on demand; two calls over the same snapshot yield identical
// output.
type Balance struct {
	EntityID        string        `json:"entity_id"`
	Month           int           `json:"month"`
	Year            int           `json:"year"`
	ContractedHours float64       `json:"contracted_hours"`
	UsedHours       float64       `json:"used_hours"`
	RemainingHours  float64       `json:"remaining_hours"`
	Status          BalanceStatus `json:"status"`
	Percentage      float64       `json:"percentage"`
}

// MonthlyBalanceRecord is the persisted snapshot shape written by the cron
// job, never by the computations themselves. Upserted on
// (client_id, year, month) with last-write-wins semantics.
type MonthlyBalanceRecord struct {
	ClientID      string  `json:"client_id"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	AssignedHours float64 `json:"assigned_hours"`
	RealHours     float64 `json:"real_hours"`
	Difference    float64 `json:"difference"`
}
