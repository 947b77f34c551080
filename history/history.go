package history

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrRunNotFound is returned when a recorded run is not found.
	ErrRunNotFound = errors.New("run not found")

	// ErrInvalidPlanName is returned when plan_name is empty.
	ErrInvalidPlanName = errors.New("plan_name is required")

	// ErrInvalidTarget is returned when target is empty.
	ErrInvalidTarget = errors.New("target is required")

	// ErrInvalidStatus is returned when status is invalid.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrRunNotRunning is returned when completing a run that is not running.
	ErrRunNotRunning = errors.New("run is not running")
)

// Status represents the lifecycle state of a recorded run.
type Status string

const (
	StatusRunning Status = "running"
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusErrored Status = "errored"
)

// IsValid checks if the status is valid.
func (s Status) IsValid() bool {
	switch s {
	case StatusRunning, StatusPassed, StatusFailed, StatusErrored:
		return true
	default:
		return false
	}
}

// IsFinal checks if the status is a final status.
func (s Status) IsFinal() bool {
	return s == StatusPassed || s == StatusFailed || s == StatusErrored
}

// Run records one execution of a plan against a target, with its aggregate
// counts, for the history listing.
type Run struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	PlanName    string     `json:"plan_name" gorm:"type:varchar(255);not null;index:idx_plan_name"`
	Target      string     `json:"target" gorm:"type:varchar(32);not null"`
	Suites      int        `json:"suites" gorm:"not null"`
	Tests       int        `json:"tests" gorm:"not null"`
	Passed      int        `json:"passed" gorm:"not null"`
	Failed      int        `json:"failed" gorm:"not null"`
	PassRate    int        `json:"pass_rate" gorm:"not null"`
	Status      Status     `json:"status" gorm:"type:varchar(20);not null;index:idx_status"`
	Error       string     `json:"error,omitempty" gorm:"type:text"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// BeforeCreate hook to generate a UUID and stamp the start time before
// recording a new run.
func (r *Run) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now()
	}
	return nil
}

// Validate checks if the run has valid required fields.
func (r *Run) Validate() error {
	if r.PlanName == "" {
		return ErrInvalidPlanName
	}
	if r.Target == "" {
		return ErrInvalidTarget
	}
	if !r.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// Complete sets the final status and counts. Returns an error if the run is
// not currently running or the status is not final.
func (r *Run) Complete(status Status, tests, passed, failed, passRate int) error {
	if r.Status != StatusRunning {
		return ErrRunNotRunning
	}
	if !status.IsFinal() {
		return ErrInvalidStatus
	}
	now := time.Now()
	r.CompletedAt = &now
	r.Status = status
	r.Tests = tests
	r.Passed = passed
	r.Failed = failed
	r.PassRate = passRate
	return nil
}
