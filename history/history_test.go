package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Validate(t *testing.T) {
	tests := []struct {
		name    string
		run     Run
		wantErr error
	}{
		{
			name: "valid run",
			run:  Run{PlanName: "example", Target: "cypress", Status: StatusRunning},
		},
		{
			name:    "missing plan name",
			run:     Run{Target: "cypress", Status: StatusRunning},
			wantErr: ErrInvalidPlanName,
		},
		{
			name:    "missing target",
			run:     Run{PlanName: "example", Status: StatusRunning},
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "invalid status",
			run:     Run{PlanName: "example", Target: "cypress", Status: Status("queued")},
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRun_Complete(t *testing.T) {
	run := Run{PlanName: "example", Target: "cypress", Status: StatusRunning}

	err := run.Complete(StatusPassed, 3, 3, 0, 100)
	assert.NoError(t, err)
	assert.Equal(t, StatusPassed, run.Status)
	assert.Equal(t, 100, run.PassRate)
	assert.NotNil(t, run.CompletedAt)

	// Completing twice fails: the run is no longer running.
	err = run.Complete(StatusFailed, 3, 0, 3, 0)
	assert.ErrorIs(t, err, ErrRunNotRunning)
}

func TestRun_CompleteRejectsNonFinalStatus(t *testing.T) {
	run := Run{PlanName: "example", Target: "cypress", Status: StatusRunning}
	err := run.Complete(StatusRunning, 0, 0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatus_IsFinal(t *testing.T) {
	assert.False(t, StatusRunning.IsFinal())
	assert.True(t, StatusPassed.IsFinal())
	assert.True(t, StatusFailed.IsFinal())
	assert.True(t, StatusErrored.IsFinal())
}
