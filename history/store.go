package history

import "context"

// Store defines the interface for run-history persistence.
type Store interface {
	// Create records a new run.
	Create(ctx context.Context, run *Run) error

	// GetByID retrieves a run by its ID.
	GetByID(ctx context.Context, id string) (*Run, error)

	// Update updates a run with the given setters.
	Update(ctx context.Context, id string, setters ...UpdateSetter) error

	// List retrieves the most recent runs, newest first.
	List(ctx context.Context, limit, offset int) ([]*Run, error)
}

// UpdateSetter is a function that updates a run field.
type UpdateSetter func(*Run) error
