package history

// SetStatus returns an UpdateSetter that sets the run's status.
func SetStatus(status Status) UpdateSetter {
	return func(r *Run) error {
		if !status.IsValid() {
			return ErrInvalidStatus
		}
		r.Status = status
		return nil
	}
}

// SetError returns an UpdateSetter that records an engine-level error message.
func SetError(msg string) UpdateSetter {
	return func(r *Run) error {
		r.Error = msg
		return nil
	}
}

// SetCompleted returns an UpdateSetter that finalizes the run through
// Complete, stamping its completion time. It fails when the run is not
// currently running or the status is not final.
func SetCompleted(status Status, tests, passed, failed, passRate int) UpdateSetter {
	return func(r *Run) error {
		return r.Complete(status, tests, passed, failed, passRate)
	}
}

// SetCounts returns an UpdateSetter that sets the run's aggregate counts.
func SetCounts(tests, passed, failed, passRate int) UpdateSetter {
	return func(r *Run) error {
		r.Tests = tests
		r.Passed = passed
		r.Failed = failed
		r.PassRate = passRate
		return nil
	}
}
