package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hairizuan-noorazman/e2egen/logger"
)

// SQLiteStore implements the Store interface using GORM and SQLite. The
// history database lives next to the run artifacts; one file per workspace.
type SQLiteStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewSQLiteStore opens (creating if needed) the history database at path and
// migrates the schema.
func NewSQLiteStore(path string, log logger.Logger) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history schema: %w", err)
	}

	return &SQLiteStore{db: db, logger: log}, nil
}

// Create records a new run in the database.
func (s *SQLiteStore) Create(ctx context.Context, run *Run) error {
	if run.Status == "" {
		run.Status = StatusRunning
	}

	if err := run.Validate(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		s.logger.Error(ctx, "failed to record run", logger.Fields{
			"error":     err.Error(),
			"plan_name": run.PlanName,
		})
		return err
	}

	s.logger.Info(ctx, "run recorded", logger.Fields{
		"run_id":    run.ID,
		"plan_name": run.PlanName,
		"target":    run.Target,
	})
	return nil
}

// GetByID retrieves a run by its ID.
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (*Run, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrRunNotFound
	}

	var run Run
	err = s.db.WithContext(ctx).Where("id = ?", parsed).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRunNotFound
		}
		s.logger.Error(ctx, "failed to get run", logger.Fields{
			"error":  err.Error(),
			"run_id": id,
		})
		return nil, err
	}
	return &run, nil
}

// Update updates a run with the given setters.
func (s *SQLiteStore) Update(ctx context.Context, id string, setters ...UpdateSetter) error {
	run, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, setter := range setters {
		if err := setter(run); err != nil {
			return err
		}
	}

	if err := s.db.WithContext(ctx).Save(run).Error; err != nil {
		s.logger.Error(ctx, "failed to update run", logger.Fields{
			"error":  err.Error(),
			"run_id": id,
		})
		return err
	}
	return nil
}

// List retrieves the most recent runs, newest first.
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}

	var runs []*Run
	err := s.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&runs).Error
	if err != nil {
		s.logger.Error(ctx, "failed to list runs", logger.Fields{
			"error": err.Error(),
		})
		return nil, err
	}
	return runs, nil
}
