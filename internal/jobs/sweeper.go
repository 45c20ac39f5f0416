package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/repositories"
)

// AssignmentSweeper periodically removes teacher assignments that point
// at users who no longer hold the teacher role. Role changes leave the
// user's old assignments behind; the sweep clears enrollment teacher
// references and course assignment rows for such users.
type AssignmentSweeper struct {
	enrollmentRepo repositories.IEnrollmentRepository
	courseRepo     repositories.ICourseRepository
	schedule       string
	logger         zerolog.Logger
	cron           *cron.Cron
}

// NewAssignmentSweeper creates a sweeper with the given cron schedule
func NewAssignmentSweeper(
	enrollmentRepo repositories.IEnrollmentRepository,
	courseRepo repositories.ICourseRepository,
	schedule string,
	logger zerolog.Logger,
) *AssignmentSweeper {
	return &AssignmentSweeper{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		schedule:       schedule,
		logger:         logger,
	}
}

// Start registers the sweep on its schedule and starts the scheduler
func (s *AssignmentSweeper) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.schedule, s.runSweep); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info().Str("schedule", s.schedule).Msg("Assignment sweeper started")
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish
func (s *AssignmentSweeper) Stop() {
	if s.cron == nil {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Assignment sweeper stopped")
}

// RunOnce performs a single sweep. Exposed so the sweep can also be
// triggered at startup or from tooling.
func (s *AssignmentSweeper) RunOnce(ctx context.Context) error {
	cleared, err := s.enrollmentRepo.ClearStaleTeacherRefs(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to clear stale enrollment teacher references")
		return err
	}

	removed, err := s.courseRepo.RemoveStaleTeacherAssignments(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to remove stale course assignments")
		return err
	}

	if cleared > 0 || removed > 0 {
		s.logger.Info().
			Int64("enrollmentsCleared", cleared).
			Int64("courseAssignmentsRemoved", removed).
			Msg("Stale teacher assignments swept")
	}
	return nil
}

func (s *AssignmentSweeper) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	_ = s.RunOnce(ctx)
}
