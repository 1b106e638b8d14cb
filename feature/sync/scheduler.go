package sync

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs background syncs on a cron schedule. A run that is still going when
// the next tick fires makes that tick a no-op.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
	logger  *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewScheduler parses the cron expression (standard five fields or descriptors such as
// "@every 15m") and prepares the job. It does not start the scheduler.
func NewScheduler(spec string, service *Service, logger *zap.Logger) (*Scheduler, error) {
	cl := cronLogger{l: logger.Sugar()}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:    c,
		service: service,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}

	if _, err := c.AddFunc(spec, s.tick); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid sync schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) tick() {
	s.logger.Info("Scheduled sync started")
	_, _ = s.service.Run(s.ctx, RunRequest{}, nil)
}

// Start begins firing the schedule in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels a running batch and waits for it to return or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduled sync did not stop in time")
	}
}

// cronLogger routes cron's logr style calls into zap.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
