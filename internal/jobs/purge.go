package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"shortlink/internal/conf"
)

// TombstonePurger deletes retired codes older than a cutoff.
type TombstonePurger interface {
	PurgeRetired(ctx context.Context, before time.Time) (int64, error)
}

// RetentionPurger periodically removes retired-code tombstones whose
// retention window has passed, making those codes issuable again.
// It satisfies the kratos transport.Server interface.
type RetentionPurger struct {
	store     TombstonePurger
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *zap.Logger
	now       func() time.Time
}

func NewRetentionPurger(c *conf.Shortcode, store TombstonePurger, logger *zap.Logger) *RetentionPurger {
	logger = logger.Named("retention-purger")
	cl := cronLogger{logger.Sugar()}
	return &RetentionPurger{
		store:     store,
		retention: c.Retention.Std(),
		schedule:  c.PurgeSchedule,
		cron: cron.New(cron.WithChain(
			cron.Recover(cl),
			cron.SkipIfStillRunning(cl),
		), cron.WithLogger(cl)),
		logger: logger,
		now:    time.Now,
	}
}

// PurgeOnce removes every tombstone older than the retention window.
func (p *RetentionPurger) PurgeOnce(ctx context.Context) (int64, error) {
	cutoff := p.now().Add(-p.retention)
	n, err := p.store.PurgeRetired(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge retired codes: %w", err)
	}
	p.logger.Info("purged retired codes", zap.Int64("removed", n), zap.Time("cutoff", cutoff))
	return n, nil
}

// Start schedules the purge. An empty schedule disables it.
func (p *RetentionPurger) Start(context.Context) error {
	if p.schedule == "" {
		p.logger.Info("retention purge disabled")
		return nil
	}
	_, err := p.cron.AddFunc(p.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := p.PurgeOnce(ctx); err != nil {
			p.logger.Error("scheduled purge failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid purge schedule %q: %w", p.schedule, err)
	}
	p.cron.Start()
	return nil
}

// Stop halts scheduling and waits for a running purge, bounded by ctx.
func (p *RetentionPurger) Stop(ctx context.Context) error {
	select {
	case <-p.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
