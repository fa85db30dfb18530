// Package jobs drives the periodic dashboard refresh so the snapshot's
// lastUpdated stays current without a manual trigger.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/sam-arth07/Phermo/internal/metrics"
)

type Scheduler struct {
	cron      *cron.Cron
	dashboard *metrics.Store
	spec      string
	log       zerolog.Logger
}

func NewScheduler(dashboard *metrics.Store, spec string, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:      c,
		dashboard: dashboard,
		spec:      spec,
		log:       log,
	}
}

func (s *Scheduler) Start() error {
	if s.spec == "" {
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, s.refreshDashboard); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron loop, waiting up to five seconds for a running job.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) refreshDashboard() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.dashboard.Refresh(ctx); err != nil {
		s.log.Error().Err(err).Msg("scheduled dashboard refresh failed")
		return
	}
	if err := s.dashboard.RefreshActivity(ctx); err != nil {
		s.log.Error().Err(err).Msg("scheduled activity refresh failed")
	}
}
