package editor

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Janitor periodically evicts idle editing sessions.
type Janitor struct {
	cron    *cron.Cron
	service *Service
	logger  *zap.Logger
}

// NewJanitor schedules the idle sweep on the given cron spec, e.g. "@every 1m".
func NewJanitor(service *Service, spec string, logger *zap.Logger) (*Janitor, error) {
	if spec == "" {
		spec = "@every 1m"
	}

	j := &Janitor{cron: cron.New(), service: service, logger: logger}
	if _, err := j.cron.AddFunc(spec, j.Sweep); err != nil {
		return nil, fmt.Errorf("invalid janitor schedule %q: %w", spec, err)
	}
	return j, nil
}

// Sweep evicts idle sessions once.
func (j *Janitor) Sweep() {
	if n := j.service.EvictIdle(); n > 0 {
		j.logger.Info("Idle session sweep finished", zap.Int("evicted", n))
	}
}

// Start runs the schedule in the background.
func (j *Janitor) Start() {
	j.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}
