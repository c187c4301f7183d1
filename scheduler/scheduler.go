package scheduler

import (
	"fmt"
	"time"

	"leaguestats/pkg/config"
	"leaguestats/pkg/logger"
	"leaguestats/scheduler/jobs"

	"github.com/go-co-op/gocron/v2"
)

// Interval of the cache report.
const DefaultReportInterval = 5 * time.Minute

// SchedulerDeps is the dependency list of the background jobs.
type SchedulerDeps struct {
	Config         *config.Config
	Logger         *logger.NewLogger
	Uploader       jobs.LogUploader // Nil disables the upload job.
	Stats          *jobs.CacheStats
	Service        string
	ReportInterval time.Duration
	Options        []gocron.SchedulerOption
}

// NewScheduler creates the scheduler with the jobs registered, not started.
func NewScheduler(deps *SchedulerDeps) (gocron.Scheduler, error) {
	log := deps.Logger
	if log == nil {
		log = logger.Discard()
	}

	options := append([]gocron.SchedulerOption{gocron.WithLocation(time.UTC)}, deps.Options...)
	s, err := gocron.NewScheduler(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	if deps.Uploader != nil && deps.Config.BucketEnabled() {
		_, err = s.NewJob(
			gocron.DurationJob(deps.Config.Log.UploadInterval),
			gocron.NewTask(
				jobs.UploadLogs,
				deps.Uploader,
				log,
				deps.Service,
				time.Now,
			),
			gocron.WithName("log-upload"),
			gocron.WithTags("logs"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create log upload job: %w", err)
		}
	}

	if deps.Stats != nil {
		interval := deps.ReportInterval
		if interval <= 0 {
			interval = DefaultReportInterval
		}
		_, err = s.NewJob(
			gocron.DurationJob(interval),
			gocron.NewTask(
				jobs.ReportCache,
				deps.Stats,
				log,
			),
			gocron.WithName("cache-report"),
			gocron.WithTags("cache"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache report job: %w", err)
		}
	}

	return s, nil
}
