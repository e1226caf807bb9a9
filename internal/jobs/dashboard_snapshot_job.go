package jobs

import (
	"context"
	"fmt"
	"time"

	"deliverydesk/internal/core/application/usecases/queries"
	"deliverydesk/internal/core/domain/services"
	"deliverydesk/internal/pkg/logger"
	"deliverydesk/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const dashboardSnapshotJobName = "dashboard_snapshot"

// DefaultDashboardSchedule runs the snapshot once a minute.
const DefaultDashboardSchedule = "@every 1m"

// DashboardSource computes the current dashboard summary.
type DashboardSource interface {
	Handle(ctx context.Context, query queries.GetDashboardSummaryQuery) (services.DashboardSummary, error)
}

// DashboardSnapshotJob periodically recomputes the regional completion
// summary and publishes it as gauges.
type DashboardSnapshotJob struct {
	source    DashboardSource
	schedule  string
	cron      *cron.Cron
	dashboard *metrics.DashboardMetrics
	jobs      *metrics.CronJobMetrics
	logger    *logger.Logger
}

// NewDashboardSnapshotJob accepts standard five-field cron specs and
// descriptors such as "@every 30s". A blank schedule uses
// DefaultDashboardSchedule. Metrics and logger may be nil.
func NewDashboardSnapshotJob(
	source DashboardSource,
	schedule string,
	dashboard *metrics.DashboardMetrics,
	jobs *metrics.CronJobMetrics,
	log *logger.Logger,
) *DashboardSnapshotJob {
	if schedule == "" {
		schedule = DefaultDashboardSchedule
	}
	if log == nil {
		log = logger.Nop()
	}

	return &DashboardSnapshotJob{
		source:    source,
		schedule:  schedule,
		cron:      cron.New(),
		dashboard: dashboard,
		jobs:      jobs,
		logger:    log,
	}
}

// Start schedules the job. The first snapshot is taken at the first tick.
func (j *DashboardSnapshotJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.RunOnce(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info(j.context(context.Background()), "dashboard snapshot job started ("+j.schedule+")")
	return nil
}

// Stop waits for a running snapshot to finish.
func (j *DashboardSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info(j.context(context.Background()), "dashboard snapshot job stopped")
}

// RunOnce computes and publishes one snapshot. Failures are logged and
// counted; the previous gauges are kept.
func (j *DashboardSnapshotJob) RunOnce(ctx context.Context) error {
	ctx = j.context(ctx)
	start := time.Now()

	summary, err := j.source.Handle(ctx, queries.NewGetDashboardSummaryQuery())
	j.jobs.ObserveDuration(dashboardSnapshotJobName, time.Since(start))
	if err != nil {
		j.jobs.IncFailure(dashboardSnapshotJobName)
		j.logger.Error(ctx, "dashboard snapshot failed", err)
		return err
	}

	buckets := Buckets(summary)
	j.dashboard.Publish(buckets)
	j.jobs.IncSuccess(dashboardSnapshotJobName)

	fields := make(map[string]any, len(buckets))
	for k, v := range buckets {
		fields[k] = v
	}
	j.logger.Info(j.logger.WithFields(ctx, fields), "dashboard snapshot published")
	return nil
}

func (j *DashboardSnapshotJob) context(ctx context.Context) context.Context {
	return j.logger.WithComponent(ctx, "dashboard_snapshot_job")
}

// Buckets flattens a summary into gauge labels.
func Buckets(s services.DashboardSummary) map[string]int {
	return map[string]int{
		metrics.BucketCentralTotal: s.CentralTotal,
		metrics.BucketCentralAE:    s.CentralAE,
		metrics.BucketCentralFM:    s.CentralFM,
		metrics.BucketCentralNW:    s.CentralNW,
		metrics.BucketEast:         s.East,
		metrics.BucketWest:         s.West,
	}
}
