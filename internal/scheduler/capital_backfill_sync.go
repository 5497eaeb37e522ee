package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/jmpark86/solvency-monitor-api/infrastructure/repository"
	"github.com/jmpark86/solvency-monitor-api/internal/config"
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
	"github.com/jmpark86/solvency-monitor-api/internal/usecases/acquiring"
)

// CapitalBackfillSyncConfig holds the scheduling knobs for the periodic
// capital backfill.
type CapitalBackfillSyncConfig struct {
	CronSchedule        string
	LookbackMonths      int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// CapitalBackfillSyncService periodically warms the period cache for every
// active company over a trailing window, so interactive chart requests rarely
// hit the remote source.
type CapitalBackfillSyncService struct {
	scheduler           *gocron.Scheduler
	config              CapitalBackfillSyncConfig
	companyRepo         repository.CompanyRepository
	acquirer            acquiring.Acquirer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCapitalBackfillSyncService(
	companyRepo repository.CompanyRepository,
	acquirer acquiring.Acquirer,
	appConfig *config.Config,
) *CapitalBackfillSyncService {
	syncConfig := CapitalBackfillSyncConfig{
		CronSchedule:        appConfig.BackfillSync.CronSchedule,
		LookbackMonths:      appConfig.BackfillSync.LookbackMonths,
		RequestDelaySeconds: appConfig.BackfillSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.BackfillSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.BackfillSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_months":       syncConfig.LookbackMonths,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("backfill: scheduler configuration loaded")

	return &CapitalBackfillSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		companyRepo: companyRepo,
		acquirer:    acquirer,
		syncRunning: false,
	}
}

// Start schedules the backfill and stops the scheduler when the context is
// cancelled.
func (s *CapitalBackfillSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("backfill: disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("backfill: starting scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCapitalRecords()
	})
	if err != nil {
		return fmt.Errorf("error scheduling capital backfill: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("backfill: stopping scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncCapitalRecords backfills the trailing window for every active company.
// Only one run at a time; overlapping triggers are ignored.
func (s *CapitalBackfillSyncService) syncCapitalRecords() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("backfill: sync already in progress, skipping")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("backfill: starting capital sync for all active companies")

	companies, err := s.getActiveCompanies()
	if err != nil {
		logrus.WithError(err).Error("backfill: error listing companies for capital sync")
		return
	}

	if len(companies) == 0 {
		logrus.Info("backfill: no active companies found for capital sync")
		return
	}

	// Lookback starts at the previous month: the current month has no
	// published statement yet.
	now := time.Now()
	to := domain.PeriodFromTime(now.AddDate(0, -1, 0))
	from := domain.PeriodFromTime(now.AddDate(0, -s.config.LookbackMonths, 0))

	logrus.WithFields(logrus.Fields{
		"from": from,
		"to":   to,
	}).Info("backfill: period window for capital sync")

	s.processCompanies(companies, from, to)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"companies": len(companies),
	}).Info("backfill: capital sync finished")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

func (s *CapitalBackfillSyncService) getActiveCompanies() ([]*domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies([]domain.CompanyStatus{domain.CompanyStatusActive})
	if err != nil {
		return nil, err
	}

	if len(companies) == 0 {
		logrus.Info("backfill: no companies found in directory")
		return []*domain.Company{}, nil
	}

	logrus.WithField("active_companies", len(companies)).Info("backfill: companies found for capital sync")

	return companies, nil
}

// processCompanies backfills each company with a bounded worker pool and a
// delay between requests to stay polite with the remote API.
func (s *CapitalBackfillSyncService) processCompanies(companies []*domain.Company, from, to domain.Period) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, company := range companies {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(c *domain.Company) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"company_id":   c.ID,
				"external_id":  c.ExternalID,
				"company_name": c.Name,
				"from":         from,
				"to":           to,
			}).Info("backfill: ensuring periods for company")

			result, err := s.acquirer.EnsurePeriods(from, to, []*domain.Company{c})
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"company_id":  c.ID,
					"external_id": c.ExternalID,
				}).Error("backfill: error ensuring periods for company")
				return
			}

			if len(result.Failed) > 0 {
				logrus.WithFields(logrus.Fields{
					"company_id":     c.ID,
					"failed_periods": len(result.Failed),
				}).Warn("backfill: some periods failed for company")
			}

			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(company)
	}

	wg.Wait()
}

// TriggerManualSync kicks off a sync outside the schedule.
func (s *CapitalBackfillSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("backfill: sync already in progress, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("backfill: starting manual capital sync")
	go s.syncCapitalRecords()
}

// GetStatus returns the current state of the sync.
func (s *CapitalBackfillSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"lookback_months":        s.config.LookbackMonths,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
