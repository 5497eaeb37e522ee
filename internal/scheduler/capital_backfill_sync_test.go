package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/jmpark86/solvency-monitor-api/infrastructure/repository/mocks"
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
	acquiringmocks "github.com/jmpark86/solvency-monitor-api/internal/usecases/acquiring/mocks"
)

func backfillTestService(
	companyRepo *mocks.MockCompanyRepository,
	acquirer *acquiringmocks.MockAcquirer,
) *CapitalBackfillSyncService {
	return &CapitalBackfillSyncService{
		config: CapitalBackfillSyncConfig{
			CronSchedule:        "0 5 * * *",
			LookbackMonths:      3,
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   2,
			SyncEnabled:         true,
		},
		companyRepo: companyRepo,
		acquirer:    acquirer,
	}
}

func TestCapitalBackfillSyncProcessesAllActiveCompanies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockAcquirer := acquiringmocks.NewMockAcquirer(ctrl)

	companies := []*domain.Company{
		{ID: "aaa111", Name: "Alpha Life", Status: domain.CompanyStatusActive},
		{ID: "bbb222", Name: "Beta General", Status: domain.CompanyStatusActive},
	}

	mockCompanyRepo.EXPECT().
		ListCompanies([]domain.CompanyStatus{domain.CompanyStatusActive}).
		Return(companies, nil)

	// One ensure run per company over the lookback window.
	mockAcquirer.EXPECT().
		EnsurePeriods(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.EnsureResult{
			Fetched: []domain.Period{},
			Failed:  []domain.PeriodFailure{},
		}, nil).
		Times(2)

	service := backfillTestService(mockCompanyRepo, mockAcquirer)
	service.syncCapitalRecords()

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestCapitalBackfillSyncContinuesAfterCompanyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockAcquirer := acquiringmocks.NewMockAcquirer(ctrl)

	companies := []*domain.Company{
		{ID: "aaa111", Name: "Alpha Life", Status: domain.CompanyStatusActive},
		{ID: "bbb222", Name: "Beta General", Status: domain.CompanyStatusActive},
	}

	mockCompanyRepo.EXPECT().
		ListCompanies(gomock.Any()).
		Return(companies, nil)

	// One company fails, the other is still processed.
	mockAcquirer.EXPECT().
		EnsurePeriods(gomock.Any(), gomock.Any(), []*domain.Company{companies[0]}).
		Return(nil, domain.ErrCacheUnavailable)
	mockAcquirer.EXPECT().
		EnsurePeriods(gomock.Any(), gomock.Any(), []*domain.Company{companies[1]}).
		Return(&domain.EnsureResult{
			Fetched: []domain.Period{"202401"},
			Failed:  []domain.PeriodFailure{},
		}, nil)

	service := backfillTestService(mockCompanyRepo, mockAcquirer)
	service.syncCapitalRecords()
}

func TestCapitalBackfillSyncNoActiveCompanies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockAcquirer := acquiringmocks.NewMockAcquirer(ctrl)

	mockCompanyRepo.EXPECT().
		ListCompanies(gomock.Any()).
		Return([]*domain.Company{}, nil)
	// No EnsurePeriods expected.

	service := backfillTestService(mockCompanyRepo, mockAcquirer)
	service.syncCapitalRecords()
}

func TestCapitalBackfillSyncSkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockAcquirer := acquiringmocks.NewMockAcquirer(ctrl)

	// No repository or acquirer calls expected while another run is active.
	service := backfillTestService(mockCompanyRepo, mockAcquirer)
	service.syncRunning = true

	service.syncCapitalRecords()

	assert.True(t, service.syncRunning)
}

func TestCapitalBackfillSyncStatusDuringRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockAcquirer := acquiringmocks.NewMockAcquirer(ctrl)

	// Hold the run open so status requests overlap it.
	release := make(chan struct{})
	mockCompanyRepo.EXPECT().
		ListCompanies(gomock.Any()).
		DoAndReturn(func([]domain.CompanyStatus) ([]*domain.Company, error) {
			<-release
			return []*domain.Company{}, nil
		})

	service := backfillTestService(mockCompanyRepo, mockAcquirer)

	done := make(chan struct{})
	go func() {
		service.syncCapitalRecords()
		close(done)
	}()

	for {
		status := service.GetStatus()
		if status["sync_running"].(bool) {
			assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
			break
		}
		time.Sleep(time.Millisecond)
	}

	close(release)
	<-done

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
}

func TestCapitalBackfillSyncGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := backfillTestService(
		mocks.NewMockCompanyRepository(ctrl),
		acquiringmocks.NewMockAcquirer(ctrl),
	)

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 3, status["lookback_months"])
}
