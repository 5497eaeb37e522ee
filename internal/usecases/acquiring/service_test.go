package acquiring_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	fssmocks "github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/fss/mocks"
	"github.com/jmpark86/solvency-monitor-api/infrastructure/repository/mocks"
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
	"github.com/jmpark86/solvency-monitor-api/internal/usecases/acquiring"
)

func newTestCompanies() []*domain.Company {
	return []*domain.Company{
		{ID: "aaa111", ExternalID: "0010001", Name: "Alpha Life", Sector: domain.CompanySectorLife},
		{ID: "bbb222", ExternalID: "0020002", Name: "Beta General", Sector: domain.CompanySectorNonLife},
	}
}

func newCapitalRecord(companyID string, period domain.Period) *domain.CapitalRecord {
	return &domain.CapitalRecord{
		CompanyID:        companyID,
		Period:           period,
		AvailableCapital: decimal.NewFromInt(215),
		RequiredCapital:  decimal.NewFromInt(100),
	}
}

func TestEnsurePeriodsFullyCachedFetchesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCapitalRecordRepository(ctrl)
	mockSource := fssmocks.NewMockFSSIntegrator(ctrl)

	companies := newTestCompanies()
	from, to := domain.Period("202401"), domain.Period("202402")

	cached := make([]*domain.CapitalRecord, 0)
	for _, period := range domain.PeriodsBetween(from, to) {
		for _, company := range companies {
			cached = append(cached, newCapitalRecord(company.ID, period))
		}
	}

	mockRepo.EXPECT().
		GetRange(from, to, []string{"aaa111", "bbb222"}).
		Return(cached, nil)
	// No FetchCapitalRecords and no SaveOrUpdate expected.

	service := acquiring.New(mockRepo, mockSource)

	result, err := service.EnsurePeriods(from, to, companies)

	require.NoError(t, err)
	assert.Empty(t, result.Fetched)
	assert.Empty(t, result.Failed)
}

func TestEnsurePeriodsFetchesOnlyMissingPeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCapitalRecordRepository(ctrl)
	mockSource := fssmocks.NewMockFSSIntegrator(ctrl)

	companies := newTestCompanies()
	from, to := domain.Period("202401"), domain.Period("202403")

	// Only 202402 is fully cached.
	cached := []*domain.CapitalRecord{
		newCapitalRecord("aaa111", "202402"),
		newCapitalRecord("bbb222", "202402"),
	}

	mockRepo.EXPECT().
		GetRange(from, to, []string{"aaa111", "bbb222"}).
		Return(cached, nil)

	for _, period := range []domain.Period{"202401", "202403"} {
		period := period
		mockSource.EXPECT().
			FetchCapitalRecords(period, companies).
			Return([]*domain.CapitalRecord{
				newCapitalRecord("aaa111", period),
				newCapitalRecord("bbb222", period),
			}, nil)
	}

	mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(4)

	service := acquiring.New(mockRepo, mockSource)

	result, err := service.EnsurePeriods(from, to, companies)

	require.NoError(t, err)
	assert.Equal(t, []domain.Period{"202401", "202403"}, result.Fetched)
	assert.Empty(t, result.Failed)
}

func TestEnsurePeriodsFetchesOnlyMissingCompanies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCapitalRecordRepository(ctrl)
	mockSource := fssmocks.NewMockFSSIntegrator(ctrl)

	companies := newTestCompanies()
	from, to := domain.Period("202401"), domain.Period("202401")

	// One of the two companies is already cached for the period.
	mockRepo.EXPECT().
		GetRange(from, to, []string{"aaa111", "bbb222"}).
		Return([]*domain.CapitalRecord{newCapitalRecord("aaa111", "202401")}, nil)

	mockSource.EXPECT().
		FetchCapitalRecords(domain.Period("202401"), []*domain.Company{companies[1]}).
		Return([]*domain.CapitalRecord{newCapitalRecord("bbb222", "202401")}, nil)

	mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	service := acquiring.New(mockRepo, mockSource)

	result, err := service.EnsurePeriods(from, to, companies)

	require.NoError(t, err)
	assert.Equal(t, []domain.Period{"202401"}, result.Fetched)
	assert.Empty(t, result.Failed)
}

func TestEnsurePeriodsRecordsFailureAndContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCapitalRecordRepository(ctrl)
	mockSource := fssmocks.NewMockFSSIntegrator(ctrl)

	companies := newTestCompanies()
	from, to := domain.Period("202401"), domain.Period("202402")

	mockRepo.EXPECT().
		GetRange(from, to, []string{"aaa111", "bbb222"}).
		Return([]*domain.CapitalRecord{}, nil)

	fetchErr := &domain.RemoteFetchError{
		Source: "fss",
		Period: "202401",
		Err:    errors.New("request failed with status: 503 Service Unavailable"),
	}

	mockSource.EXPECT().
		FetchCapitalRecords(domain.Period("202401"), companies).
		Return(nil, fetchErr)

	mockSource.EXPECT().
		FetchCapitalRecords(domain.Period("202402"), companies).
		Return([]*domain.CapitalRecord{
			newCapitalRecord("aaa111", "202402"),
			newCapitalRecord("bbb222", "202402"),
		}, nil)

	mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)

	service := acquiring.New(mockRepo, mockSource)

	result, err := service.EnsurePeriods(from, to, companies)

	require.NoError(t, err)
	assert.Equal(t, []domain.Period{"202402"}, result.Fetched)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, domain.Period("202401"), result.Failed[0].Period)
	assert.Contains(t, result.Failed[0].Error, "503")
}

func TestEnsurePeriodsCacheUnavailableIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCapitalRecordRepository(ctrl)
	mockSource := fssmocks.NewMockFSSIntegrator(ctrl)

	companies := newTestCompanies()
	from, to := domain.Period("202401"), domain.Period("202402")

	mockRepo.EXPECT().
		GetRange(from, to, gomock.Any()).
		Return(nil, fmt.Errorf("error querying capital records: %w", domain.ErrCacheUnavailable))

	service := acquiring.New(mockRepo, mockSource)

	result, err := service.EnsurePeriods(from, to, companies)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)
}

func TestEnsurePeriodsCacheWriteFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCapitalRecordRepository(ctrl)
	mockSource := fssmocks.NewMockFSSIntegrator(ctrl)

	companies := newTestCompanies()
	from, to := domain.Period("202401"), domain.Period("202401")

	mockRepo.EXPECT().
		GetRange(from, to, gomock.Any()).
		Return([]*domain.CapitalRecord{}, nil)

	mockSource.EXPECT().
		FetchCapitalRecords(domain.Period("202401"), companies).
		Return([]*domain.CapitalRecord{newCapitalRecord("aaa111", "202401")}, nil)

	mockRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(fmt.Errorf("error upserting capital record: %w", domain.ErrCacheUnavailable))

	service := acquiring.New(mockRepo, mockSource)

	result, err := service.EnsurePeriods(from, to, companies)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)
}

func TestEnsurePeriodsEmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCapitalRecordRepository(ctrl)
	mockSource := fssmocks.NewMockFSSIntegrator(ctrl)

	service := acquiring.New(mockRepo, mockSource)

	// Inverted range: nothing to do, no cache access.
	result, err := service.EnsurePeriods("202404", "202401", newTestCompanies())

	require.NoError(t, err)
	assert.Empty(t, result.Fetched)
	assert.Empty(t, result.Failed)

	// No companies: nothing to do either.
	result, err = service.EnsurePeriods("202401", "202404", nil)

	require.NoError(t, err)
	assert.Empty(t, result.Fetched)
	assert.Empty(t, result.Failed)
}
