package company_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	fssmocks "github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/fss/mocks"
	"github.com/jmpark86/solvency-monitor-api/infrastructure/repository/mocks"
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
	"github.com/jmpark86/solvency-monitor-api/internal/usecases/company"
)

func TestSyncCompanies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCompanyRepository(ctrl)
	mockSource := fssmocks.NewMockFSSIntegrator(ctrl)

	synced := []*domain.Company{
		{ExternalID: "0010001", Name: "Alpha Life", Sector: domain.CompanySectorLife, Status: domain.CompanyStatusActive},
		{ExternalID: "0020002", Name: "Beta General", Sector: domain.CompanySectorNonLife, Status: domain.CompanyStatusActive},
	}

	mockSource.EXPECT().GetCompanies().Return(synced, nil)
	mockRepo.EXPECT().SaveOrUpdate(synced).Return(2, nil)

	service := company.New(mockRepo, mockSource)

	response, err := service.SyncCompanies()

	require.NoError(t, err)
	assert.Equal(t, 2, response.Quantity)
	assert.False(t, response.Error)
}

func TestSyncCompaniesSourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCompanyRepository(ctrl)
	mockSource := fssmocks.NewMockFSSIntegrator(ctrl)

	mockSource.EXPECT().GetCompanies().Return(nil, errors.New("request failed with status: 500 Internal Server Error"))

	service := company.New(mockRepo, mockSource)

	response, err := service.SyncCompanies()

	require.Error(t, err)
	assert.Nil(t, response)
}

func TestGetCompanyNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCompanyRepository(ctrl)
	mockSource := fssmocks.NewMockFSSIntegrator(ctrl)

	mockRepo.EXPECT().GetCompanyByID("zzz999").Return(nil, nil)

	service := company.New(mockRepo, mockSource)

	result, err := service.GetCompany("zzz999")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestListCompaniesFiltersActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCompanyRepository(ctrl)
	mockSource := fssmocks.NewMockFSSIntegrator(ctrl)

	active := []*domain.Company{{ID: "aaa111", Name: "Alpha Life", Status: domain.CompanyStatusActive}}

	mockRepo.EXPECT().
		ListCompanies([]domain.CompanyStatus{domain.CompanyStatusActive}).
		Return(active, nil)

	service := company.New(mockRepo, mockSource)

	result, err := service.ListCompanies()

	require.NoError(t, err)
	assert.Equal(t, active, result)
}
