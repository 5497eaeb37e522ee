package company

import (
	"github.com/sirupsen/logrus"

	"github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/fss"
	"github.com/jmpark86/solvency-monitor-api/infrastructure/repository"
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
)

// Service maintains the local company directory against the remote registry.
type Service interface {
	GetCompany(companyID string) (*domain.Company, error)
	ListCompanies() ([]*domain.Company, error)
	SyncCompanies() (*domain.SyncCompaniesResponse, error)
}

type CompanyService struct {
	companyRepository repository.CompanyRepository
	directorySource   fss.FSSIntegrator
}

func New(
	companyRepository repository.CompanyRepository,
	directorySource fss.FSSIntegrator,
) Service {
	return &CompanyService{
		companyRepository: companyRepository,
		directorySource:   directorySource,
	}
}

func (s *CompanyService) GetCompany(companyID string) (*domain.Company, error) {
	company, err := s.companyRepository.GetCompanyByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	return company, nil
}

func (s *CompanyService) ListCompanies() ([]*domain.Company, error) {
	return s.companyRepository.ListCompanies([]domain.CompanyStatus{domain.CompanyStatusActive})
}

// SyncCompanies pulls the registry from the remote source and upserts it into
// the directory. Companies are matched by external ID, so re-running the sync
// is idempotent.
func (s *CompanyService) SyncCompanies() (*domain.SyncCompaniesResponse, error) {
	companies, err := s.directorySource.GetCompanies()
	if err != nil {
		logrus.WithError(err).Error("company: failed to fetch registry from remote source")
		return nil, err
	}

	written, err := s.companyRepository.SaveOrUpdate(companies)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"written": written,
			"error":   err.Error(),
		}).Error("company: failed to upsert synced companies")
		return nil, err
	}

	logrus.WithField("total_companies", written).Info("company: directory sync finished")

	return &domain.SyncCompaniesResponse{
		Quantity: written,
		Message:  "companies synced successfully",
	}, nil
}
