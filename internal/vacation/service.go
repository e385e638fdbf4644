package vacation

import (
	"log/slog"

	"github.com/dkravets/unit-roster/internal"
	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
)

type RepositoryAPI interface {
	GetAll() ([]*Vacation, error)
	GetByID(id int64) (*rosterDatamodel.Vacation, error)
	GetDenormalized(id int64) (*Vacation, error)
	Create(row *rosterDatamodel.Vacation) error
	Update(row *rosterDatamodel.Vacation) error
	Delete(id int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List() ([]*Vacation, error) {
	vacations, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list vacations", "error", err)
		return nil, internal.NewInternalError("failed to list vacations", err)
	}
	return vacations, nil
}

func (s *Service) Create(dto VacationDTO) (*Vacation, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	status := dto.Status
	if status == "" {
		status = "pending"
	}
	row := &rosterDatamodel.Vacation{
		PersonID:  *dto.PersonID.Ptr(),
		StartDate: dto.StartDate,
		EndDate:   dto.EndDate,
		Status:    status,
	}
	if err := s.repo.Create(row); err != nil {
		return nil, internal.ClassifyStoreError(err, "invalid person reference")
	}

	vacation, err := s.repo.GetDenormalized(row.ID)
	if err != nil || vacation == nil {
		return nil, internal.NewInternalError("failed to read back vacation", err)
	}

	s.logger.Info("vacation created", "id", row.ID, "person_id", row.PersonID)
	return vacation, nil
}

func (s *Service) Update(id int64, dto VacationDTO) (*Vacation, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to load vacation", err)
	}
	if row == nil {
		return nil, internal.NewNotFoundError("vacation not found")
	}

	row.PersonID = *dto.PersonID.Ptr()
	row.StartDate = dto.StartDate
	row.EndDate = dto.EndDate
	if dto.Status != "" {
		row.Status = dto.Status
	}
	if err := s.repo.Update(row); err != nil {
		return nil, internal.ClassifyStoreError(err, "invalid person reference")
	}

	vacation, err := s.repo.GetDenormalized(id)
	if err != nil || vacation == nil {
		return nil, internal.NewInternalError("failed to read back vacation", err)
	}
	return vacation, nil
}

func (s *Service) Delete(id int64) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return internal.NewInternalError("failed to delete vacation", err)
	}
	if !deleted {
		return internal.NewNotFoundError("vacation not found")
	}
	s.logger.Info("vacation deleted", "id", id)
	return nil
}
