package dutytype

import (
	"log/slog"

	"github.com/dkravets/unit-roster/internal"
	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
)

type RepositoryAPI interface {
	GetAll() ([]*rosterDatamodel.DutyType, error)
	GetByID(id int64) (*rosterDatamodel.DutyType, error)
	Create(dutyType *rosterDatamodel.DutyType) error
	Update(dutyType *rosterDatamodel.DutyType) error
	// Delete reports whether a row existed; schedule entries referencing
	// the duty type are removed by the store's cascade rule.
	Delete(id int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List() ([]*DutyType, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list duty types", "error", err)
		return nil, internal.NewInternalError("failed to list duty types", err)
	}

	dutyTypes := make([]*DutyType, 0, len(rows))
	for _, row := range rows {
		dutyTypes = append(dutyTypes, FromDataModel(row))
	}
	return dutyTypes, nil
}

func (s *Service) Create(dto DutyTypeDTO) (*DutyType, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &rosterDatamodel.DutyType{
		Code:               dto.Code,
		Name:               dto.Name,
		Color:              dto.Color,
		Description:        dto.description(),
		BlocksAvailability: dto.BlocksAvailability,
	}
	if err := s.repo.Create(row); err != nil {
		return nil, internal.ClassifyStoreError(err, "duty type code already exists")
	}

	s.logger.Info("duty type created", "id", row.ID, "code", row.Code)
	return FromDataModel(row), nil
}

func (s *Service) Update(id int64, dto DutyTypeDTO) (*DutyType, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to load duty type", err)
	}
	if row == nil {
		return nil, internal.NewNotFoundError("duty type not found")
	}

	row.Code = dto.Code
	row.Name = dto.Name
	row.Color = dto.Color
	row.Description = dto.description()
	row.BlocksAvailability = dto.BlocksAvailability
	if err := s.repo.Update(row); err != nil {
		return nil, internal.ClassifyStoreError(err, "duty type code already exists")
	}
	return FromDataModel(row), nil
}

func (s *Service) Delete(id int64) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return internal.NewInternalError("failed to delete duty type", err)
	}
	if !deleted {
		return internal.NewNotFoundError("duty type not found")
	}
	s.logger.Info("duty type deleted", "id", id)
	return nil
}
