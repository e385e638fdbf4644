package equipment

import (
	"log/slog"

	"github.com/dkravets/unit-roster/internal"
	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
)

type RepositoryAPI interface {
	// GetAll filters by category when it is non-empty.
	GetAll(category string) ([]*rosterDatamodel.Equipment, error)
	GetByID(id int64) (*rosterDatamodel.Equipment, error)
	Create(equipment *rosterDatamodel.Equipment) error
	Update(equipment *rosterDatamodel.Equipment) error
	// Delete reports whether a row existed; plan entries referencing the
	// equipment have the link cleared by the store, not removed.
	Delete(id int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(category string) ([]*Equipment, error) {
	rows, err := s.repo.GetAll(category)
	if err != nil {
		s.logger.Error("failed to list equipment", "error", err)
		return nil, internal.NewInternalError("failed to list equipment", err)
	}

	items := make([]*Equipment, 0, len(rows))
	for _, row := range rows {
		items = append(items, FromDataModel(row))
	}
	return items, nil
}

func (s *Service) Create(dto EquipmentDTO) (*Equipment, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &rosterDatamodel.Equipment{Name: dto.Name, Category: dto.Category}
	if err := s.repo.Create(row); err != nil {
		return nil, internal.ClassifyStoreError(err, "equipment with this name and category already exists")
	}

	s.logger.Info("equipment created", "id", row.ID)
	return FromDataModel(row), nil
}

func (s *Service) Update(id int64, dto EquipmentDTO) (*Equipment, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to load equipment", err)
	}
	if row == nil {
		return nil, internal.NewNotFoundError("equipment not found")
	}

	row.Name = dto.Name
	row.Category = dto.Category
	if err := s.repo.Update(row); err != nil {
		return nil, internal.ClassifyStoreError(err, "equipment with this name and category already exists")
	}
	return FromDataModel(row), nil
}

func (s *Service) Delete(id int64) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return internal.NewInternalError("failed to delete equipment", err)
	}
	if !deleted {
		return internal.NewNotFoundError("equipment not found")
	}
	s.logger.Info("equipment deleted", "id", id)
	return nil
}
