package personnel

import (
	"log/slog"

	"github.com/dkravets/unit-roster/internal"
	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
)

type RepositoryAPI interface {
	GetAll() ([]*rosterDatamodel.Person, error)
	GetByID(id int64) (*rosterDatamodel.Person, error)
	Create(person *rosterDatamodel.Person) error
	Update(person *rosterDatamodel.Person) error
	// Delete reports whether a row existed. Dependent schedule entries and
	// vacations go with it; plan links are cleared by the store.
	Delete(id int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List() ([]*Person, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list personnel", "error", err)
		return nil, internal.NewInternalError("failed to list personnel", err)
	}

	people := make([]*Person, 0, len(rows))
	for _, row := range rows {
		people = append(people, FromDataModel(row))
	}
	return people, nil
}

func (s *Service) Create(dto PersonDTO) (*Person, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &rosterDatamodel.Person{
		FullName: dto.FullName,
		Role:     dto.Role,
		Callsign: dto.callsign(),
		Unit:     dto.Unit,
	}
	if err := s.repo.Create(row); err != nil {
		return nil, internal.ClassifyStoreError(err, "could not create person")
	}

	s.logger.Info("person created", "id", row.ID)
	return FromDataModel(row), nil
}

func (s *Service) Update(id int64, dto PersonDTO) (*Person, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to load person", err)
	}
	if row == nil {
		return nil, internal.NewNotFoundError("person not found")
	}

	row.FullName = dto.FullName
	row.Role = dto.Role
	row.Callsign = dto.callsign()
	row.Unit = dto.Unit
	if err := s.repo.Update(row); err != nil {
		return nil, internal.ClassifyStoreError(err, "could not update person")
	}
	return FromDataModel(row), nil
}

func (s *Service) Delete(id int64) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return internal.NewInternalError("failed to delete person", err)
	}
	if !deleted {
		return internal.NewNotFoundError("person not found")
	}
	s.logger.Info("person deleted", "id", id)
	return nil
}
