package plan

import (
	"log/slog"

	"github.com/dkravets/unit-roster/internal"
	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
)

type RepositoryAPI interface {
	// GetAll filters by plan date when it is non-empty.
	GetAll(date string) ([]*Entry, error)
	GetByID(id int64) (*rosterDatamodel.PlanEntry, error)
	// GetDenormalized reads one entry with its link names resolved.
	GetDenormalized(id int64) (*Entry, error)
	Create(entry *rosterDatamodel.PlanEntry) error
	Update(entry *rosterDatamodel.PlanEntry) error
	Delete(id int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(date string) ([]*Entry, error) {
	entries, err := s.repo.GetAll(date)
	if err != nil {
		s.logger.Error("failed to list plan entries", "error", err)
		return nil, internal.NewInternalError("failed to list plan entries", err)
	}
	return entries, nil
}

func (s *Service) Create(dto EntryDTO) (*Entry, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &rosterDatamodel.PlanEntry{}
	applyDTO(row, dto)
	if err := s.repo.Create(row); err != nil {
		return nil, internal.ClassifyStoreError(err, "invalid personnel or equipment reference")
	}

	entry, err := s.repo.GetDenormalized(row.ID)
	if err != nil || entry == nil {
		return nil, internal.NewInternalError("failed to read back plan entry", err)
	}

	s.logger.Info("plan entry created", "id", row.ID, "plan_date", row.PlanDate)
	return entry, nil
}

// Update requires the target to exist already; a missing id is not-found,
// never a silent create.
func (s *Service) Update(id int64, dto EntryDTO) (*Entry, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to load plan entry", err)
	}
	if row == nil {
		return nil, internal.NewNotFoundError("plan entry not found")
	}

	applyDTO(row, dto)
	if err := s.repo.Update(row); err != nil {
		return nil, internal.ClassifyStoreError(err, "invalid personnel or equipment reference")
	}

	entry, err := s.repo.GetDenormalized(id)
	if err != nil || entry == nil {
		return nil, internal.NewInternalError("failed to read back plan entry", err)
	}
	return entry, nil
}

func (s *Service) Delete(id int64) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return internal.NewInternalError("failed to delete plan entry", err)
	}
	if !deleted {
		return internal.NewNotFoundError("plan entry not found")
	}
	s.logger.Info("plan entry deleted", "id", id)
	return nil
}

func applyDTO(row *rosterDatamodel.PlanEntry, dto EntryDTO) {
	row.PlanDate = dto.PlanDate
	row.Unit = dto.Unit
	row.Mission = dto.Mission
	row.StartTime = optional(dto.StartTime)
	row.EndTime = optional(dto.EndTime)
	row.PilotID = dto.PilotID.Ptr()
	row.NavigatorID = dto.NavigatorID.Ptr()
	row.UAVID = dto.UAVID.Ptr()
	row.VehicleID = dto.VehicleID.Ptr()
	row.BatteryID = dto.BatteryID.Ptr()
	row.Notes = optional(dto.Notes)
}
