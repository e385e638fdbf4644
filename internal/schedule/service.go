package schedule

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dkravets/unit-roster/internal"
	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
)

// recentLimit caps the unfiltered listing, newest first.
const recentLimit = 200

type RepositoryAPI interface {
	// Upsert inserts the entry or, when the (duty_date, person_id) pair
	// already exists, replaces duty_type_id and note in place. Reports
	// whether an existing row was replaced. Runs as one transaction.
	Upsert(entry *rosterDatamodel.ScheduleEntry) (replaced bool, err error)
	// GetByPair reads the denormalized record for one (duty_date,
	// person_id) pair; nil when absent.
	GetByPair(dutyDate string, personID int64) (*Entry, error)
	ListRange(start, end string) ([]*Entry, error)
	ListRecent(limit int) ([]*Entry, error)
	Delete(id int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Upsert is the conflict-resolution core: one duty record per person per
// date, last writer wins on the non-key columns. The returned flag tells
// the handler whether to answer 201 (created) or 200 (replaced).
func (s *Service) Upsert(dto EntryDTO) (*Entry, bool, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, false, err
	}

	personID, _ := dto.PersonID.Get()
	dutyTypeID, _ := dto.DutyTypeID.Get()
	row := &rosterDatamodel.ScheduleEntry{
		DutyDate:   dto.DutyDate,
		PersonID:   personID,
		DutyTypeID: dutyTypeID,
		Note:       dto.note(),
	}

	replaced, err := s.repo.Upsert(row)
	if err != nil {
		return nil, false, internal.ClassifyStoreError(err, "invalid person or duty type reference")
	}

	entry, err := s.repo.GetByPair(dto.DutyDate, personID)
	if err != nil {
		return nil, false, internal.NewInternalError("failed to read back schedule entry", err)
	}
	if entry == nil {
		return nil, false, internal.NewInternalError("schedule entry vanished after upsert", nil)
	}

	s.logger.Info("schedule entry written",
		"duty_date", dto.DutyDate,
		"person_id", personID,
		"replaced", replaced)
	return entry, replaced, nil
}

// List returns one calendar month when month is "YYYY-MM", otherwise the
// most recent entries.
func (s *Service) List(month string) ([]*Entry, error) {
	var (
		entries []*Entry
		err     error
	)
	if month != "" {
		start, end, rangeErr := monthRange(month)
		if rangeErr != nil {
			return nil, internal.NewValidationError("month must look like YYYY-MM")
		}
		entries, err = s.repo.ListRange(start, end)
	} else {
		entries, err = s.repo.ListRecent(recentLimit)
	}
	if err != nil {
		s.logger.Error("failed to list schedule", "error", err)
		return nil, internal.NewInternalError("failed to list schedule", err)
	}
	return entries, nil
}

func (s *Service) Delete(id int64) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return internal.NewInternalError("failed to delete schedule entry", err)
	}
	if !deleted {
		return internal.NewNotFoundError("schedule entry not found")
	}
	s.logger.Info("schedule entry deleted", "id", id)
	return nil
}

// monthRange expands "YYYY-MM" to the first and last day of that month.
func monthRange(month string) (string, string, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", fmt.Errorf("parse month %q: %w", month, err)
	}
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02"), nil
}
