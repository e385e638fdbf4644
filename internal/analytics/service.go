package analytics

import (
	"log/slog"
	"time"

	"github.com/dkravets/unit-roster/internal"
	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
	"github.com/dkravets/unit-roster/internal/personnel"
	"github.com/dkravets/unit-roster/internal/plan"
)

type RepositoryAPI interface {
	// DutyCodesFor maps person id to that person's duty-type code on the
	// given date.
	DutyCodesFor(date string) (map[int64]string, error)
	// VacationPersonIDs lists the people with a vacation spanning the date.
	VacationPersonIDs(date string) (map[int64]struct{}, error)
	// DutySummary and Workload apply the BETWEEN filter only when both
	// bounds are non-empty.
	DutySummary(start, end string) ([]*DutyCount, error)
	Workload(start, end string) ([]*PersonCount, error)
}

type PersonLister interface {
	GetAll() ([]*rosterDatamodel.Person, error)
}

type PlanLister interface {
	GetAll(date string) ([]*plan.Entry, error)
}

type Service struct {
	repo   RepositoryAPI
	people PersonLister
	plans  PlanLister
	logger *slog.Logger

	// now is swappable so tests can pin "today".
	now func() time.Time
}

func NewService(repo RepositoryAPI, people PersonLister, plans PlanLister, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		people: people,
		plans:  plans,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) Dashboard() (*DashboardResponse, error) {
	today := s.now().Format("2006-01-02")

	planEntries, err := s.plans.GetAll(today)
	if err != nil {
		return nil, internal.NewInternalError("failed to load today's plan", err)
	}

	dutyCodes, err := s.repo.DutyCodesFor(today)
	if err != nil {
		return nil, internal.NewInternalError("failed to load duty codes", err)
	}
	onVacation, err := s.repo.VacationPersonIDs(today)
	if err != nil {
		return nil, internal.NewInternalError("failed to load vacations", err)
	}
	people, err := s.people.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to load personnel", err)
	}

	statuses := make([]*PersonStatus, 0, len(people))
	for _, row := range people {
		status := StatusFree
		if _, ok := onVacation[row.ID]; ok {
			status = StatusOnVacation
		} else if code, ok := dutyCodes[row.ID]; ok {
			status = code
		}
		statuses = append(statuses, &PersonStatus{
			Person: personnel.FromDataModel(row),
			Status: status,
		})
	}

	return &DashboardResponse{Date: today, Plan: planEntries, Statuses: statuses}, nil
}

func (s *Service) Summary(start, end string) (*SummaryResponse, error) {
	dutySummary, err := s.repo.DutySummary(start, end)
	if err != nil {
		s.logger.Error("failed to build duty summary", "error", err)
		return nil, internal.NewInternalError("failed to build summary", err)
	}
	workload, err := s.repo.Workload(start, end)
	if err != nil {
		s.logger.Error("failed to build workload", "error", err)
		return nil, internal.NewInternalError("failed to build summary", err)
	}
	return &SummaryResponse{DutySummary: dutySummary, Workload: workload}, nil
}
