package analytics

import (
	"log/slog"
	"testing"
	"time"

	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
	"github.com/dkravets/unit-roster/internal/plan"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestAnalytics(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Analytics Module Suite")
}

type mockRepository struct {
	dutyCodes  map[int64]string
	onVacation map[int64]struct{}
	summary    []*DutyCount
	workload   []*PersonCount

	summaryStart, summaryEnd string
}

func (m *mockRepository) DutyCodesFor(date string) (map[int64]string, error) {
	return m.dutyCodes, nil
}

func (m *mockRepository) VacationPersonIDs(date string) (map[int64]struct{}, error) {
	return m.onVacation, nil
}

func (m *mockRepository) DutySummary(start, end string) ([]*DutyCount, error) {
	m.summaryStart, m.summaryEnd = start, end
	return m.summary, nil
}

func (m *mockRepository) Workload(start, end string) ([]*PersonCount, error) {
	return m.workload, nil
}

type mockPersonLister struct {
	people []*rosterDatamodel.Person
}

func (m *mockPersonLister) GetAll() ([]*rosterDatamodel.Person, error) {
	return m.people, nil
}

type mockPlanLister struct {
	entries []*plan.Entry
	date    string
}

func (m *mockPlanLister) GetAll(date string) ([]*plan.Entry, error) {
	m.date = date
	return m.entries, nil
}

var _ = ginkgo.Describe("AnalyticsService", func() {
	var (
		service *Service
		repo    *mockRepository
		people  *mockPersonLister
		plans   *mockPlanLister
	)

	today := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	ginkgo.BeforeEach(func() {
		repo = &mockRepository{
			dutyCodes:  map[int64]string{},
			onVacation: map[int64]struct{}{},
		}
		people = &mockPersonLister{people: []*rosterDatamodel.Person{
			{ID: 1, FullName: "Іван Петренко", Role: "Пілот", Unit: "11 ПрикЗ"},
			{ID: 2, FullName: "Олег Іванов", Role: "Штурман", Unit: "11 ПрикЗ"},
			{ID: 3, FullName: "Марія Коваленко", Role: "Пілот", Unit: "БПАК 1"},
		}}
		plans = &mockPlanLister{}

		service = NewService(repo, people, plans, slog.Default())
		service.now = func() time.Time { return today }
	})

	ginkgo.Describe("Dashboard", func() {
		ginkgo.It("should ask the plan store for today only", func() {
			_, err := service.Dashboard()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(plans.date).To(gomega.Equal("2025-01-15"))
		})

		ginkgo.It("should prefer vacation over a duty entry for the same person", func() {
			repo.dutyCodes[1] = "р"
			repo.onVacation[1] = struct{}{}

			dashboard, err := service.Dashboard()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(dashboard.Statuses[0].Person.ID).To(gomega.Equal(int64(1)))
			gomega.Expect(dashboard.Statuses[0].Status).To(gomega.Equal(StatusOnVacation))
		})

		ginkgo.It("should report the duty code when there is no vacation", func() {
			repo.dutyCodes[2] = "зп"

			dashboard, err := service.Dashboard()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(dashboard.Statuses[1].Status).To(gomega.Equal("зп"))
		})

		ginkgo.It("should report free for everyone else", func() {
			repo.dutyCodes[1] = "р"

			dashboard, err := service.Dashboard()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(dashboard.Date).To(gomega.Equal("2025-01-15"))
			gomega.Expect(dashboard.Statuses).To(gomega.HaveLen(3))
			gomega.Expect(dashboard.Statuses[1].Status).To(gomega.Equal(StatusFree))
			gomega.Expect(dashboard.Statuses[2].Status).To(gomega.Equal(StatusFree))
		})
	})

	ginkgo.Describe("Summary", func() {
		ginkgo.It("should pass both range bounds through", func() {
			_, err := service.Summary("2025-01-01", "2025-01-31")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(repo.summaryStart).To(gomega.Equal("2025-01-01"))
			gomega.Expect(repo.summaryEnd).To(gomega.Equal("2025-01-31"))
		})

		ginkgo.It("should return both sections", func() {
			repo.summary = []*DutyCount{{Code: "р", Name: "Бойове чергування", Total: 4}}
			repo.workload = []*PersonCount{{FullName: "Іван Петренко", Total: 2}}

			summary, err := service.Summary("", "")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(summary.DutySummary).To(gomega.HaveLen(1))
			gomega.Expect(summary.Workload).To(gomega.HaveLen(1))
		})
	})
})
