package postgres_test

import (
	"testing"

	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
	"github.com/dkravets/unit-roster/internal/schedule"
	schedulePostgres "github.com/dkravets/unit-roster/internal/schedule/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSchedulePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Schedule Postgres Suite")
}

func openTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	Expect(err).NotTo(HaveOccurred())
	Expect(db.Exec("PRAGMA foreign_keys = ON").Error).NotTo(HaveOccurred())

	err = db.AutoMigrate(
		&rosterDatamodel.Person{},
		&rosterDatamodel.DutyType{},
		&rosterDatamodel.Equipment{},
		&rosterDatamodel.ScheduleEntry{},
		&rosterDatamodel.PlanEntry{},
		&rosterDatamodel.Vacation{},
	)
	Expect(err).NotTo(HaveOccurred())
	return db
}

var _ = Describe("Schedule Repository", func() {
	var (
		db   *gorm.DB
		repo schedule.RepositoryAPI

		person   rosterDatamodel.Person
		reserve  rosterDatamodel.DutyType
		combat   rosterDatamodel.DutyType
		strNote  = "нічне чергування"
		strNote2 = "заміна"
	)

	BeforeEach(func() {
		db = openTestDB()
		repo = schedulePostgres.NewScheduleRepository(db)

		person = rosterDatamodel.Person{FullName: "Іван Петренко", Role: "Пілот", Unit: "11 ПрикЗ"}
		Expect(db.Create(&person).Error).NotTo(HaveOccurred())

		combat = rosterDatamodel.DutyType{Code: "р", Name: "Бойове чергування", Color: "#e74c3c"}
		reserve = rosterDatamodel.DutyType{Code: "зп", Name: "Запасний екіпаж", Color: "#3498db"}
		Expect(db.Create(&combat).Error).NotTo(HaveOccurred())
		Expect(db.Create(&reserve).Error).NotTo(HaveOccurred())
	})

	Describe("Upsert", func() {
		It("should insert a new entry and report it as not replaced", func() {
			replaced, err := repo.Upsert(&rosterDatamodel.ScheduleEntry{
				DutyDate:   "2025-03-01",
				PersonID:   person.ID,
				DutyTypeID: combat.ID,
				Note:       &strNote,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(replaced).To(BeFalse())

			entry, err := repo.GetByPair("2025-03-01", person.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(entry).NotTo(BeNil())
			Expect(entry.Code).To(Equal("р"))
			Expect(entry.Color).To(Equal("#e74c3c"))
			Expect(entry.FullName).To(Equal("Іван Петренко"))
		})

		It("should leave exactly one row after a second upsert for the same pair", func() {
			_, err := repo.Upsert(&rosterDatamodel.ScheduleEntry{
				DutyDate:   "2025-03-01",
				PersonID:   person.ID,
				DutyTypeID: combat.ID,
				Note:       &strNote,
			})
			Expect(err).NotTo(HaveOccurred())

			replaced, err := repo.Upsert(&rosterDatamodel.ScheduleEntry{
				DutyDate:   "2025-03-01",
				PersonID:   person.ID,
				DutyTypeID: reserve.ID,
				Note:       &strNote2,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(replaced).To(BeTrue())

			var count int64
			Expect(db.Model(&rosterDatamodel.ScheduleEntry{}).Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))

			entry, err := repo.GetByPair("2025-03-01", person.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.Code).To(Equal("зп"))
			Expect(entry.Note).NotTo(BeNil())
			Expect(*entry.Note).To(Equal("заміна"))
		})

		It("should reject a dangling duty type reference", func() {
			_, err := repo.Upsert(&rosterDatamodel.ScheduleEntry{
				DutyDate:   "2025-03-01",
				PersonID:   person.ID,
				DutyTypeID: 9999,
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ListRange", func() {
		It("should return entries inside the range ordered by date then name", func() {
			second := rosterDatamodel.Person{FullName: "Олег Іванов", Role: "Штурман", Unit: "11 ПрикЗ"}
			Expect(db.Create(&second).Error).NotTo(HaveOccurred())

			for _, e := range []rosterDatamodel.ScheduleEntry{
				{DutyDate: "2025-03-02", PersonID: person.ID, DutyTypeID: combat.ID},
				{DutyDate: "2025-03-01", PersonID: second.ID, DutyTypeID: reserve.ID},
				{DutyDate: "2025-04-01", PersonID: person.ID, DutyTypeID: combat.ID},
			} {
				entry := e
				_, err := repo.Upsert(&entry)
				Expect(err).NotTo(HaveOccurred())
			}

			entries, err := repo.ListRange("2025-03-01", "2025-03-31")
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].DutyDate).To(Equal("2025-03-01"))
			Expect(entries[1].DutyDate).To(Equal("2025-03-02"))
		})
	})

	Describe("Delete", func() {
		It("should report whether a row existed", func() {
			_, err := repo.Upsert(&rosterDatamodel.ScheduleEntry{
				DutyDate:   "2025-03-01",
				PersonID:   person.ID,
				DutyTypeID: combat.ID,
			})
			Expect(err).NotTo(HaveOccurred())

			entry, err := repo.GetByPair("2025-03-01", person.ID)
			Expect(err).NotTo(HaveOccurred())

			deleted, err := repo.Delete(entry.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())

			deleted, err = repo.Delete(entry.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())
		})
	})

	Describe("person deletion", func() {
		It("should cascade to schedule and vacations and clear plan links", func() {
			_, err := repo.Upsert(&rosterDatamodel.ScheduleEntry{
				DutyDate:   "2025-03-01",
				PersonID:   person.ID,
				DutyTypeID: combat.ID,
			})
			Expect(err).NotTo(HaveOccurred())

			vac := rosterDatamodel.Vacation{PersonID: person.ID, StartDate: "2025-03-10", EndDate: "2025-03-15", Status: "approved"}
			Expect(db.Create(&vac).Error).NotTo(HaveOccurred())

			planRow := rosterDatamodel.PlanEntry{
				PlanDate: "2025-03-01",
				Unit:     "11 ПрикЗ",
				Mission:  "Патрулювання",
				PilotID:  &person.ID,
			}
			Expect(db.Create(&planRow).Error).NotTo(HaveOccurred())

			Expect(db.Delete(&rosterDatamodel.Person{}, person.ID).Error).NotTo(HaveOccurred())

			var scheduleCount, vacationCount int64
			Expect(db.Model(&rosterDatamodel.ScheduleEntry{}).Count(&scheduleCount).Error).NotTo(HaveOccurred())
			Expect(db.Model(&rosterDatamodel.Vacation{}).Count(&vacationCount).Error).NotTo(HaveOccurred())
			Expect(scheduleCount).To(BeZero())
			Expect(vacationCount).To(BeZero())

			var kept rosterDatamodel.PlanEntry
			Expect(db.First(&kept, planRow.ID).Error).NotTo(HaveOccurred())
			Expect(kept.PilotID).To(BeNil())
		})
	})
})
