package postgres

import (
	"errors"

	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
	"github.com/dkravets/unit-roster/internal/schedule"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entrySelect = `
SELECT schedule_entries.id,
       schedule_entries.duty_date,
       schedule_entries.person_id,
       schedule_entries.duty_type_id,
       schedule_entries.note,
       personnel.full_name,
       duty_types.code,
       duty_types.color
  FROM schedule_entries
  JOIN personnel ON personnel.id = schedule_entries.person_id
  JOIN duty_types ON duty_types.id = schedule_entries.duty_type_id`

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) schedule.RepositoryAPI {
	return &ScheduleRepository{db: db}
}

// Upsert detects the existing pair and writes through ON CONFLICT in one
// transaction, so concurrent writers for the same (duty_date, person_id)
// serialize at the store and the last one wins.
func (r *ScheduleRepository) Upsert(entry *rosterDatamodel.ScheduleEntry) (bool, error) {
	replaced := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing rosterDatamodel.ScheduleEntry
		err := tx.Where("duty_date = ? AND person_id = ?", entry.DutyDate, entry.PersonID).
			First(&existing).Error
		switch {
		case err == nil:
			replaced = true
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "duty_date"}, {Name: "person_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"duty_type_id", "note"}),
		}).Create(entry).Error
	})
	return replaced, err
}

func (r *ScheduleRepository) GetByPair(dutyDate string, personID int64) (*schedule.Entry, error) {
	var entries []*schedule.Entry
	err := r.db.Raw(entrySelect+`
 WHERE schedule_entries.duty_date = ? AND schedule_entries.person_id = ?`,
		dutyDate, personID).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}

func (r *ScheduleRepository) ListRange(start, end string) ([]*schedule.Entry, error) {
	entries := make([]*schedule.Entry, 0)
	err := r.db.Raw(entrySelect+`
 WHERE schedule_entries.duty_date BETWEEN ? AND ?
 ORDER BY schedule_entries.duty_date, personnel.full_name`,
		start, end).Scan(&entries).Error
	return entries, err
}

func (r *ScheduleRepository) ListRecent(limit int) ([]*schedule.Entry, error) {
	entries := make([]*schedule.Entry, 0)
	err := r.db.Raw(entrySelect+`
 ORDER BY schedule_entries.duty_date DESC
 LIMIT ?`, limit).Scan(&entries).Error
	return entries, err
}

func (r *ScheduleRepository) Delete(id int64) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&rosterDatamodel.ScheduleEntry{})
	return res.RowsAffected > 0, res.Error
}
