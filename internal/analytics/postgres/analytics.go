package postgres

import (
	"github.com/dkravets/unit-roster/internal/analytics"
	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) analytics.RepositoryAPI {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) DutyCodesFor(date string) (map[int64]string, error) {
	var rows []struct {
		PersonID int64
		Code     string
	}
	err := r.db.Raw(`
SELECT schedule_entries.person_id, duty_types.code
  FROM schedule_entries
  JOIN duty_types ON duty_types.id = schedule_entries.duty_type_id
 WHERE schedule_entries.duty_date = ?`, date).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	codes := make(map[int64]string, len(rows))
	for _, row := range rows {
		codes[row.PersonID] = row.Code
	}
	return codes, nil
}

func (r *AnalyticsRepository) VacationPersonIDs(date string) (map[int64]struct{}, error) {
	var ids []int64
	err := r.db.Raw(`
SELECT person_id
  FROM vacations
 WHERE ? BETWEEN start_date AND end_date`, date).Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	people := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		people[id] = struct{}{}
	}
	return people, nil
}

func (r *AnalyticsRepository) DutySummary(start, end string) ([]*analytics.DutyCount, error) {
	counts := make([]*analytics.DutyCount, 0)
	query := `
SELECT duty_types.code, duty_types.name, COUNT(*) AS total
  FROM schedule_entries
  JOIN duty_types ON duty_types.id = schedule_entries.duty_type_id`
	args := []any{}
	if start != "" && end != "" {
		query += `
 WHERE schedule_entries.duty_date BETWEEN ? AND ?`
		args = append(args, start, end)
	}
	query += `
 GROUP BY duty_types.code, duty_types.name
 ORDER BY total DESC`
	err := r.db.Raw(query, args...).Scan(&counts).Error
	return counts, err
}

func (r *AnalyticsRepository) Workload(start, end string) ([]*analytics.PersonCount, error) {
	counts := make([]*analytics.PersonCount, 0)
	query := `
SELECT personnel.full_name, COUNT(*) AS total
  FROM schedule_entries
  JOIN personnel ON personnel.id = schedule_entries.person_id`
	args := []any{}
	if start != "" && end != "" {
		query += `
 WHERE schedule_entries.duty_date BETWEEN ? AND ?`
		args = append(args, start, end)
	}
	query += `
 GROUP BY personnel.full_name
 ORDER BY total DESC`
	err := r.db.Raw(query, args...).Scan(&counts).Error
	return counts, err
}
