package postgres

import (
	"errors"

	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
	"github.com/dkravets/unit-roster/internal/plan"
	"gorm.io/gorm"
)

const entrySelect = `
SELECT plan_entries.id,
       plan_entries.plan_date,
       plan_entries.unit,
       plan_entries.mission,
       plan_entries.start_time,
       plan_entries.end_time,
       plan_entries.pilot_id,
       plan_entries.navigator_id,
       plan_entries.uav_id,
       plan_entries.vehicle_id,
       plan_entries.battery_id,
       plan_entries.notes,
       pilot.full_name AS pilot_name,
       navigator.full_name AS navigator_name,
       uav.name AS uav_name,
       vehicle.name AS vehicle_name,
       battery.name AS battery_name
  FROM plan_entries
  LEFT JOIN personnel pilot ON pilot.id = plan_entries.pilot_id
  LEFT JOIN personnel navigator ON navigator.id = plan_entries.navigator_id
  LEFT JOIN equipment uav ON uav.id = plan_entries.uav_id
  LEFT JOIN equipment vehicle ON vehicle.id = plan_entries.vehicle_id
  LEFT JOIN equipment battery ON battery.id = plan_entries.battery_id`

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) plan.RepositoryAPI {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) GetAll(date string) ([]*plan.Entry, error) {
	entries := make([]*plan.Entry, 0)
	if date != "" {
		err := r.db.Raw(entrySelect+`
 WHERE plan_entries.plan_date = ?
 ORDER BY plan_entries.start_time`, date).Scan(&entries).Error
		return entries, err
	}
	err := r.db.Raw(entrySelect + `
 ORDER BY plan_entries.plan_date DESC, plan_entries.start_time`).Scan(&entries).Error
	return entries, err
}

func (r *PlanRepository) GetByID(id int64) (*rosterDatamodel.PlanEntry, error) {
	var row rosterDatamodel.PlanEntry
	err := r.db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *PlanRepository) GetDenormalized(id int64) (*plan.Entry, error) {
	var entries []*plan.Entry
	err := r.db.Raw(entrySelect+`
 WHERE plan_entries.id = ?`, id).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}

func (r *PlanRepository) Create(entry *rosterDatamodel.PlanEntry) error {
	return r.db.Create(entry).Error
}

func (r *PlanRepository) Update(entry *rosterDatamodel.PlanEntry) error {
	return r.db.Save(entry).Error
}

func (r *PlanRepository) Delete(id int64) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&rosterDatamodel.PlanEntry{})
	return res.RowsAffected > 0, res.Error
}
