package postgres

import (
	"errors"

	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
	"github.com/dkravets/unit-roster/internal/vacation"
	"gorm.io/gorm"
)

const vacationSelect = `
SELECT vacations.id,
       vacations.person_id,
       vacations.start_date,
       vacations.end_date,
       vacations.status,
       personnel.full_name
  FROM vacations
  JOIN personnel ON personnel.id = vacations.person_id`

type VacationRepository struct {
	db *gorm.DB
}

func NewVacationRepository(db *gorm.DB) vacation.RepositoryAPI {
	return &VacationRepository{db: db}
}

func (r *VacationRepository) GetAll() ([]*vacation.Vacation, error) {
	vacations := make([]*vacation.Vacation, 0)
	err := r.db.Raw(vacationSelect + `
 ORDER BY vacations.start_date DESC`).Scan(&vacations).Error
	return vacations, err
}

func (r *VacationRepository) GetByID(id int64) (*rosterDatamodel.Vacation, error) {
	var row rosterDatamodel.Vacation
	err := r.db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *VacationRepository) GetDenormalized(id int64) (*vacation.Vacation, error) {
	var vacations []*vacation.Vacation
	err := r.db.Raw(vacationSelect+`
 WHERE vacations.id = ?`, id).Scan(&vacations).Error
	if err != nil {
		return nil, err
	}
	if len(vacations) == 0 {
		return nil, nil
	}
	return vacations[0], nil
}

func (r *VacationRepository) Create(row *rosterDatamodel.Vacation) error {
	return r.db.Create(row).Error
}

func (r *VacationRepository) Update(row *rosterDatamodel.Vacation) error {
	return r.db.Save(row).Error
}

func (r *VacationRepository) Delete(id int64) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&rosterDatamodel.Vacation{})
	return res.RowsAffected > 0, res.Error
}
