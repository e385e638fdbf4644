package postgres

import (
	"errors"

	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
	"github.com/dkravets/unit-roster/internal/dutytype"
	"gorm.io/gorm"
)

type DutyTypeRepository struct {
	db *gorm.DB
}

func NewDutyTypeRepository(db *gorm.DB) dutytype.RepositoryAPI {
	return &DutyTypeRepository{db: db}
}

func (r *DutyTypeRepository) GetAll() ([]*rosterDatamodel.DutyType, error) {
	var dutyTypes []*rosterDatamodel.DutyType
	err := r.db.Order("code").Find(&dutyTypes).Error
	return dutyTypes, err
}

func (r *DutyTypeRepository) GetByID(id int64) (*rosterDatamodel.DutyType, error) {
	var dutyType rosterDatamodel.DutyType
	err := r.db.Where("id = ?", id).First(&dutyType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dutyType, nil
}

func (r *DutyTypeRepository) Create(dutyType *rosterDatamodel.DutyType) error {
	return r.db.Create(dutyType).Error
}

func (r *DutyTypeRepository) Update(dutyType *rosterDatamodel.DutyType) error {
	return r.db.Save(dutyType).Error
}

func (r *DutyTypeRepository) Delete(id int64) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&rosterDatamodel.DutyType{})
	return res.RowsAffected > 0, res.Error
}
