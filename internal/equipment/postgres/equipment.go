package postgres

import (
	"errors"

	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
	"github.com/dkravets/unit-roster/internal/equipment"
	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) equipment.RepositoryAPI {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) GetAll(category string) ([]*rosterDatamodel.Equipment, error) {
	var items []*rosterDatamodel.Equipment
	query := r.db.Order("category, name")
	if category != "" {
		query = r.db.Where("category = ?", category).Order("name")
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *EquipmentRepository) GetByID(id int64) (*rosterDatamodel.Equipment, error) {
	var item rosterDatamodel.Equipment
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *EquipmentRepository) Create(item *rosterDatamodel.Equipment) error {
	return r.db.Create(item).Error
}

func (r *EquipmentRepository) Update(item *rosterDatamodel.Equipment) error {
	return r.db.Save(item).Error
}

func (r *EquipmentRepository) Delete(id int64) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&rosterDatamodel.Equipment{})
	return res.RowsAffected > 0, res.Error
}
