package postgres

import (
	"errors"

	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
	"github.com/dkravets/unit-roster/internal/personnel"
	"gorm.io/gorm"
)

type PersonnelRepository struct {
	db *gorm.DB
}

func NewPersonnelRepository(db *gorm.DB) personnel.RepositoryAPI {
	return &PersonnelRepository{db: db}
}

func (r *PersonnelRepository) GetAll() ([]*rosterDatamodel.Person, error) {
	var people []*rosterDatamodel.Person
	err := r.db.Order("unit, full_name").Find(&people).Error
	return people, err
}

func (r *PersonnelRepository) GetByID(id int64) (*rosterDatamodel.Person, error) {
	var person rosterDatamodel.Person
	err := r.db.Where("id = ?", id).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (r *PersonnelRepository) Create(person *rosterDatamodel.Person) error {
	return r.db.Create(person).Error
}

func (r *PersonnelRepository) Update(person *rosterDatamodel.Person) error {
	return r.db.Save(person).Error
}

func (r *PersonnelRepository) Delete(id int64) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&rosterDatamodel.Person{})
	return res.RowsAffected > 0, res.Error
}
