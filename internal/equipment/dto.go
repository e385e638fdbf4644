package equipment

import (
	"strings"

	"github.com/dkravets/unit-roster/internal"
)

type EquipmentDTO struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (d *EquipmentDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Category = strings.TrimSpace(d.Category)
}

func (d *EquipmentDTO) Validate() error {
	if d.Name == "" {
		return internal.NewValidationError("name is required")
	}
	if d.Category == "" {
		return internal.NewValidationError("category is required")
	}
	return nil
}
