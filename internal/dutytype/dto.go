package dutytype

import (
	"strings"

	"github.com/dkravets/unit-roster/internal"
)

type DutyTypeDTO struct {
	Code               string `json:"code"`
	Name               string `json:"name"`
	Color              string `json:"color"`
	Description        string `json:"description"`
	BlocksAvailability bool   `json:"blocks_availability"`
}

func (d *DutyTypeDTO) Normalize() {
	d.Code = strings.TrimSpace(d.Code)
	d.Name = strings.TrimSpace(d.Name)
	d.Color = strings.TrimSpace(d.Color)
	d.Description = strings.TrimSpace(d.Description)
}

func (d *DutyTypeDTO) Validate() error {
	if d.Code == "" {
		return internal.NewValidationError("code is required")
	}
	if d.Name == "" {
		return internal.NewValidationError("name is required")
	}
	if d.Color == "" {
		return internal.NewValidationError("color is required")
	}
	return nil
}

func (d *DutyTypeDTO) description() *string {
	if d.Description == "" {
		return nil
	}
	return &d.Description
}
