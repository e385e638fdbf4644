package vacation

import (
	"strings"

	"github.com/dkravets/unit-roster/internal"
)

type VacationDTO struct {
	PersonID  internal.FlexID `json:"person_id"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Status    string          `json:"status"`
}

func (d *VacationDTO) Normalize() {
	d.StartDate = strings.TrimSpace(d.StartDate)
	d.EndDate = strings.TrimSpace(d.EndDate)
	d.Status = strings.TrimSpace(d.Status)
}

func (d *VacationDTO) Validate() error {
	if d.PersonID.Ptr() == nil {
		return internal.NewValidationError("person_id is required")
	}
	if d.StartDate == "" {
		return internal.NewValidationError("start_date is required")
	}
	if d.EndDate == "" {
		return internal.NewValidationError("end_date is required")
	}
	return nil
}
