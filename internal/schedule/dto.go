package schedule

import (
	"strings"

	"github.com/dkravets/unit-roster/internal"
)

// EntryDTO is the upsert payload. The two ids accept JSON numbers or
// numeric strings; blanks and garbage normalize to absent and are then
// caught by Validate, since both are required here.
type EntryDTO struct {
	DutyDate   string          `json:"duty_date"`
	PersonID   internal.FlexID `json:"person_id"`
	DutyTypeID internal.FlexID `json:"duty_type_id"`
	Note       string          `json:"note"`
}

func (d *EntryDTO) Normalize() {
	d.DutyDate = strings.TrimSpace(d.DutyDate)
	d.Note = strings.TrimSpace(d.Note)
}

func (d *EntryDTO) Validate() error {
	if d.DutyDate == "" {
		return internal.NewValidationError("duty_date is required")
	}
	if _, ok := d.PersonID.Get(); !ok {
		return internal.NewValidationError("person_id is required")
	}
	if _, ok := d.DutyTypeID.Get(); !ok {
		return internal.NewValidationError("duty_type_id is required")
	}
	return nil
}

func (d *EntryDTO) note() *string {
	if d.Note == "" {
		return nil
	}
	return &d.Note
}
