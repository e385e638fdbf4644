package dutytype

import (
	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
)

// DutyType is one entry of the duty catalog. Code is the short marker
// rendered in schedule cells; BlocksAvailability flags duties that take the
// person out of free rotation.
type DutyType struct {
	ID                 int64   `json:"id"`
	Code               string  `json:"code"`
	Name               string  `json:"name"`
	Color              string  `json:"color"`
	Description        *string `json:"description"`
	BlocksAvailability bool    `json:"blocks_availability"`
}

func FromDataModel(dt *rosterDatamodel.DutyType) *DutyType {
	return &DutyType{
		ID:                 dt.ID,
		Code:               dt.Code,
		Name:               dt.Name,
		Color:              dt.Color,
		Description:        dt.Description,
		BlocksAvailability: dt.BlocksAvailability,
	}
}
