package equipment

import (
	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
)

// Equipment is one asset the unit plans missions around: a uav, a vehicle,
// or a battery. Category is free text; plan entries reference equipment by
// id regardless of category.
type Equipment struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func FromDataModel(e *rosterDatamodel.Equipment) *Equipment {
	return &Equipment{ID: e.ID, Name: e.Name, Category: e.Category}
}
