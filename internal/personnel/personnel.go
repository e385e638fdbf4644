package personnel

import (
	rosterDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/roster"
)

// Person is a unit member. Role here is the duty role (pilot, navigator,
// ...), free text, unrelated to API roles.
type Person struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	Role     string  `json:"role"`
	Callsign *string `json:"callsign"`
	Unit     string  `json:"unit"`
}

func FromDataModel(p *rosterDatamodel.Person) *Person {
	return &Person{
		ID:       p.ID,
		FullName: p.FullName,
		Role:     p.Role,
		Callsign: p.Callsign,
		Unit:     p.Unit,
	}
}

func ToDataModel(p *Person) *rosterDatamodel.Person {
	return &rosterDatamodel.Person{
		ID:       p.ID,
		FullName: p.FullName,
		Role:     p.Role,
		Callsign: p.Callsign,
		Unit:     p.Unit,
	}
}
