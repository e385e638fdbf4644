package personnel

import (
	"strings"

	"github.com/dkravets/unit-roster/internal"
)

// PersonDTO accepts create and update payloads. Normalize runs before
// Validate: strings are trimmed and blanks collapse to absent.
type PersonDTO struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Callsign string `json:"callsign"`
	Unit     string `json:"unit"`
}

func (d *PersonDTO) Normalize() {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Role = strings.TrimSpace(d.Role)
	d.Callsign = strings.TrimSpace(d.Callsign)
	d.Unit = strings.TrimSpace(d.Unit)
}

func (d *PersonDTO) Validate() error {
	if d.FullName == "" {
		return internal.NewValidationError("full_name is required")
	}
	if d.Role == "" {
		return internal.NewValidationError("role is required")
	}
	if d.Unit == "" {
		return internal.NewValidationError("unit is required")
	}
	return nil
}

func (d *PersonDTO) callsign() *string {
	if d.Callsign == "" {
		return nil
	}
	return &d.Callsign
}
