package plan

import (
	"strings"

	"github.com/dkravets/unit-roster/internal"
)

// EntryDTO is the create/update payload. The five link fields are lenient:
// numbers and numeric strings resolve to ids, while blanks, nulls, and
// garbage normalize to absent instead of rejecting the write. That
// normalization happens in FlexID decoding, before Validate looks at
// anything.
type EntryDTO struct {
	PlanDate    string          `json:"plan_date"`
	Unit        string          `json:"unit"`
	Mission     string          `json:"mission"`
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	PilotID     internal.FlexID `json:"pilot_id"`
	NavigatorID internal.FlexID `json:"navigator_id"`
	UAVID       internal.FlexID `json:"uav_id"`
	VehicleID   internal.FlexID `json:"vehicle_id"`
	BatteryID   internal.FlexID `json:"battery_id"`
	Notes       string          `json:"notes"`
}

func (d *EntryDTO) Normalize() {
	d.PlanDate = strings.TrimSpace(d.PlanDate)
	d.Unit = strings.TrimSpace(d.Unit)
	d.Mission = strings.TrimSpace(d.Mission)
	d.StartTime = strings.TrimSpace(d.StartTime)
	d.EndTime = strings.TrimSpace(d.EndTime)
	d.Notes = strings.TrimSpace(d.Notes)
}

func (d *EntryDTO) Validate() error {
	if d.PlanDate == "" {
		return internal.NewValidationError("plan_date is required")
	}
	if d.Unit == "" {
		return internal.NewValidationError("unit is required")
	}
	if d.Mission == "" {
		return internal.NewValidationError("mission is required")
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
