package plan

// Entry is a mission plan row denormalized with the names of whatever it
// links to. Link names are nil when the link is absent or the referenced
// row was deleted (the store clears the id, it never drops the entry).
type Entry struct {
	ID            int64   `json:"id"`
	PlanDate      string  `json:"plan_date"`
	Unit          string  `json:"unit"`
	Mission       string  `json:"mission"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	PilotID       *int64  `json:"pilot_id"`
	NavigatorID   *int64  `json:"navigator_id"`
	UAVID         *int64  `json:"uav_id"`
	VehicleID     *int64  `json:"vehicle_id"`
	BatteryID     *int64  `json:"battery_id"`
	Notes         *string `json:"notes"`
	PilotName     *string `json:"pilot_name"`
	NavigatorName *string `json:"navigator_name"`
	UAVName       *string `json:"uav_name"`
	VehicleName   *string `json:"vehicle_name"`
	BatteryName   *string `json:"battery_name"`
}

type EntriesResponse struct {
	Entries []*Entry `json:"entries"`
}
