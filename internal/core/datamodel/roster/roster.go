// Package roster holds the persistence models for the unit roster domain:
// personnel, the duty-type catalog, equipment, the duty schedule, mission
// plans, and vacations.
//
// All calendar fields are ISO "YYYY-MM-DD" strings, which compare and range
// correctly as text on both postgres and sqlite.
package roster

type Person struct {
	ID       int64   `gorm:"primaryKey"`
	FullName string  `gorm:"column:full_name;not null"`
	Role     string  `gorm:"column:role;not null"`
	Callsign *string `gorm:"column:callsign"`
	Unit     string  `gorm:"column:unit;not null"`
}

func (Person) TableName() string { return "personnel" }

type DutyType struct {
	ID                 int64   `gorm:"primaryKey"`
	Code               string  `gorm:"column:code;uniqueIndex;not null"`
	Name               string  `gorm:"column:name;not null"`
	Color              string  `gorm:"column:color;not null"`
	Description        *string `gorm:"column:description"`
	BlocksAvailability bool    `gorm:"column:blocks_availability;not null;default:false"`
}

func (DutyType) TableName() string { return "duty_types" }

type Equipment struct {
	ID       int64  `gorm:"primaryKey"`
	Name     string `gorm:"column:name;not null;uniqueIndex:idx_equipment_name_category"`
	Category string `gorm:"column:category;not null;uniqueIndex:idx_equipment_name_category"`
}

func (Equipment) TableName() string { return "equipment" }

// ScheduleEntry carries the core invariant: one row per (duty_date,
// person_id). Writes against an existing pair replace duty_type_id and
// note in place.
type ScheduleEntry struct {
	ID         int64   `gorm:"primaryKey"`
	DutyDate   string  `gorm:"column:duty_date;not null;uniqueIndex:idx_schedule_date_person"`
	PersonID   int64   `gorm:"column:person_id;not null;uniqueIndex:idx_schedule_date_person"`
	DutyTypeID int64   `gorm:"column:duty_type_id;not null"`
	Note       *string `gorm:"column:note"`

	Person   Person   `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	DutyType DutyType `gorm:"foreignKey:DutyTypeID;constraint:OnDelete:CASCADE"`
}

func (ScheduleEntry) TableName() string { return "schedule_entries" }

// PlanEntry links are all optional and cleared, not cascaded, when the
// referenced person or equipment is deleted.
type PlanEntry struct {
	ID          int64   `gorm:"primaryKey"`
	PlanDate    string  `gorm:"column:plan_date;not null"`
	Unit        string  `gorm:"column:unit;not null"`
	Mission     string  `gorm:"column:mission;not null"`
	StartTime   *string `gorm:"column:start_time"`
	EndTime     *string `gorm:"column:end_time"`
	PilotID     *int64  `gorm:"column:pilot_id"`
	NavigatorID *int64  `gorm:"column:navigator_id"`
	UAVID       *int64  `gorm:"column:uav_id"`
	VehicleID   *int64  `gorm:"column:vehicle_id"`
	BatteryID   *int64  `gorm:"column:battery_id"`
	Notes       *string `gorm:"column:notes"`

	Pilot     *Person    `gorm:"foreignKey:PilotID;constraint:OnDelete:SET NULL"`
	Navigator *Person    `gorm:"foreignKey:NavigatorID;constraint:OnDelete:SET NULL"`
	UAV       *Equipment `gorm:"foreignKey:UAVID;constraint:OnDelete:SET NULL"`
	Vehicle   *Equipment `gorm:"foreignKey:VehicleID;constraint:OnDelete:SET NULL"`
	Battery   *Equipment `gorm:"foreignKey:BatteryID;constraint:OnDelete:SET NULL"`
}

func (PlanEntry) TableName() string { return "plan_entries" }

type Vacation struct {
	ID        int64  `gorm:"primaryKey"`
	PersonID  int64  `gorm:"column:person_id;not null"`
	StartDate string `gorm:"column:start_date;not null"`
	EndDate   string `gorm:"column:end_date;not null"`
	Status    string `gorm:"column:status;not null;default:approved"`

	Person Person `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

func (Vacation) TableName() string { return "vacations" }
