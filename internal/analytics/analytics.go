// Package analytics aggregates schedule, vacation, and personnel state into
// the dashboard and summary views. It only reads; all writes happen in the
// owning modules.
package analytics

import (
	"github.com/dkravets/unit-roster/internal/personnel"
	"github.com/dkravets/unit-roster/internal/plan"
)

const (
	StatusOnVacation = "on vacation"
	StatusFree       = "free"
)

// PersonStatus is one dashboard row. Status is "on vacation" when a
// vacation spans the date, otherwise the day's duty-type code, otherwise
// "free".
type PersonStatus struct {
	Person *personnel.Person `json:"person"`
	Status string            `json:"status"`
}

type DashboardResponse struct {
	Date     string          `json:"date"`
	Plan     []*plan.Entry   `json:"plan"`
	Statuses []*PersonStatus `json:"statuses"`
}

type DutyCount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

type PersonCount struct {
	FullName string `json:"full_name"`
	Total    int64  `json:"total"`
}

type SummaryResponse struct {
	DutySummary []*DutyCount   `json:"duty_summary"`
	Workload    []*PersonCount `json:"workload"`
}
