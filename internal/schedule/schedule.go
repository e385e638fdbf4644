package schedule

// Entry is the denormalized duty record returned by every read and write:
// the row itself joined with the person's name and the duty-type code and
// color, so clients never need a follow-up read.
type Entry struct {
	ID         int64   `json:"id"`
	DutyDate   string  `json:"duty_date"`
	PersonID   int64   `json:"person_id"`
	DutyTypeID int64   `json:"duty_type_id"`
	Note       *string `json:"note"`
	FullName   string  `json:"full_name"`
	Code       string  `json:"code"`
	Color      string  `json:"color"`
}

// EntriesResponse wraps list results.
type EntriesResponse struct {
	Entries []*Entry `json:"entries"`
}
