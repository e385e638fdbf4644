package vacation

// Vacation is a stored row denormalized with the owning person's name.
type Vacation struct {
	ID        int64  `json:"id"`
	PersonID  int64  `json:"person_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	FullName  string `json:"full_name"`
}

type VacationsResponse struct {
	Vacations []*Vacation `json:"vacations"`
}
