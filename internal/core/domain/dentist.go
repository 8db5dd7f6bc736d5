package domain

type Dentist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClinicID   string `json:"clinic"`
	LunchBreak string `json:"lunchBreak"`
	FikaBreak  string `json:"fikaBreak"`
}
