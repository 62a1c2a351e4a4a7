package model

import "time"

// Submission is the donor's original form input. It is stored verbatim
// at intake and never synced with the pickup derived from it.
type Submission struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Bags         int       `json:"bags"`
	HelpGroups   []string  `json:"helpGroups"`
	Location     string    `json:"location"`
	Organisation string    `json:"organisation"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	Postcode     string    `json:"postcode"`
	Phone        string    `json:"phone"`
	Day          string    `json:"day"`
	Time         string    `json:"time"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"-"`
}

// IsEmpty reports whether the donor entered nothing at all.
func (s Submission) IsEmpty() bool {
	return s.Type == "" && s.Bags == 0 && len(s.HelpGroups) == 0 &&
		s.Location == "" && s.Organisation == "" && s.Street == "" &&
		s.City == "" && s.Postcode == "" && s.Phone == "" &&
		s.Day == "" && s.Time == "" && s.Notes == ""
}
