package model

import "time"

// Pickup is a donation pickup request as shown on the charity dashboard.
// Location, Items and PreferredDate are display strings composed at
// intake time, not structured data.
type Pickup struct {
	ID            string    `json:"id"`
	DonorName     string    `json:"donorName"`
	Location      string    `json:"location"`
	Items         string    `json:"items"`
	PreferredDate string    `json:"preferredDate"`
	Contact       string    `json:"contact"`
	Status        Status    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CharityID     string    `json:"charityId,omitempty"`
	CreatedAt     time.Time `json:"-"`
}
