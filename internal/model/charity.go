package model

import "time"

type Charity struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
}
