package entity

import "time"

type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Birthdate time.Time `json:"birthdate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
