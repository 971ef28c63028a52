package controller

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const birthdateLayout = "2006-01-02"

type AuthorRequest struct {
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Birthdate, validation.Required,
			validation.Date(birthdateLayout).Max(time.Now())),
	)
}

func (r AuthorRequest) ParsedBirthdate() time.Time {
	parsed, _ := time.Parse(birthdateLayout, r.Birthdate)
	return parsed
}

type BookRequest struct {
	Title     string   `json:"title"`
	Price     *int     `json:"price"`
	Status    string   `json:"status"`
	AuthorIDs []string `json:"authorIds"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Price, validation.NotNil, validation.Min(0)),
		validation.Field(&r.Status, validation.Required,
			validation.In("UNPUBLISHED", "PUBLISHED")),
		validation.Field(&r.AuthorIDs, validation.Required,
			validation.Each(validation.Required, is.UUID)),
	)
}
