package model

import (
	"time"

	"github.com/google/uuid"
)

type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	FamilyName  string     `json:"family_name" db:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty" db:"date_of_death"`
}

// Name is the "family, first" display label.
func (a Author) Name() string {
	return a.FamilyName + ", " + a.FirstName
}

func (a Author) URL() string {
	return "/catalog/author/" + a.ID.String()
}

func (a Author) DateOfBirthFormatted() string {
	return formatDate(a.DateOfBirth)
}

func (a Author) DateOfDeathFormatted() string {
	return formatDate(a.DateOfDeath)
}

func (a Author) Lifespan() string {
	birth, death := a.DateOfBirthFormatted(), a.DateOfDeathFormatted()
	switch {
	case birth != "" && death != "":
		return birth + " - " + death
	case birth != "":
		return birth
	default:
		return ""
	}
}

// AuthorInput is the author form as submitted.
type AuthorInput struct {
	FirstName   string `form:"first_name"`
	FamilyName  string `form:"family_name"`
	DateOfBirth string `form:"date_of_birth"`
	DateOfDeath string `form:"date_of_death"`
}

func (a Author) Input() AuthorInput {
	return AuthorInput{
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: a.DateOfBirthFormatted(),
		DateOfDeath: a.DateOfDeathFormatted(),
	}
}
