package model

import "github.com/google/uuid"

type Genre struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID.String()
}

type GenreInput struct {
	Name string `form:"name"`
}

func (g Genre) Input() GenreInput {
	return GenreInput{Name: g.Name}
}
