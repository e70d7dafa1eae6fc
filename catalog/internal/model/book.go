package model

import "github.com/google/uuid"

type Book struct {
	ID       uuid.UUID   `json:"id" db:"id"`
	Title    string      `json:"title" db:"title"`
	AuthorID uuid.UUID   `json:"author" db:"author_id"`
	Summary  string      `json:"summary" db:"summary"`
	ISBN     string      `json:"isbn" db:"isbn"`
	GenreIDs []uuid.UUID `json:"genre" db:"genre_ids"`

	Author *Author `json:"-" db:"-"`
	Genres []Genre `json:"-" db:"-"`
}

func (b Book) URL() string {
	return "/catalog/book/" + b.ID.String()
}

// BookInput is the book form as submitted. Genre holds zero or more genre ids.
type BookInput struct {
	Title   string   `form:"title"`
	Author  string   `form:"author"`
	Summary string   `form:"summary"`
	ISBN    string   `form:"isbn"`
	Genre   []string `form:"genre"`
}

func (b Book) Input() BookInput {
	genres := make([]string, 0, len(b.GenreIDs))
	for _, id := range b.GenreIDs {
		genres = append(genres, id.String())
	}
	return BookInput{
		Title:   b.Title,
		Author:  idString(b.AuthorID),
		Summary: b.Summary,
		ISBN:    b.ISBN,
		Genre:   genres,
	}
}
