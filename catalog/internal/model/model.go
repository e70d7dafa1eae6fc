package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindAuthor       = "Author"
	KindGenre        = "Genre"
	KindBook         = "Book"
	KindBookInstance = "BookInstance"
)

const (
	AuthorsPath       = "/catalog/authors"
	GenresPath        = "/catalog/genres"
	BooksPath         = "/catalog/books"
	BookInstancesPath = "/catalog/bookinstances"
)

const dateLayout = time.DateOnly

type FieldError struct {
	Field   string `json:"param"`
	Message string `json:"msg"`
	Value   string `json:"value"`
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
