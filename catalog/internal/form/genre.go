package form

import (
	"strings"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

// Genre names must be 3 to 100 characters long; an empty name gets its own message.
func Genre(in model.GenreInput) (model.GenreInput, model.Genre, []model.FieldError) {
	var errs errorList

	name := strings.TrimSpace(in.Name)
	escaped := Escape(name)
	switch {
	case !check(name, "required"):
		errs.add("name", "Genre name required.", name)
	case !check(name, "min=3"), !check(escaped, nameMaxLen):
		// the stored form is the escaped one
		errs.add("name", "Genre name must be between 3 and 100 characters.", escaped)
	}

	out := model.GenreInput{Name: escaped}
	return out, model.Genre{Name: out.Name}, errs
}
