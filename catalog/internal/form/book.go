package form

import (
	"strings"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
	"github.com/google/uuid"
)

// Genres turns the submitted genre values (none, one or many) into a
// non-nil list of distinct, trimmed values.
func Genres(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func Book(in model.BookInput) (model.BookInput, model.Book, []model.FieldError) {
	var errs errorList

	out := model.BookInput{
		Title:   clean(in.Title),
		Author:  clean(in.Author),
		Summary: clean(in.Summary),
		ISBN:    clean(in.ISBN),
		Genre:   Genres(in.Genre),
	}
	book := model.Book{
		Title:    out.Title,
		Summary:  out.Summary,
		ISBN:     out.ISBN,
		GenreIDs: make([]uuid.UUID, 0, len(out.Genre)),
	}

	if !check(out.Title, "required") {
		errs.add("title", "Title must not be empty.", out.Title)
	}
	if !check(out.Author, "required") {
		errs.add("author", "Author must not be empty.", out.Author)
	} else if id, ok := parseID(out.Author); ok {
		book.AuthorID = id
	} else {
		errs.add("author", "Invalid author.", out.Author)
	}
	if !check(out.Summary, "required") {
		errs.add("summary", "Summary must not be empty.", out.Summary)
	}
	if !check(out.ISBN, "required") {
		errs.add("isbn", "ISBN must not be empty", out.ISBN)
	}

	for i, g := range out.Genre {
		out.Genre[i] = Escape(g)
		id, ok := parseID(g)
		if !ok {
			errs.add("genre", "Invalid genre.", out.Genre[i])
			continue
		}
		book.GenreIDs = append(book.GenreIDs, id)
	}

	return out, book, errs
}
