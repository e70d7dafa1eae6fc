package form

import (
	"strings"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

// BookInstance leaves DueBack zero when no date was submitted; the caller
// applies the creation-time default.
func BookInstance(in model.BookInstanceInput) (model.BookInstanceInput, model.BookInstance, []model.FieldError) {
	var errs errorList

	out := model.BookInstanceInput{
		Book:    clean(in.Book),
		Imprint: clean(in.Imprint),
		Status:  clean(in.Status),
		DueBack: strings.TrimSpace(in.DueBack),
	}
	if out.Status == "" {
		out.Status = string(model.StatusMaintenance)
	}
	instance := model.BookInstance{
		Imprint: out.Imprint,
		Status:  model.Status(out.Status),
	}

	if !check(out.Book, "required") {
		errs.add("book", "Book must be specified", out.Book)
	} else if id, ok := parseID(out.Book); ok {
		instance.BookID = id
	} else {
		errs.add("book", "Invalid book", out.Book)
	}
	if !check(out.Imprint, "required") {
		errs.add("imprint", "Imprint must be specified", out.Imprint)
	}
	if !check(out.Status, "oneof=Available Maintenance Loaned Reserved") {
		errs.add("status", "Invalid status", out.Status)
	}
	if due, ok := optionalDate(out.DueBack); !ok {
		errs.add("due_back", "Invalid date", Escape(out.DueBack))
	} else if due != nil {
		instance.DueBack = *due
	}
	out.DueBack = Escape(out.DueBack)

	return out, instance, errs
}
