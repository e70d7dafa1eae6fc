package form

import (
	"strings"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

const nameMaxLen = "max=100"

// Author validates the author form. The returned input is the normalized
// echo of what was submitted.
func Author(in model.AuthorInput) (model.AuthorInput, model.Author, []model.FieldError) {
	var errs errorList

	firstName := strings.TrimSpace(in.FirstName)
	checkName(&errs, "first_name", "First name", firstName)
	familyName := strings.TrimSpace(in.FamilyName)
	checkName(&errs, "family_name", "Family name", familyName)

	out := model.AuthorInput{
		FirstName:   Escape(firstName),
		FamilyName:  Escape(familyName),
		DateOfBirth: strings.TrimSpace(in.DateOfBirth),
		DateOfDeath: strings.TrimSpace(in.DateOfDeath),
	}
	author := model.Author{
		FirstName:  out.FirstName,
		FamilyName: out.FamilyName,
	}

	var ok bool
	if author.DateOfBirth, ok = optionalDate(out.DateOfBirth); !ok {
		errs.add("date_of_birth", "Invalid date of birth", out.DateOfBirth)
	}
	if author.DateOfDeath, ok = optionalDate(out.DateOfDeath); !ok {
		errs.add("date_of_death", "Invalid date of death", out.DateOfDeath)
	}
	out.DateOfBirth = Escape(out.DateOfBirth)
	out.DateOfDeath = Escape(out.DateOfDeath)

	return out, author, errs
}

func checkName(errs *errorList, field, label, value string) {
	switch {
	case !check(value, "required"):
		errs.add(field, label+" must be specified.", value)
	case !check(value, "alphanum"):
		errs.add(field, label+" has non-alphanumeric characters.", Escape(value))
	case !check(value, nameMaxLen):
		errs.add(field, label+" must not exceed 100 characters.", Escape(value))
	}
}
