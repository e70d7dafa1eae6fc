// Package form validates and normalizes submitted catalog forms.
//
// Validators never fail: malformed input becomes a model.FieldError.
// Accepted string values are trimmed and markup-escaped before they are
// stored or echoed back into a form.
package form

import (
	"strings"
	"time"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape replaces markup-significant characters with HTML entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

func clean(s string) string {
	return Escape(strings.TrimSpace(s))
}

func check(value, tag string) bool {
	return validate.Var(value, tag) == nil
}

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseDate accepts ISO-8601 calendar dates and timestamps.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// optionalDate returns nil for an empty value and ok=false for an unparsable one.
func optionalDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	t, ok := parseDate(s)
	if !ok {
		return nil, false
	}
	return &t, true
}

func parseID(s string) (uuid.UUID, bool) {
	if !check(s, "required,uuid") {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

type errorList []model.FieldError

func (l *errorList) add(field, msg, value string) {
	*l = append(*l, model.FieldError{Field: field, Message: msg, Value: value})
}
