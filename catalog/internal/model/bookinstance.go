package model

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

var Statuses = []Status{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}

type BookInstance struct {
	ID      uuid.UUID `json:"id" db:"id"`
	BookID  uuid.UUID `json:"book" db:"book_id"`
	Imprint string    `json:"imprint" db:"imprint"`
	Status  Status    `json:"status" db:"status"`
	DueBack time.Time `json:"due_back" db:"due_back"`

	Book *Book `json:"-" db:"-"`
}

func (bi BookInstance) URL() string {
	return "/catalog/bookinstance/" + bi.ID.String()
}

// DueBackFormatted renders the due date as "March 2nd, 2025". Due dates are
// calendar days stored as UTC midnight.
func (bi BookInstance) DueBackFormatted() string {
	d := bi.DueBack.UTC()
	return d.Format("January") + " " + humanize.Ordinal(d.Day()) + ", " + d.Format("2006")
}

func (bi BookInstance) DueBackISO() string {
	return formatDate(&bi.DueBack)
}

type BookInstanceInput struct {
	Book    string `form:"book"`
	Imprint string `form:"imprint"`
	Status  string `form:"status"`
	DueBack string `form:"due_back"`
}

func (bi BookInstance) Input() BookInstanceInput {
	return BookInstanceInput{
		Book:    idString(bi.BookID),
		Imprint: bi.Imprint,
		Status:  string(bi.Status),
		DueBack: bi.DueBackISO(),
	}
}
