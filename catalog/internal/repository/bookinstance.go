package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

// instanceRow is a book instance joined with its book.
type instanceRow struct {
	model.BookInstance
	BookTitle    string    `db:"book_title"`
	BookAuthorID uuid.UUID `db:"book_author_id"`
	BookSummary  string    `db:"book_summary"`
	BookISBN     string    `db:"book_isbn"`
}

func (row instanceRow) toModel() model.BookInstance {
	bi := row.BookInstance
	bi.Book = &model.Book{
		ID:       bi.BookID,
		Title:    row.BookTitle,
		AuthorID: row.BookAuthorID,
		Summary:  row.BookSummary,
		ISBN:     row.BookISBN,
	}
	return bi
}

func selectInstances() sq.SelectBuilder {
	return qb.Select(
		"bi.id", "bi.book_id", "bi.imprint", "bi.status", "bi.due_back",
		"b.title as book_title",
		"b.author_id as book_author_id",
		"b.summary as book_summary",
		"b.isbn as book_isbn",
	).
		From(bookInstancesTableName + " bi").
		Join(booksTableName + " b on b.id = bi.book_id").
		OrderBy("bi.seq")
}

func toInstances(rows []instanceRow) []model.BookInstance {
	out := make([]model.BookInstance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out
}

func (r *repository) ListBookInstances(ctx context.Context) ([]model.BookInstance, error) {
	rows, err := collect[instanceRow](ctx, r.db, selectInstances())
	if err != nil {
		return nil, errors.Wrap(err, "ListBookInstances")
	}
	return toInstances(rows), nil
}

func (r *repository) ListInstancesByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error) {
	rows, err := collect[instanceRow](ctx, r.db, selectInstances().Where(sq.Eq{"bi.book_id": bookID}))
	if err != nil {
		return nil, errors.Wrap(err, "ListInstancesByBook")
	}
	return toInstances(rows), nil
}

func (r *repository) GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error) {
	row, err := collectOne[instanceRow](ctx, r.db, model.KindBookInstance, selectInstances().Where(sq.Eq{"bi.id": id}))
	if err != nil {
		return model.BookInstance{}, err
	}
	return row.toModel(), nil
}

func (r *repository) CreateBookInstance(ctx context.Context, instance model.BookInstance) (model.BookInstance, error) {
	instance.ID = uuid.New()
	query, args, err := qb.Insert(bookInstancesTableName).
		Columns("id", "book_id", "imprint", "status", "due_back").
		Values(instance.ID, instance.BookID, instance.Imprint, string(instance.Status), instance.DueBack).
		ToSql()
	if err != nil {
		return model.BookInstance{}, err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("CreateBookInstance", zap.String("q", query), zap.Any("args", args))
		return model.BookInstance{}, mapWriteErr(err)
	}
	return instance, nil
}

func (r *repository) UpdateBookInstance(ctx context.Context, instance model.BookInstance) error {
	q := qb.Update(bookInstancesTableName).
		SetMap(map[string]any{
			"book_id":  instance.BookID,
			"imprint":  instance.Imprint,
			"status":   string(instance.Status),
			"due_back": instance.DueBack,
		}).
		Where(sq.Eq{"id": instance.ID})
	return r.exec(ctx, model.KindBookInstance, q, mapWriteErr)
}

func (r *repository) DeleteBookInstance(ctx context.Context, id uuid.UUID) error {
	q := qb.Delete(bookInstancesTableName).Where(sq.Eq{"id": id})
	return r.exec(ctx, model.KindBookInstance, q, mapDeleteErr)
}
