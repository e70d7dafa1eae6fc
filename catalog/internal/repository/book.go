package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/locallibrary/catalog/internal/errs"
	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

const genreIDsColumn = "coalesce(array_agg(bg.genre_id) filter (where bg.genre_id is not null), '{}') as genre_ids"

func selectBooks(extra ...string) sq.SelectBuilder {
	columns := append([]string{"b.id", "b.title", "b.author_id", "b.summary", "b.isbn", genreIDsColumn}, extra...)
	return qb.Select(columns...).
		From(booksTableName + " b").
		LeftJoin(bookGenresTableName + " bg on bg.book_id = b.id").
		GroupBy("b.id").
		OrderBy("b.seq")
}

// bookRow is a book joined with its author.
type bookRow struct {
	model.Book
	AuthorFirstName   string     `db:"author_first_name"`
	AuthorFamilyName  string     `db:"author_family_name"`
	AuthorDateOfBirth *time.Time `db:"author_date_of_birth"`
	AuthorDateOfDeath *time.Time `db:"author_date_of_death"`
}

func (row bookRow) toModel() model.Book {
	b := row.Book
	b.Author = &model.Author{
		ID:          b.AuthorID,
		FirstName:   row.AuthorFirstName,
		FamilyName:  row.AuthorFamilyName,
		DateOfBirth: row.AuthorDateOfBirth,
		DateOfDeath: row.AuthorDateOfDeath,
	}
	return b
}

func selectBooksWithAuthor() sq.SelectBuilder {
	return selectBooks(
		"a.first_name as author_first_name",
		"a.family_name as author_family_name",
		"a.date_of_birth as author_date_of_birth",
		"a.date_of_death as author_date_of_death",
	).
		Join(authorsTableName + " a on a.id = b.author_id").
		GroupBy("a.id")
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	rows, err := collect[bookRow](ctx, r.db, selectBooksWithAuthor())
	if err != nil {
		return nil, errors.Wrap(err, "ListBooks")
	}
	books := make([]model.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toModel())
	}
	return books, nil
}

// GetBook returns the book with its author and genres populated.
func (r *repository) GetBook(ctx context.Context, id uuid.UUID) (model.Book, error) {
	row, err := collectOne[bookRow](ctx, r.db, model.KindBook, selectBooksWithAuthor().Where(sq.Eq{"b.id": id}))
	if err != nil {
		return model.Book{}, err
	}
	book := row.toModel()

	book.Genres = []model.Genre{}
	if len(book.GenreIDs) == 0 {
		return book, nil
	}
	ids := make([]any, 0, len(book.GenreIDs))
	for _, gid := range book.GenreIDs {
		ids = append(ids, gid)
	}
	q := qb.Select("id", "name").
		From(genresTableName).
		Where(sq.Eq{"id": ids}).
		OrderBy("name asc")
	if book.Genres, err = collect[model.Genre](ctx, r.db, q); err != nil {
		return model.Book{}, errors.Wrap(err, "GetBook genres")
	}
	return book, nil
}

func (r *repository) ListBooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	books, err := collect[model.Book](ctx, r.db, selectBooks().Where(sq.Eq{"b.author_id": authorID}))
	return books, errors.Wrap(err, "ListBooksByAuthor")
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	book.ID = uuid.New()
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query, args, err := qb.Insert(booksTableName).
			Columns("id", "title", "author_id", "summary", "isbn").
			Values(book.ID, book.Title, book.AuthorID, book.Summary, book.ISBN).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
			return mapWriteErr(err)
		}
		return r.linkGenres(ctx, tx, book)
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// UpdateBook replaces the book row and its genre links.
func (r *repository) UpdateBook(ctx context.Context, book model.Book) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query, args, err := qb.Update(booksTableName).
			SetMap(map[string]any{
				"title":     book.Title,
				"author_id": book.AuthorID,
				"summary":   book.Summary,
				"isbn":      book.ISBN,
			}).
			Where(sq.Eq{"id": book.ID}).
			ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return mapWriteErr(err)
		}
		if tag.RowsAffected() == 0 {
			return errs.NotFound(model.KindBook)
		}

		query, args, err = qb.Delete(bookGenresTableName).Where(sq.Eq{"book_id": book.ID}).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
		return r.linkGenres(ctx, tx, book)
	})
}

func (r *repository) linkGenres(ctx context.Context, tx pgx.Tx, book model.Book) error {
	if len(book.GenreIDs) == 0 {
		return nil
	}
	ins := qb.Insert(bookGenresTableName).Columns("book_id", "genre_id")
	for _, gid := range book.GenreIDs {
		ins = ins.Values(book.ID, gid)
	}
	query, args, err := ins.Suffix("on conflict do nothing").ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		r.log.Error("linkGenres", zap.String("q", query), zap.Any("args", args))
		return mapWriteErr(err)
	}
	return nil
}

func (r *repository) DeleteBook(ctx context.Context, id uuid.UUID) error {
	q := qb.Delete(booksTableName).Where(sq.Eq{"id": id})
	return r.exec(ctx, model.KindBook, q, mapDeleteErr)
}
