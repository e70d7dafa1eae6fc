package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/locallibrary/catalog/internal/errs"
	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListAuthors(ctx context.Context) ([]model.Author, error)
	GetAuthor(ctx context.Context, id uuid.UUID) (model.Author, error)
	CreateAuthor(ctx context.Context, author model.Author) (model.Author, error)
	UpdateAuthor(ctx context.Context, author model.Author) error
	DeleteAuthor(ctx context.Context, id uuid.UUID) error
	ListBooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)

	ListGenres(ctx context.Context) ([]model.Genre, error)
	GetGenre(ctx context.Context, id uuid.UUID) (model.Genre, error)
	FindGenreByName(ctx context.Context, name string) (model.Genre, error)
	CreateGenre(ctx context.Context, genre model.Genre) (model.Genre, error)
	UpdateGenre(ctx context.Context, genre model.Genre) error
	DeleteGenre(ctx context.Context, id uuid.UUID) error
	ListBooksByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error)

	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) error
	DeleteBook(ctx context.Context, id uuid.UUID) error
	ListInstancesByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error)

	ListBookInstances(ctx context.Context) ([]model.BookInstance, error)
	GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error)
	CreateBookInstance(ctx context.Context, instance model.BookInstance) (model.BookInstance, error)
	UpdateBookInstance(ctx context.Context, instance model.BookInstance) error
	DeleteBookInstance(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context, kind string) (int, error)
	CountBookInstancesByStatus(ctx context.Context, status model.Status) (int, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	authorsTableName       = `authors`
	genresTableName        = `genres`
	booksTableName         = `books`
	bookGenresTableName    = `book_genres`
	bookInstancesTableName = `book_instances`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var tables = map[string]string{
	model.KindAuthor:       authorsTableName,
	model.KindGenre:        genresTableName,
	model.KindBook:         booksTableName,
	model.KindBookInstance: bookInstancesTableName,
}

func (r *repository) Count(ctx context.Context, kind string) (int, error) {
	table, ok := tables[kind]
	if !ok {
		return 0, errors.Errorf("count: unknown kind %q", kind)
	}
	return r.count(ctx, qb.Select("count(*)").From(table))
}

func (r *repository) CountBookInstancesByStatus(ctx context.Context, status model.Status) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(bookInstancesTableName).
		Where(sq.Eq{"status": string(status)}))
}

func (r *repository) count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count")
	}
	return n, nil
}

// exec runs a write that must touch the record identified by the query.
func (r *repository) exec(ctx context.Context, kind string, q sq.Sqlizer, mapErr func(error) error) error {
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("exec", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(kind)
	}
	return nil
}

func collect[T any](ctx context.Context, db queryer, q sq.Sqlizer) ([]T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func collectOne[T any](ctx context.Context, db queryer, kind string, q sq.Sqlizer) (T, error) {
	var zero T
	query, args, err := q.ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, errs.NotFound(kind)
		}
		return zero, errors.Wrap(err, "pgx.CollectOneRow")
	}
	return item, nil
}

type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// mapWriteErr reports a dangling reference on insert/update as ErrInvalidReference.
func mapWriteErr(err error) error {
	if isForeignKeyViolation(err) {
		return errors.Wrap(errs.ErrInvalidReference, err.Error())
	}
	return err
}

// mapDeleteErr reports a delete blocked by a referencing row as ErrConflict.
func mapDeleteErr(err error) error {
	if isForeignKeyViolation(err) {
		return errors.Wrap(errs.ErrConflict, err.Error())
	}
	return err
}
