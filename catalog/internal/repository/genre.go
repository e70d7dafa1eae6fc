package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

func (r *repository) ListGenres(ctx context.Context) ([]model.Genre, error) {
	q := qb.Select("id", "name").
		From(genresTableName).
		OrderBy("name asc")
	genres, err := collect[model.Genre](ctx, r.db, q)
	return genres, errors.Wrap(err, "ListGenres")
}

func (r *repository) GetGenre(ctx context.Context, id uuid.UUID) (model.Genre, error) {
	q := qb.Select("id", "name").
		From(genresTableName).
		Where(sq.Eq{"id": id}).
		Limit(1)
	return collectOne[model.Genre](ctx, r.db, model.KindGenre, q)
}

func (r *repository) FindGenreByName(ctx context.Context, name string) (model.Genre, error) {
	q := qb.Select("id", "name").
		From(genresTableName).
		Where(sq.Eq{"name": name}).
		OrderBy("id").
		Limit(1)
	return collectOne[model.Genre](ctx, r.db, model.KindGenre, q)
}

func (r *repository) CreateGenre(ctx context.Context, genre model.Genre) (model.Genre, error) {
	genre.ID = uuid.New()
	query, args, err := qb.Insert(genresTableName).
		Columns("id", "name").
		Values(genre.ID, genre.Name).
		ToSql()
	if err != nil {
		return model.Genre{}, err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("CreateGenre", zap.String("q", query), zap.Any("args", args))
		return model.Genre{}, err
	}
	return genre, nil
}

func (r *repository) UpdateGenre(ctx context.Context, genre model.Genre) error {
	q := qb.Update(genresTableName).
		Set("name", genre.Name).
		Where(sq.Eq{"id": genre.ID})
	return r.exec(ctx, model.KindGenre, q, mapWriteErr)
}

func (r *repository) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	q := qb.Delete(genresTableName).Where(sq.Eq{"id": id})
	return r.exec(ctx, model.KindGenre, q, mapDeleteErr)
}

func (r *repository) ListBooksByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	q := selectBooks().
		Where("exists (select 1 from "+bookGenresTableName+" x where x.book_id = b.id and x.genre_id = ?)", genreID)
	books, err := collect[model.Book](ctx, r.db, q)
	return books, errors.Wrap(err, "ListBooksByGenre")
}
