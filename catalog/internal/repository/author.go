package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

var authorColumns = []string{"id", "first_name", "family_name", "date_of_birth", "date_of_death"}

func (r *repository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	q := qb.Select(authorColumns...).
		From(authorsTableName).
		OrderBy("family_name asc")
	authors, err := collect[model.Author](ctx, r.db, q)
	return authors, errors.Wrap(err, "ListAuthors")
}

func (r *repository) GetAuthor(ctx context.Context, id uuid.UUID) (model.Author, error) {
	q := qb.Select(authorColumns...).
		From(authorsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1)
	return collectOne[model.Author](ctx, r.db, model.KindAuthor, q)
}

func (r *repository) CreateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	author.ID = uuid.New()
	query, args, err := qb.Insert(authorsTableName).
		Columns(authorColumns...).
		Values(author.ID, author.FirstName, author.FamilyName, author.DateOfBirth, author.DateOfDeath).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("CreateAuthor", zap.String("q", query), zap.Any("args", args))
		return model.Author{}, err
	}
	return author, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, author model.Author) error {
	q := qb.Update(authorsTableName).
		SetMap(map[string]any{
			"first_name":    author.FirstName,
			"family_name":   author.FamilyName,
			"date_of_birth": author.DateOfBirth,
			"date_of_death": author.DateOfDeath,
		}).
		Where(sq.Eq{"id": author.ID})
	return r.exec(ctx, model.KindAuthor, q, mapWriteErr)
}

func (r *repository) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	q := qb.Delete(authorsTableName).Where(sq.Eq{"id": id})
	return r.exec(ctx, model.KindAuthor, q, mapDeleteErr)
}
