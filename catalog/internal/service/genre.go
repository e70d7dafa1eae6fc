package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Astemirdum/locallibrary/catalog/internal/errs"
	"github.com/Astemirdum/locallibrary/catalog/internal/form"
	"github.com/Astemirdum/locallibrary/catalog/internal/model"
	"github.com/Astemirdum/locallibrary/pkg/kafka"
)

func (s *Service) GetGenre(ctx context.Context, id uuid.UUID) (model.Genre, error) {
	return s.repo.GetGenre(ctx, id)
}

func (s *Service) GenreList(ctx context.Context) (model.GenreListPage, error) {
	genres, err := s.repo.ListGenres(ctx)
	if err != nil {
		return model.GenreListPage{}, err
	}
	return model.GenreListPage{Title: "Genre List", Genres: genres}, nil
}

func (s *Service) GenreDetail(ctx context.Context, genre model.Genre) (model.GenreDetailPage, error) {
	books, err := s.repo.ListBooksByGenre(ctx, genre.ID)
	if err != nil {
		return model.GenreDetailPage{}, err
	}
	return model.GenreDetailPage{Title: "Genre Detail", Genre: genre, Books: books}, nil
}

func (s *Service) GenreCreateForm() model.GenreFormPage {
	return model.GenreFormPage{Title: "Create Genre"}
}

// CreateGenre redirects to an existing genre with the same name instead of
// storing a duplicate.
func (s *Service) CreateGenre(ctx context.Context, in model.GenreInput) (model.GenreFormPage, string, error) {
	out, genre, fieldErrs := form.Genre(in)
	if len(fieldErrs) > 0 {
		return model.GenreFormPage{Title: "Create Genre", Genre: out, Errors: fieldErrs}, "", nil
	}

	existing, err := s.repo.FindGenreByName(ctx, genre.Name)
	switch {
	case err == nil:
		return model.GenreFormPage{}, existing.URL(), nil
	case !errors.Is(err, errs.ErrNotFound):
		return model.GenreFormPage{}, "", err
	}

	genre, err = s.repo.CreateGenre(ctx, genre)
	if err != nil {
		return model.GenreFormPage{}, "", err
	}
	s.publish(model.KindGenre, kafka.ActionCreated, genre.ID)
	return model.GenreFormPage{}, genre.URL(), nil
}

func (s *Service) GenreUpdateForm(genre model.Genre) model.GenreFormPage {
	return model.GenreFormPage{Title: "Update Genre", Genre: genre.Input()}
}

func (s *Service) UpdateGenre(ctx context.Context, current model.Genre, in model.GenreInput) (model.GenreFormPage, string, error) {
	out, genre, fieldErrs := form.Genre(in)
	if len(fieldErrs) > 0 {
		return model.GenreFormPage{Title: "Update Genre", Genre: out, Errors: fieldErrs}, "", nil
	}
	genre.ID = current.ID
	if err := s.repo.UpdateGenre(ctx, genre); err != nil {
		return model.GenreFormPage{}, "", err
	}
	s.publish(model.KindGenre, kafka.ActionUpdated, genre.ID)
	return model.GenreFormPage{}, genre.URL(), nil
}

func (s *Service) GenreDeleteForm(ctx context.Context, genre model.Genre) (model.GenreDeletePage, error) {
	books, err := s.repo.ListBooksByGenre(ctx, genre.ID)
	if err != nil {
		return model.GenreDeletePage{}, err
	}
	return model.GenreDeletePage{Title: "Delete Genre", Genre: genre, Books: books}, nil
}

func (s *Service) DeleteGenre(ctx context.Context, genre model.Genre) (model.GenreDeletePage, string, error) {
	page, err := s.GenreDeleteForm(ctx, genre)
	if err != nil {
		return model.GenreDeletePage{}, "", err
	}
	if len(page.Books) > 0 {
		return page, "", nil
	}
	if err := s.repo.DeleteGenre(ctx, genre.ID); err != nil {
		return model.GenreDeletePage{}, "", err
	}
	s.publish(model.KindGenre, kafka.ActionDeleted, genre.ID)
	return model.GenreDeletePage{}, model.GenresPath, nil
}
