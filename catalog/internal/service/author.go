package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Astemirdum/locallibrary/catalog/internal/form"
	"github.com/Astemirdum/locallibrary/catalog/internal/model"
	"github.com/Astemirdum/locallibrary/pkg/kafka"
)

func (s *Service) GetAuthor(ctx context.Context, id uuid.UUID) (model.Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) AuthorList(ctx context.Context) (model.AuthorListPage, error) {
	authors, err := s.repo.ListAuthors(ctx)
	if err != nil {
		return model.AuthorListPage{}, err
	}
	return model.AuthorListPage{Title: "Author List", Authors: authors}, nil
}

func (s *Service) AuthorDetail(ctx context.Context, author model.Author) (model.AuthorDetailPage, error) {
	books, err := s.repo.ListBooksByAuthor(ctx, author.ID)
	if err != nil {
		return model.AuthorDetailPage{}, err
	}
	return model.AuthorDetailPage{Title: "Author Detail", Author: author, Books: books}, nil
}

func (s *Service) AuthorCreateForm() model.AuthorFormPage {
	return model.AuthorFormPage{Title: "Create Author"}
}

func (s *Service) CreateAuthor(ctx context.Context, in model.AuthorInput) (model.AuthorFormPage, string, error) {
	out, author, errs := form.Author(in)
	if len(errs) > 0 {
		return model.AuthorFormPage{Title: "Create Author", Author: out, Errors: errs}, "", nil
	}
	author, err := s.repo.CreateAuthor(ctx, author)
	if err != nil {
		return model.AuthorFormPage{}, "", err
	}
	s.publish(model.KindAuthor, kafka.ActionCreated, author.ID)
	return model.AuthorFormPage{}, author.URL(), nil
}

func (s *Service) AuthorUpdateForm(author model.Author) model.AuthorFormPage {
	return model.AuthorFormPage{Title: "Update Author", Author: author.Input()}
}

// UpdateAuthor replaces every field of the stored author with the submitted values.
func (s *Service) UpdateAuthor(ctx context.Context, current model.Author, in model.AuthorInput) (model.AuthorFormPage, string, error) {
	out, author, errs := form.Author(in)
	if len(errs) > 0 {
		return model.AuthorFormPage{Title: "Update Author", Author: out, Errors: errs}, "", nil
	}
	author.ID = current.ID
	if err := s.repo.UpdateAuthor(ctx, author); err != nil {
		return model.AuthorFormPage{}, "", err
	}
	s.publish(model.KindAuthor, kafka.ActionUpdated, author.ID)
	return model.AuthorFormPage{}, author.URL(), nil
}

func (s *Service) AuthorDeleteForm(ctx context.Context, author model.Author) (model.AuthorDeletePage, error) {
	books, err := s.repo.ListBooksByAuthor(ctx, author.ID)
	if err != nil {
		return model.AuthorDeletePage{}, err
	}
	return model.AuthorDeletePage{Title: "Delete Author", Author: author, Books: books}, nil
}

// DeleteAuthor refuses to delete an author that still has books and
// re-renders the confirmation page instead.
func (s *Service) DeleteAuthor(ctx context.Context, author model.Author) (model.AuthorDeletePage, string, error) {
	page, err := s.AuthorDeleteForm(ctx, author)
	if err != nil {
		return model.AuthorDeletePage{}, "", err
	}
	if len(page.Books) > 0 {
		return page, "", nil
	}
	if err := s.repo.DeleteAuthor(ctx, author.ID); err != nil {
		return model.AuthorDeletePage{}, "", err
	}
	s.publish(model.KindAuthor, kafka.ActionDeleted, author.ID)
	return model.AuthorDeletePage{}, model.AuthorsPath, nil
}
