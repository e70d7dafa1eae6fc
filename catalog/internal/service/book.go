package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/locallibrary/catalog/internal/form"
	"github.com/Astemirdum/locallibrary/catalog/internal/model"
	"github.com/Astemirdum/locallibrary/pkg/kafka"
)

func (s *Service) GetBook(ctx context.Context, id uuid.UUID) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) BookList(ctx context.Context) (model.BookListPage, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return model.BookListPage{}, err
	}
	return model.BookListPage{Title: "Book List", Books: books}, nil
}

func (s *Service) BookDetail(ctx context.Context, book model.Book) (model.BookDetailPage, error) {
	instances, err := s.repo.ListInstancesByBook(ctx, book.ID)
	if err != nil {
		return model.BookDetailPage{}, err
	}
	return model.BookDetailPage{Title: "Book Detail", Book: book, Instances: instances}, nil
}

// bookFormPage loads the author and genre choices for the book form and marks
// the ones chosen in in.
func (s *Service) bookFormPage(ctx context.Context, title string, in model.BookInput, fieldErrs []model.FieldError) (model.BookFormPage, error) {
	var (
		authors []model.Author
		genres  []model.Genre
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		authors, err = s.repo.ListAuthors(gctx)
		return err
	})
	g.Go(func() (err error) {
		genres, err = s.repo.ListGenres(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.BookFormPage{}, err
	}

	chosen := make(map[string]struct{}, len(in.Genre))
	for _, id := range in.Genre {
		chosen[id] = struct{}{}
	}

	page := model.BookFormPage{
		Title:   title,
		Book:    in,
		Authors: make([]model.AuthorOption, 0, len(authors)),
		Genres:  make([]model.GenreOption, 0, len(genres)),
		Errors:  fieldErrs,
	}
	for _, a := range authors {
		page.Authors = append(page.Authors, model.AuthorOption{Author: a, Selected: a.ID.String() == in.Author})
	}
	for _, genre := range genres {
		_, ok := chosen[genre.ID.String()]
		page.Genres = append(page.Genres, model.GenreOption{Genre: genre, Checked: ok})
	}
	return page, nil
}

func (s *Service) BookCreateForm(ctx context.Context) (model.BookFormPage, error) {
	return s.bookFormPage(ctx, "Create Book", model.BookInput{Genre: []string{}}, nil)
}

func (s *Service) CreateBook(ctx context.Context, in model.BookInput) (model.BookFormPage, string, error) {
	out, book, fieldErrs := form.Book(in)
	if len(fieldErrs) > 0 {
		page, err := s.bookFormPage(ctx, "Create Book", out, fieldErrs)
		return page, "", err
	}
	book, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return model.BookFormPage{}, "", err
	}
	s.publish(model.KindBook, kafka.ActionCreated, book.ID)
	return model.BookFormPage{}, book.URL(), nil
}

func (s *Service) BookUpdateForm(ctx context.Context, book model.Book) (model.BookFormPage, error) {
	return s.bookFormPage(ctx, "Update Book", book.Input(), nil)
}

func (s *Service) UpdateBook(ctx context.Context, current model.Book, in model.BookInput) (model.BookFormPage, string, error) {
	out, book, fieldErrs := form.Book(in)
	if len(fieldErrs) > 0 {
		page, err := s.bookFormPage(ctx, "Update Book", out, fieldErrs)
		return page, "", err
	}
	book.ID = current.ID
	if err := s.repo.UpdateBook(ctx, book); err != nil {
		return model.BookFormPage{}, "", err
	}
	s.publish(model.KindBook, kafka.ActionUpdated, book.ID)
	return model.BookFormPage{}, book.URL(), nil
}

func (s *Service) BookDeleteForm(ctx context.Context, book model.Book) (model.BookDeletePage, error) {
	instances, err := s.repo.ListInstancesByBook(ctx, book.ID)
	if err != nil {
		return model.BookDeletePage{}, err
	}
	return model.BookDeletePage{Title: "Delete Book", Book: book, Instances: instances}, nil
}

// DeleteBook refuses to delete a book that still has copies.
func (s *Service) DeleteBook(ctx context.Context, book model.Book) (model.BookDeletePage, string, error) {
	page, err := s.BookDeleteForm(ctx, book)
	if err != nil {
		return model.BookDeletePage{}, "", err
	}
	if len(page.Instances) > 0 {
		return page, "", nil
	}
	if err := s.repo.DeleteBook(ctx, book.ID); err != nil {
		return model.BookDeletePage{}, "", err
	}
	s.publish(model.KindBook, kafka.ActionDeleted, book.ID)
	return model.BookDeletePage{}, model.BooksPath, nil
}
