package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
	"github.com/Astemirdum/locallibrary/catalog/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	Index(ctx context.Context) (model.IndexPage, error)

	GetAuthor(ctx context.Context, id uuid.UUID) (model.Author, error)
	AuthorList(ctx context.Context) (model.AuthorListPage, error)
	AuthorDetail(ctx context.Context, author model.Author) (model.AuthorDetailPage, error)
	AuthorCreateForm() model.AuthorFormPage
	CreateAuthor(ctx context.Context, in model.AuthorInput) (model.AuthorFormPage, string, error)
	AuthorUpdateForm(author model.Author) model.AuthorFormPage
	UpdateAuthor(ctx context.Context, current model.Author, in model.AuthorInput) (model.AuthorFormPage, string, error)
	AuthorDeleteForm(ctx context.Context, author model.Author) (model.AuthorDeletePage, error)
	DeleteAuthor(ctx context.Context, author model.Author) (model.AuthorDeletePage, string, error)

	GetGenre(ctx context.Context, id uuid.UUID) (model.Genre, error)
	GenreList(ctx context.Context) (model.GenreListPage, error)
	GenreDetail(ctx context.Context, genre model.Genre) (model.GenreDetailPage, error)
	GenreCreateForm() model.GenreFormPage
	CreateGenre(ctx context.Context, in model.GenreInput) (model.GenreFormPage, string, error)
	GenreUpdateForm(genre model.Genre) model.GenreFormPage
	UpdateGenre(ctx context.Context, current model.Genre, in model.GenreInput) (model.GenreFormPage, string, error)
	GenreDeleteForm(ctx context.Context, genre model.Genre) (model.GenreDeletePage, error)
	DeleteGenre(ctx context.Context, genre model.Genre) (model.GenreDeletePage, string, error)

	GetBook(ctx context.Context, id uuid.UUID) (model.Book, error)
	BookList(ctx context.Context) (model.BookListPage, error)
	BookDetail(ctx context.Context, book model.Book) (model.BookDetailPage, error)
	BookCreateForm(ctx context.Context) (model.BookFormPage, error)
	CreateBook(ctx context.Context, in model.BookInput) (model.BookFormPage, string, error)
	BookUpdateForm(ctx context.Context, book model.Book) (model.BookFormPage, error)
	UpdateBook(ctx context.Context, current model.Book, in model.BookInput) (model.BookFormPage, string, error)
	BookDeleteForm(ctx context.Context, book model.Book) (model.BookDeletePage, error)
	DeleteBook(ctx context.Context, book model.Book) (model.BookDeletePage, string, error)

	GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error)
	BookInstanceList(ctx context.Context) (model.BookInstanceListPage, error)
	BookInstanceDetail(instance model.BookInstance) model.BookInstanceDetailPage
	BookInstanceCreateForm(ctx context.Context) (model.BookInstanceFormPage, error)
	CreateBookInstance(ctx context.Context, in model.BookInstanceInput) (model.BookInstanceFormPage, string, error)
	BookInstanceUpdateForm(ctx context.Context, instance model.BookInstance) (model.BookInstanceFormPage, error)
	UpdateBookInstance(ctx context.Context, current model.BookInstance, in model.BookInstanceInput) (model.BookInstanceFormPage, string, error)
	BookInstanceDeleteForm(instance model.BookInstance) model.BookInstanceDeletePage
	DeleteBookInstance(ctx context.Context, instance model.BookInstance) (string, error)
}

var _ CatalogService = (*service.Service)(nil)
