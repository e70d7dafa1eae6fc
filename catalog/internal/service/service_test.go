package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/locallibrary/catalog/internal/errs"
	"github.com/Astemirdum/locallibrary/catalog/internal/model"
	repo_mocks "github.com/Astemirdum/locallibrary/catalog/internal/repository/mocks"
	"github.com/Astemirdum/locallibrary/pkg/kafka"
	kafka_mocks "github.com/Astemirdum/locallibrary/pkg/kafka/mocks"
)

var fixedNow = time.Date(2024, time.May, 4, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *repo_mocks.MockRepository, *kafka_mocks.MockEnqueuer) {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	enq := kafka_mocks.NewMockEnqueuer(c)
	svc := NewService(repo, enq, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, enq
}

func expectEvent(enq *kafka_mocks.MockEnqueuer, kind string, action kafka.Action, id uuid.UUID) {
	enq.EXPECT().
		Enqueue(kafka.CatalogTopic, id.String(), kafka.CatalogEvent{Kind: kind, Action: action, ID: id, Timestamp: fixedNow}).
		Return(nil)
}

func TestService_Index(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t)
	repo.EXPECT().Count(gomock.Any(), model.KindBook).Return(3, nil)
	repo.EXPECT().Count(gomock.Any(), model.KindBookInstance).Return(5, nil)
	repo.EXPECT().Count(gomock.Any(), model.KindAuthor).Return(2, nil)
	repo.EXPECT().Count(gomock.Any(), model.KindGenre).Return(4, nil)
	repo.EXPECT().CountBookInstancesByStatus(gomock.Any(), model.StatusAvailable).Return(1, nil)

	page, err := svc.Index(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.IndexPage{
		Title:                      "Local Library Home",
		BookCount:                  3,
		BookInstanceCount:          5,
		BookInstanceAvailableCount: 1,
		AuthorCount:                2,
		GenreCount:                 4,
	}, page)
}

func TestService_Index_Error(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down")).AnyTimes()
	repo.EXPECT().CountBookInstancesByStatus(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	_, err := svc.Index(context.Background())
	require.EqualError(t, err, "db down")
}

func TestService_CreateAuthor(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	tests := []struct {
		name         string
		in           model.AuthorInput
		mockBehavior func(r *repo_mocks.MockRepository, e *kafka_mocks.MockEnqueuer)
		wantRedirect string
		wantErrors   int
	}{
		{
			name: "ok",
			in:   model.AuthorInput{FirstName: "Ada", FamilyName: "Lovelace", DateOfBirth: "1815-12-10"},
			mockBehavior: func(r *repo_mocks.MockRepository, e *kafka_mocks.MockEnqueuer) {
				birth := time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC)
				r.EXPECT().
					CreateAuthor(gomock.Any(), model.Author{FirstName: "Ada", FamilyName: "Lovelace", DateOfBirth: &birth}).
					Return(model.Author{ID: id, FirstName: "Ada", FamilyName: "Lovelace", DateOfBirth: &birth}, nil)
				expectEvent(e, model.KindAuthor, kafka.ActionCreated, id)
			},
			wantRedirect: "/catalog/author/" + id.String(),
		},
		{
			name:         "invalid. nothing stored",
			in:           model.AuthorInput{FirstName: "", FamilyName: "Lovelace"},
			mockBehavior: func(r *repo_mocks.MockRepository, e *kafka_mocks.MockEnqueuer) {},
			wantErrors:   1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, enq := newTestService(t)
			tt.mockBehavior(repo, enq)

			page, redirect, err := svc.CreateAuthor(context.Background(), tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.wantRedirect, redirect)
			require.Len(t, page.Errors, tt.wantErrors)
			if tt.wantErrors > 0 {
				require.Equal(t, "Create Author", page.Title)
				require.Equal(t, "Lovelace", page.Author.FamilyName)
			}
		})
	}
}

func TestService_UpdateAuthor_KeepsID(t *testing.T) {
	t.Parallel()
	svc, repo, enq := newTestService(t)
	current := model.Author{ID: uuid.New(), FirstName: "Ada", FamilyName: "Byron"}
	repo.EXPECT().
		UpdateAuthor(gomock.Any(), model.Author{ID: current.ID, FirstName: "Ada", FamilyName: "Lovelace"}).
		Return(nil)
	expectEvent(enq, model.KindAuthor, kafka.ActionUpdated, current.ID)

	_, redirect, err := svc.UpdateAuthor(context.Background(), current, model.AuthorInput{FirstName: "Ada", FamilyName: "Lovelace"})
	require.NoError(t, err)
	require.Equal(t, current.URL(), redirect)
}

func TestService_UpdateAuthor_Invalid(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	current := model.Author{ID: uuid.New(), FirstName: "Ada", FamilyName: "Byron"}

	page, redirect, err := svc.UpdateAuthor(context.Background(), current, model.AuthorInput{FirstName: "Ada!", FamilyName: "Byron"})
	require.NoError(t, err)
	require.Empty(t, redirect)
	require.Equal(t, "Update Author", page.Title)
	require.Equal(t, "First name has non-alphanumeric characters.", page.Errors[0].Message)
}

func TestService_DeleteAuthor(t *testing.T) {
	t.Parallel()
	author := model.Author{ID: uuid.New(), FirstName: "Ada", FamilyName: "Lovelace"}

	t.Run("has books", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		books := []model.Book{{ID: uuid.New(), Title: "Notes", AuthorID: author.ID}}
		repo.EXPECT().ListBooksByAuthor(gomock.Any(), author.ID).Return(books, nil)

		page, redirect, err := svc.DeleteAuthor(context.Background(), author)
		require.NoError(t, err)
		require.Empty(t, redirect)
		require.Equal(t, "Delete Author", page.Title)
		require.Equal(t, books, page.Books)
	})
	t.Run("no books", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		repo.EXPECT().ListBooksByAuthor(gomock.Any(), author.ID).Return([]model.Book{}, nil)
		repo.EXPECT().DeleteAuthor(gomock.Any(), author.ID).Return(nil)
		expectEvent(enq, model.KindAuthor, kafka.ActionDeleted, author.ID)

		_, redirect, err := svc.DeleteAuthor(context.Background(), author)
		require.NoError(t, err)
		require.Equal(t, model.AuthorsPath, redirect)
	})
}

func TestService_CreateGenre(t *testing.T) {
	t.Parallel()
	existing := model.Genre{ID: uuid.New(), Name: "Fantasy"}

	t.Run("existing name redirects", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().FindGenreByName(gomock.Any(), "Fantasy").Return(existing, nil)

		_, redirect, err := svc.CreateGenre(context.Background(), model.GenreInput{Name: " Fantasy "})
		require.NoError(t, err)
		require.Equal(t, existing.URL(), redirect)
	})
	t.Run("new name", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		created := model.Genre{ID: uuid.New(), Name: "Poetry"}
		repo.EXPECT().FindGenreByName(gomock.Any(), "Poetry").Return(model.Genre{}, errs.NotFound(model.KindGenre))
		repo.EXPECT().CreateGenre(gomock.Any(), model.Genre{Name: "Poetry"}).Return(created, nil)
		expectEvent(enq, model.KindGenre, kafka.ActionCreated, created.ID)

		_, redirect, err := svc.CreateGenre(context.Background(), model.GenreInput{Name: "Poetry"})
		require.NoError(t, err)
		require.Equal(t, created.URL(), redirect)
	})
	t.Run("lookup fails", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().FindGenreByName(gomock.Any(), "Poetry").Return(model.Genre{}, errors.New("db down"))

		_, _, err := svc.CreateGenre(context.Background(), model.GenreInput{Name: "Poetry"})
		require.EqualError(t, err, "db down")
	})
	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)

		page, redirect, err := svc.CreateGenre(context.Background(), model.GenreInput{Name: "ab"})
		require.NoError(t, err)
		require.Empty(t, redirect)
		require.Equal(t, "Genre name must be between 3 and 100 characters.", page.Errors[0].Message)
	})
}

func TestService_DeleteGenre_HasBooks(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t)
	genre := model.Genre{ID: uuid.New(), Name: "Fantasy"}
	repo.EXPECT().ListBooksByGenre(gomock.Any(), genre.ID).Return([]model.Book{{ID: uuid.New()}}, nil)

	page, redirect, err := svc.DeleteGenre(context.Background(), genre)
	require.NoError(t, err)
	require.Empty(t, redirect)
	require.Len(t, page.Books, 1)
}

func TestService_CreateBook_Invalid(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t)
	authors := []model.Author{{ID: uuid.New(), FamilyName: "Tolkien"}, {ID: uuid.New(), FamilyName: "Lewis"}}
	genres := []model.Genre{{ID: uuid.New(), Name: "Fantasy"}, {ID: uuid.New(), Name: "Poetry"}}
	repo.EXPECT().ListAuthors(gomock.Any()).Return(authors, nil)
	repo.EXPECT().ListGenres(gomock.Any()).Return(genres, nil)

	page, redirect, err := svc.CreateBook(context.Background(), model.BookInput{
		Title:  "The Hobbit",
		Author: authors[1].ID.String(),
		Genre:  []string{genres[0].ID.String()},
	})
	require.NoError(t, err)
	require.Empty(t, redirect)
	require.Equal(t, "Create Book", page.Title)
	require.Len(t, page.Errors, 2)
	require.False(t, page.Authors[0].Selected)
	require.True(t, page.Authors[1].Selected)
	require.True(t, page.Genres[0].Checked)
	require.False(t, page.Genres[1].Checked)
}

func TestService_CreateBook(t *testing.T) {
	t.Parallel()
	svc, repo, enq := newTestService(t)
	authorID, genreID, bookID := uuid.New(), uuid.New(), uuid.New()
	want := model.Book{
		Title:    "The Hobbit",
		AuthorID: authorID,
		Summary:  "There and back again",
		ISBN:     "9780261102217",
		GenreIDs: []uuid.UUID{genreID},
	}
	created := want
	created.ID = bookID
	repo.EXPECT().CreateBook(gomock.Any(), want).Return(created, nil)
	expectEvent(enq, model.KindBook, kafka.ActionCreated, bookID)

	_, redirect, err := svc.CreateBook(context.Background(), model.BookInput{
		Title:   "The Hobbit",
		Author:  authorID.String(),
		Summary: "There and back again",
		ISBN:    "9780261102217",
		Genre:   []string{genreID.String(), genreID.String()},
	})
	require.NoError(t, err)
	require.Equal(t, "/catalog/book/"+bookID.String(), redirect)
}

func TestService_BookUpdateForm_MarksChoices(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t)
	author := model.Author{ID: uuid.New()}
	genres := []model.Genre{{ID: uuid.New()}, {ID: uuid.New()}}
	book := model.Book{ID: uuid.New(), Title: "T", AuthorID: author.ID, GenreIDs: []uuid.UUID{genres[1].ID}}
	repo.EXPECT().ListAuthors(gomock.Any()).Return([]model.Author{author}, nil)
	repo.EXPECT().ListGenres(gomock.Any()).Return(genres, nil)

	page, err := svc.BookUpdateForm(context.Background(), book)
	require.NoError(t, err)
	require.Equal(t, "Update Book", page.Title)
	require.True(t, page.Authors[0].Selected)
	require.False(t, page.Genres[0].Checked)
	require.True(t, page.Genres[1].Checked)
}

func TestService_DeleteBook(t *testing.T) {
	t.Parallel()
	book := model.Book{ID: uuid.New(), Title: "T"}

	t.Run("has instances", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().ListInstancesByBook(gomock.Any(), book.ID).Return([]model.BookInstance{{ID: uuid.New()}}, nil)

		page, redirect, err := svc.DeleteBook(context.Background(), book)
		require.NoError(t, err)
		require.Empty(t, redirect)
		require.Len(t, page.Instances, 1)
	})
	t.Run("conflict from store", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().ListInstancesByBook(gomock.Any(), book.ID).Return(nil, nil)
		repo.EXPECT().DeleteBook(gomock.Any(), book.ID).Return(errs.ErrConflict)

		_, _, err := svc.DeleteBook(context.Background(), book)
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestService_CreateBookInstance_DefaultDueBack(t *testing.T) {
	t.Parallel()
	svc, repo, enq := newTestService(t)
	bookID, id := uuid.New(), uuid.New()
	want := model.BookInstance{BookID: bookID, Imprint: "Penguin", Status: model.StatusMaintenance, DueBack: fixedNow}
	created := want
	created.ID = id
	repo.EXPECT().CreateBookInstance(gomock.Any(), want).Return(created, nil)
	expectEvent(enq, model.KindBookInstance, kafka.ActionCreated, id)

	_, redirect, err := svc.CreateBookInstance(context.Background(), model.BookInstanceInput{Book: bookID.String(), Imprint: "Penguin"})
	require.NoError(t, err)
	require.Equal(t, "/catalog/bookinstance/"+id.String(), redirect)
}

func TestService_CreateBookInstance_Invalid(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t)
	books := []model.Book{{ID: uuid.New(), Title: "T"}}
	repo.EXPECT().ListBooks(gomock.Any()).Return(books, nil)

	page, redirect, err := svc.CreateBookInstance(context.Background(), model.BookInstanceInput{
		Book:    books[0].ID.String(),
		Status:  "Lost",
		DueBack: "not a date",
	})
	require.NoError(t, err)
	require.Empty(t, redirect)
	require.Equal(t, "Create BookInstance", page.Title)
	require.Equal(t, model.Statuses, page.Statuses)
	require.True(t, page.Books[0].Selected)
	require.Len(t, page.Errors, 3)
}

func TestService_DeleteBookInstance_PublishFailureIgnored(t *testing.T) {
	t.Parallel()
	svc, repo, enq := newTestService(t)
	instance := model.BookInstance{ID: uuid.New()}
	repo.EXPECT().DeleteBookInstance(gomock.Any(), instance.ID).Return(nil)
	enq.EXPECT().Enqueue(kafka.CatalogTopic, instance.ID.String(), gomock.Any()).Return(errors.New("broker down"))

	redirect, err := svc.DeleteBookInstance(context.Background(), instance)
	require.NoError(t, err)
	require.Equal(t, model.BookInstancesPath, redirect)
}
