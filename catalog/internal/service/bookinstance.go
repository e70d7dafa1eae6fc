package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Astemirdum/locallibrary/catalog/internal/form"
	"github.com/Astemirdum/locallibrary/catalog/internal/model"
	"github.com/Astemirdum/locallibrary/pkg/kafka"
)

func (s *Service) GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error) {
	return s.repo.GetBookInstance(ctx, id)
}

func (s *Service) BookInstanceList(ctx context.Context) (model.BookInstanceListPage, error) {
	instances, err := s.repo.ListBookInstances(ctx)
	if err != nil {
		return model.BookInstanceListPage{}, err
	}
	return model.BookInstanceListPage{Title: "Book Instance List", Instances: instances}, nil
}

func (s *Service) BookInstanceDetail(instance model.BookInstance) model.BookInstanceDetailPage {
	return model.BookInstanceDetailPage{Title: "Book Instance Detail", Instance: instance}
}

func (s *Service) instanceFormPage(ctx context.Context, title string, in model.BookInstanceInput, fieldErrs []model.FieldError) (model.BookInstanceFormPage, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return model.BookInstanceFormPage{}, err
	}
	page := model.BookInstanceFormPage{
		Title:    title,
		Instance: in,
		Books:    make([]model.BookOption, 0, len(books)),
		Statuses: model.Statuses,
		Errors:   fieldErrs,
	}
	for _, b := range books {
		page.Books = append(page.Books, model.BookOption{Book: b, Selected: b.ID.String() == in.Book})
	}
	return page, nil
}

func (s *Service) BookInstanceCreateForm(ctx context.Context) (model.BookInstanceFormPage, error) {
	return s.instanceFormPage(ctx, "Create BookInstance", model.BookInstanceInput{}, nil)
}

// CreateBookInstance stores a new copy. A missing due date defaults to now.
func (s *Service) CreateBookInstance(ctx context.Context, in model.BookInstanceInput) (model.BookInstanceFormPage, string, error) {
	out, instance, fieldErrs := form.BookInstance(in)
	if len(fieldErrs) > 0 {
		page, err := s.instanceFormPage(ctx, "Create BookInstance", out, fieldErrs)
		return page, "", err
	}
	if instance.DueBack.IsZero() {
		instance.DueBack = s.now()
	}
	instance, err := s.repo.CreateBookInstance(ctx, instance)
	if err != nil {
		return model.BookInstanceFormPage{}, "", err
	}
	s.publish(model.KindBookInstance, kafka.ActionCreated, instance.ID)
	return model.BookInstanceFormPage{}, instance.URL(), nil
}

func (s *Service) BookInstanceUpdateForm(ctx context.Context, instance model.BookInstance) (model.BookInstanceFormPage, error) {
	return s.instanceFormPage(ctx, "Update BookInstance", instance.Input(), nil)
}

func (s *Service) UpdateBookInstance(ctx context.Context, current model.BookInstance, in model.BookInstanceInput) (model.BookInstanceFormPage, string, error) {
	out, instance, fieldErrs := form.BookInstance(in)
	if len(fieldErrs) > 0 {
		page, err := s.instanceFormPage(ctx, "Update BookInstance", out, fieldErrs)
		return page, "", err
	}
	if instance.DueBack.IsZero() {
		instance.DueBack = s.now()
	}
	instance.ID = current.ID
	if err := s.repo.UpdateBookInstance(ctx, instance); err != nil {
		return model.BookInstanceFormPage{}, "", err
	}
	s.publish(model.KindBookInstance, kafka.ActionUpdated, instance.ID)
	return model.BookInstanceFormPage{}, instance.URL(), nil
}

func (s *Service) BookInstanceDeleteForm(instance model.BookInstance) model.BookInstanceDeletePage {
	return model.BookInstanceDeletePage{Title: "Delete BookInstance", Instance: instance}
}

// DeleteBookInstance removes a copy; nothing depends on it.
func (s *Service) DeleteBookInstance(ctx context.Context, instance model.BookInstance) (string, error) {
	if err := s.repo.DeleteBookInstance(ctx, instance.ID); err != nil {
		return "", err
	}
	s.publish(model.KindBookInstance, kafka.ActionDeleted, instance.ID)
	return model.BookInstancesPath, nil
}
