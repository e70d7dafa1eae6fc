package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
	"github.com/Astemirdum/locallibrary/catalog/internal/repository"
	"github.com/Astemirdum/locallibrary/pkg/kafka"
)

// Service implements the catalog form workflows. Write operations return
// either a redirect target or a page to re-render; validation failures are
// never returned as errors.
type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	enqueuer kafka.Enqueuer
	now      func() time.Time
}

func NewService(repo repository.Repository, enqueuer kafka.Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:      log.Named("service"),
		repo:     repo,
		enqueuer: enqueuer,
		now:      time.Now,
	}
}

// publish reports a catalog change; failures are logged and otherwise ignored.
func (s *Service) publish(kind string, action kafka.Action, id uuid.UUID) {
	event := kafka.CatalogEvent{
		Kind:      kind,
		Action:    action,
		ID:        id,
		Timestamp: s.now().UTC(),
	}
	if err := s.enqueuer.Enqueue(kafka.CatalogTopic, id.String(), event); err != nil {
		s.log.Warn("publish catalog event",
			zap.String("kind", kind),
			zap.String("action", string(action)),
			zap.Stringer("id", id),
			zap.Error(err))
	}
}

func (s *Service) Index(ctx context.Context) (model.IndexPage, error) {
	page := model.IndexPage{Title: "Local Library Home"}
	g, ctx := errgroup.WithContext(ctx)
	count := func(dst *int, kind string) {
		g.Go(func() error {
			n, err := s.repo.Count(ctx, kind)
			*dst = n
			return err
		})
	}
	count(&page.BookCount, model.KindBook)
	count(&page.BookInstanceCount, model.KindBookInstance)
	count(&page.AuthorCount, model.KindAuthor)
	count(&page.GenreCount, model.KindGenre)
	g.Go(func() error {
		n, err := s.repo.CountBookInstancesByStatus(ctx, model.StatusAvailable)
		page.BookInstanceAvailableCount = n
		return err
	})
	if err := g.Wait(); err != nil {
		return model.IndexPage{}, err
	}
	return page, nil
}
