// Package service holds the write operations. Each operation validates its
// input before touching the store, derives computed fields, inserts exactly
// one record through the repositories and then announces it with a
// record.created event.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/iliyamo/gym-management/internal/apperr"
	"github.com/iliyamo/gym-management/internal/observability"
	"github.com/iliyamo/gym-management/internal/queue"
	"github.com/iliyamo/gym-management/internal/repository"
)

// Publisher announces stored records. *queue.Publisher implements it.
type Publisher interface {
	Publish(ctx context.Context, ev queue.RecordCreatedEvent) error
}

const publishTimeout = 3 * time.Second

type Service struct {
	repos *repository.Repos
	pub   Publisher
	now   func() time.Time
	log   *slog.Logger
}

type Option func(*Service)

// WithPublisher enables record.created events.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.pub = p }
}

// WithClock replaces time.Now for default timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(repos *repository.Repos, log *slog.Logger, opts ...Option) *Service {
	s := &Service{repos: repos, now: time.Now, log: log}
	if s.log == nil {
		s.log = slog.Default()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// stamp returns t, or the current time when t is nil, at the second
// precision the store keeps.
func (s *Service) stamp(t *time.Time) time.Time {
	if t == nil {
		return s.now().UTC().Truncate(time.Second)
	}
	return t.UTC().Truncate(time.Second)
}

func (s *Service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// parseDate parses an optional YYYY-MM-DD value. Format is already checked
// by the validator.
func parseDate(field, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, apperr.NewValidationError("validation failed", field+" must be a date in YYYY-MM-DD form")
	}
	return &t, nil
}

func (s *Service) notInFuture(field string, t *time.Time) error {
	if t != nil && t.After(s.today()) {
		return apperr.NewValidationError("validation failed", field+" must not be in the future")
	}
	return nil
}

// done logs and counts a finished write, then publishes the event. A
// publish failure never fails the write.
func (s *Service) done(ctx context.Context, entity string, id uint64, attrs map[string]any, err error) error {
	if err != nil {
		outcome := string(apperr.TypeInternal)
		if appErr, ok := apperr.Get(err); ok {
			outcome = string(appErr.Type)
		}
		observability.RecordWrite(entity, outcome)
		s.log.Warn("write rejected", "entity", entity, "type", outcome, "error", err)
		return err
	}

	observability.RecordWrite(entity, "ok")
	s.log.Info("record created", "entity", entity, "id", id)

	if s.pub == nil {
		return nil
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	ev := queue.RecordCreatedEvent{
		Entity:     entity,
		ID:         id,
		Attributes: attrs,
		CreatedAt:  s.now().UTC().Format(time.RFC3339),
	}
	if perr := s.pub.Publish(pctx, ev); perr != nil {
		observability.RecordPublishFailure()
		s.log.Warn("record.created not published", "entity", entity, "id", id, "error", perr)
	}
	return nil
}
