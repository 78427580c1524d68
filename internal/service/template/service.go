package template

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/observability/telemetry"
	"github.com/edustaff/staffhub/internal/ports"
)

const catalogCacheKey = "templates:catalog"
const catalogCacheTTL = 5 * time.Minute

// Service manages the template catalog and form submissions. The catalog is
// small and read-heavy, so the full list is cached as one entry.
type Service struct {
	templates   ports.TemplateRepository
	submissions ports.SubmissionRepository
	cache       ports.Cache
	log         *zap.Logger
}

func NewService(templates ports.TemplateRepository, submissions ports.SubmissionRepository, cache ports.Cache, log *zap.Logger) ports.TemplateService {
	return &Service{
		templates:   templates,
		submissions: submissions,
		cache:       cache,
		log:         log,
	}
}

func (s *Service) Create(ctx context.Context, template *domain.Template) (*domain.Template, error) {
	if template.ID == "" {
		template.ID = uuid.New().String()
	}
	now := time.Now()
	template.CreatedAt = now
	template.UpdatedAt = now

	if err := s.templates.Save(ctx, template); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return template, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Template, error) {
	return s.templates.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Template, error) {
	if cached, err := s.cache.Get(ctx, catalogCacheKey); err == nil && cached != "" {
		var templates []domain.Template
		if err := json.Unmarshal([]byte(cached), &templates); err == nil {
			return templates, nil
		}
	}

	templates, err := s.templates.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(templates); err == nil {
		if err := s.cache.Set(ctx, catalogCacheKey, string(raw), catalogCacheTTL); err != nil {
			s.log.Warn("Failed to cache template catalog", zap.Error(err))
		}
	}
	return templates, nil
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.Template, error) {
	return s.templates.FindByCategory(ctx, category)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.templates.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.invalidateCatalog(ctx)
	}
	return deleted, nil
}

func (s *Service) CreateSubmission(ctx context.Context, submission *domain.FormSubmission) (*domain.FormSubmission, error) {
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	if submission.Status == "" {
		submission.Status = domain.FormStatusDraft
	}
	now := time.Now()
	submission.CreatedAt = now
	submission.UpdatedAt = now

	if err := s.submissions.Save(ctx, submission); err != nil {
		return nil, err
	}
	telemetry.SubmissionsTotal.WithLabelValues(string(submission.Status)).Inc()
	return submission, nil
}

func (s *Service) GetSubmission(ctx context.Context, id string) (*domain.FormSubmission, error) {
	return s.submissions.FindByID(ctx, id)
}

func (s *Service) ListSubmissionsByStaff(ctx context.Context, staffID string) ([]domain.FormSubmission, error) {
	return s.submissions.FindByStaff(ctx, staffID)
}

func (s *Service) UpdateSubmission(ctx context.Context, id string, update *domain.FormSubmissionUpdate) (*domain.FormSubmission, error) {
	submission, err := s.submissions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, nil
	}

	if update.Data != nil {
		submission.Data = update.Data
	}
	if update.Status != nil {
		submission.Status = *update.Status
	}
	submission.UpdatedAt = time.Now()

	if err := s.submissions.Save(ctx, submission); err != nil {
		return nil, err
	}
	if update.Status != nil {
		telemetry.SubmissionsTotal.WithLabelValues(string(submission.Status)).Inc()
	}
	return submission, nil
}

func (s *Service) DeleteSubmission(ctx context.Context, id string) (bool, error) {
	return s.submissions.Delete(ctx, id)
}

func (s *Service) invalidateCatalog(ctx context.Context) {
	if err := s.cache.Delete(ctx, catalogCacheKey); err != nil {
		s.log.Warn("Failed to invalidate template catalog cache", zap.Error(err))
	}
}
