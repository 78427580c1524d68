package template

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestList_CachesCatalog(t *testing.T) {
	// Arrange
	ctx := context.Background()
	findAllCalls := 0
	mockTemplates := &mocks.MockTemplateRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Template, error) {
			findAllCalls++
			return []domain.Template{
				{ID: "template_1", Name: "Lesson Plan Template"},
				{ID: "template_2", Name: "Student Progress Report"},
			}, nil
		},
	}

	service := NewService(mockTemplates, &mocks.MockSubmissionRepository{}, mocks.NewMockCache(), newTestLogger())

	// Act
	first, err := service.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := service.List(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if findAllCalls != 1 {
		t.Errorf("expected one repository hit, got %d", findAllCalls)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Errorf("expected 2 templates from both calls, got %d and %d", len(first), len(second))
	}
	if second[0].ID != "template_1" {
		t.Errorf("expected cached catalog to round-trip, got first ID '%s'", second[0].ID)
	}
}

func TestCreate_InvalidatesCatalogCache(t *testing.T) {
	// Arrange
	ctx := context.Background()
	findAllCalls := 0
	mockTemplates := &mocks.MockTemplateRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Template, error) {
			findAllCalls++
			return []domain.Template{{ID: "template_1"}}, nil
		},
	}

	service := NewService(mockTemplates, &mocks.MockSubmissionRepository{}, mocks.NewMockCache(), newTestLogger())

	// Act
	if _, err := service.List(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := service.Create(ctx, &domain.Template{Name: "Custom Form"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := service.List(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Assert
	if findAllCalls != 2 {
		t.Errorf("expected cache invalidation to force a second repository hit, got %d", findAllCalls)
	}
}

func TestCreateSubmission_DefaultsToDraft(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var saved *domain.FormSubmission
	mockSubmissions := &mocks.MockSubmissionRepository{
		SaveFunc: func(ctx context.Context, submission *domain.FormSubmission) error {
			saved = submission
			return nil
		},
	}

	service := NewService(&mocks.MockTemplateRepository{}, mockSubmissions, mocks.NewMockCache(), newTestLogger())

	// Act
	submission, err := service.CreateSubmission(ctx, &domain.FormSubmission{
		TemplateID: "template_1",
		StaffID:    "staff-1",
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if submission.ID == "" {
		t.Error("expected generated submission ID")
	}
	if submission.Status != domain.FormStatusDraft {
		t.Errorf("expected status 'draft', got '%s'", submission.Status)
	}
	if saved == nil {
		t.Fatal("expected submission to be saved")
	}
}

func TestUpdateSubmission_ChangesStatus(t *testing.T) {
	// Arrange
	ctx := context.Background()
	existing := &domain.FormSubmission{
		ID:     "sub-1",
		Status: domain.FormStatusDraft,
	}
	mockSubmissions := &mocks.MockSubmissionRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.FormSubmission, error) {
			return existing, nil
		},
	}

	service := NewService(&mocks.MockTemplateRepository{}, mockSubmissions, mocks.NewMockCache(), newTestLogger())

	submitted := domain.FormStatusSubmitted

	// Act
	updated, err := service.UpdateSubmission(ctx, "sub-1", &domain.FormSubmissionUpdate{
		Status: &submitted,
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Status != domain.FormStatusSubmitted {
		t.Errorf("expected status 'submitted', got '%s'", updated.Status)
	}
}

func TestUpdateSubmission_NotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockSubmissions := &mocks.MockSubmissionRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.FormSubmission, error) {
			return nil, nil
		},
	}

	service := NewService(&mocks.MockTemplateRepository{}, mockSubmissions, mocks.NewMockCache(), newTestLogger())

	// Act
	updated, err := service.UpdateSubmission(ctx, "missing", &domain.FormSubmissionUpdate{})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated != nil {
		t.Error("expected nil submission for unknown ID")
	}
}
