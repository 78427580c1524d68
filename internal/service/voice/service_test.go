package voice

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/adapter/queue"
	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/mocks"
	"github.com/edustaff/staffhub/internal/service/extraction"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func newTestService(transcriptions *mocks.MockTranscriptionRepository, conversions *mocks.MockConversionRepository, activities *mocks.MockActivityLogger, mq *mocks.MockMessageQueue) *Service {
	logger := newTestLogger()
	svc := NewService(transcriptions, conversions, extraction.NewEngine(logger), activities, mq, logger)
	return svc.(*Service)
}

func TestCreateTranscription_LogsActivity(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var saved *domain.VoiceTranscription
	mockTranscriptions := &mocks.MockTranscriptionRepository{
		SaveFunc: func(ctx context.Context, transcription *domain.VoiceTranscription) error {
			saved = transcription
			return nil
		},
	}
	activities := &mocks.MockActivityLogger{}

	service := newTestService(mockTranscriptions, &mocks.MockConversionRepository{}, activities, mocks.NewMockMessageQueue())

	// Act
	transcription, err := service.CreateTranscription(ctx, &domain.VoiceTranscription{
		Text:     "Today we covered derivatives",
		Duration: 42,
		StaffID:  "staff-1",
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if transcription.ID == "" {
		t.Error("expected generated transcription ID")
	}
	if saved == nil {
		t.Fatal("expected transcription to be saved")
	}
	logged := activities.Logged()
	if len(logged) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(logged))
	}
	if !strings.Contains(logged[0], "42s") {
		t.Errorf("expected activity to mention duration, got '%s'", logged[0])
	}
}

func TestProcessVoiceToTemplate_Matched(t *testing.T) {
	// Arrange
	ctx := context.Background()
	activities := &mocks.MockActivityLogger{}
	mockQueue := mocks.NewMockMessageQueue()
	service := newTestService(&mocks.MockTranscriptionRepository{}, &mocks.MockConversionRepository{}, activities, mockQueue)

	// Act
	result, err := service.ProcessVoiceToTemplate(ctx, "I need a lesson plan for calculus covering derivatives", "staff-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.TemplateMatch == nil {
		t.Fatal("expected a template match")
	}
	if result.TemplateMatch.TemplateID != "template_1" {
		t.Errorf("expected 'template_1', got '%s'", result.TemplateMatch.TemplateID)
	}
	if result.Confidence != 0.85 {
		t.Errorf("expected confidence 0.85, got %v", result.Confidence)
	}

	logged := activities.Logged()
	if len(logged) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(logged))
	}
	if !strings.Contains(logged[0], "85%") {
		t.Errorf("expected activity to mention 85%% confidence, got '%s'", logged[0])
	}

	published := mockQueue.Published(queue.SubjectVoiceProcessed)
	if len(published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(published))
	}
	var event struct {
		StaffID    string  `json:"staff_id"`
		Template   string  `json:"template"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(published[0], &event); err != nil {
		t.Fatalf("failed to decode published event: %v", err)
	}
	if event.Template != "Lesson Plan Template" {
		t.Errorf("expected event template 'Lesson Plan Template', got '%s'", event.Template)
	}
	if event.StaffID != "staff-1" {
		t.Errorf("expected event staff 'staff-1', got '%s'", event.StaffID)
	}
}

func TestProcessVoiceToTemplate_Unmatched(t *testing.T) {
	// Arrange
	ctx := context.Background()
	activities := &mocks.MockActivityLogger{}
	service := newTestService(&mocks.MockTranscriptionRepository{}, &mocks.MockConversionRepository{}, activities, mocks.NewMockMessageQueue())

	// Act
	result, err := service.ProcessVoiceToTemplate(ctx, "the weather is nice and sunny", "staff-1")

	// Assert
	if err != nil {
		t.Fatalf("unmatched input must not error, got %v", err)
	}
	if result.TemplateMatch != nil {
		t.Errorf("expected no match, got '%s'", result.TemplateMatch.TemplateID)
	}
	if result.Confidence != 0 {
		t.Errorf("expected confidence 0, got %v", result.Confidence)
	}
	if result.ExtractedData == nil || len(result.ExtractedData) != 0 {
		t.Errorf("expected empty extracted data, got %v", result.ExtractedData)
	}

	logged := activities.Logged()
	if len(logged) != 1 || !strings.Contains(logged[0], "0%") {
		t.Errorf("expected activity with 0%% confidence, got %v", logged)
	}
}

func TestCreateConversion_Defaults(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var saved *domain.VoiceToTemplateConversion
	mockConversions := &mocks.MockConversionRepository{
		SaveFunc: func(ctx context.Context, conversion *domain.VoiceToTemplateConversion) error {
			saved = conversion
			return nil
		},
	}
	activities := &mocks.MockActivityLogger{}
	service := newTestService(&mocks.MockTranscriptionRepository{}, mockConversions, activities, mocks.NewMockMessageQueue())

	// Act
	conversion, err := service.CreateConversion(ctx, &domain.VoiceToTemplateConversion{
		TemplateName:          "Lesson Plan Template",
		OriginalTranscription: "lesson plan for calculus",
		StaffID:               "staff-1",
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if conversion.ID == "" {
		t.Error("expected generated conversion ID")
	}
	if conversion.Status != domain.FormStatusDraft {
		t.Errorf("expected status 'draft', got '%s'", conversion.Status)
	}
	if saved == nil {
		t.Fatal("expected conversion to be saved")
	}
	logged := activities.Logged()
	if len(logged) != 1 || !strings.Contains(logged[0], "Lesson Plan Template") {
		t.Errorf("expected activity naming the template, got %v", logged)
	}
}

func TestDeleteTranscription_NotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockTranscriptions := &mocks.MockTranscriptionRepository{
		DeleteFunc: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		},
	}
	service := newTestService(mockTranscriptions, &mocks.MockConversionRepository{}, &mocks.MockActivityLogger{}, mocks.NewMockMessageQueue())

	// Act
	deleted, err := service.DeleteTranscription(ctx, "missing")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deleted {
		t.Error("expected deleted=false for unknown ID")
	}
}
