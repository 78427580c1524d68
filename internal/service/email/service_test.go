package email

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/domain"
)

// MockProvider is a mock email provider for testing
type MockProvider struct {
	SentEmails []MockEmail
	ShouldFail bool
	FailError  error
}

type MockEmail struct {
	To      string
	Subject string
	Body    string
	IsHTML  bool
}

func (m *MockProvider) Send(ctx context.Context, to, subject, body string, isHTML bool) error {
	if m.ShouldFail {
		if m.FailError != nil {
			return m.FailError
		}
		return errors.New("mock send failed")
	}

	m.SentEmails = append(m.SentEmails, MockEmail{
		To:      to,
		Subject: subject,
		Body:    body,
		IsHTML:  isHTML,
	})
	return nil
}

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func newTestService(provider *MockProvider) *Service {
	return &Service{
		config: &Config{
			Provider:  "mock",
			FromEmail: "test@staffhub.edu",
			FromName:  "StaffHub Test",
			BaseURL:   "http://localhost:3000",
		},
		provider:  provider,
		templates: make(map[string]*template.Template),
		log:       newTestLogger(),
	}
}

func TestService_Send_Success(t *testing.T) {
	// Arrange
	mockProvider := &MockProvider{}
	service := newTestService(mockProvider)

	// Act
	err := service.Send(context.Background(), "teacher@school.edu", "Test Subject", "Test Body")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mockProvider.SentEmails) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(mockProvider.SentEmails))
	}
	email := mockProvider.SentEmails[0]
	if email.To != "teacher@school.edu" {
		t.Errorf("expected to 'teacher@school.edu', got '%s'", email.To)
	}
	if email.Subject != "Test Subject" {
		t.Errorf("expected subject 'Test Subject', got '%s'", email.Subject)
	}
	if email.IsHTML {
		t.Error("expected plain text email, got HTML")
	}
}

func TestService_Send_Failure(t *testing.T) {
	// Arrange
	mockProvider := &MockProvider{
		ShouldFail: true,
		FailError:  errors.New("SMTP connection failed"),
	}
	service := newTestService(mockProvider)

	// Act
	err := service.Send(context.Background(), "teacher@school.edu", "Test Subject", "Test Body")

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "SMTP connection failed") {
		t.Errorf("expected error to contain 'SMTP connection failed', got '%s'", err.Error())
	}
}

func TestService_SendHTML_Success(t *testing.T) {
	// Arrange
	mockProvider := &MockProvider{}
	service := newTestService(mockProvider)

	htmlBody := "<h1>Hello World</h1>"

	// Act
	err := service.SendHTML(context.Background(), "teacher@school.edu", "HTML Subject", htmlBody)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mockProvider.SentEmails) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(mockProvider.SentEmails))
	}
	email := mockProvider.SentEmails[0]
	if !email.IsHTML {
		t.Error("expected HTML email, got plain text")
	}
	if email.Body != htmlBody {
		t.Errorf("expected body '%s', got '%s'", htmlBody, email.Body)
	}
}

func TestService_SendTemplate_UnknownTemplate(t *testing.T) {
	// Arrange
	mockProvider := &MockProvider{}
	service := newTestService(mockProvider)

	// Act
	err := service.SendTemplate(context.Background(), "teacher@school.edu", "nonexistent", nil)

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "template not found") {
		t.Errorf("expected 'template not found' error, got '%s'", err.Error())
	}
}

func TestService_SendWelcome_Success(t *testing.T) {
	// Arrange
	mockProvider := &MockProvider{}
	service := newTestService(mockProvider)
	service.loadTemplates()

	user := &domain.User{
		ID:    "user-123",
		Name:  "Sarah Johnson",
		Email: "sarah.johnson@school.edu",
	}

	// Act
	err := service.SendWelcome(context.Background(), user)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mockProvider.SentEmails) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(mockProvider.SentEmails))
	}
	email := mockProvider.SentEmails[0]
	if email.To != "sarah.johnson@school.edu" {
		t.Errorf("expected to 'sarah.johnson@school.edu', got '%s'", email.To)
	}
	if !strings.Contains(email.Body, "Sarah Johnson") {
		t.Error("expected body to contain user name")
	}
	if !strings.Contains(email.Body, "Welcome") {
		t.Error("expected body to contain welcome message")
	}
}

func TestService_SendAnnouncement_Broadcast(t *testing.T) {
	// Arrange
	mockProvider := &MockProvider{}
	service := newTestService(mockProvider)
	service.loadTemplates()

	announcement := &domain.Announcement{
		ID:      "ann-1",
		Title:   "Staff Meeting",
		Content: "All staff meeting on Friday at 3 PM in the main hall.",
		Date:    "2025-03-10",
	}
	recipients := []string{"a@school.edu", "b@school.edu", "c@school.edu"}

	// Act
	err := service.SendAnnouncement(context.Background(), recipients, announcement)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mockProvider.SentEmails) != 3 {
		t.Fatalf("expected 3 emails sent, got %d", len(mockProvider.SentEmails))
	}
	for _, email := range mockProvider.SentEmails {
		if !strings.Contains(email.Subject, "Staff Meeting") {
			t.Errorf("expected subject to contain title, got '%s'", email.Subject)
		}
		if !strings.Contains(email.Body, "main hall") {
			t.Error("expected body to contain announcement content")
		}
	}
}

func TestService_SendAnnouncement_PartialFailure(t *testing.T) {
	// Arrange
	mockProvider := &MockProvider{
		ShouldFail: true,
	}
	service := newTestService(mockProvider)
	service.loadTemplates()

	announcement := &domain.Announcement{Title: "Test", Content: "Test"}

	// Act
	err := service.SendAnnouncement(context.Background(), []string{"a@school.edu", "b@school.edu"}, announcement)

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "2 of 2") {
		t.Errorf("expected failure count in error, got '%s'", err.Error())
	}
}

func TestService_SendSubstitutionAlert_Success(t *testing.T) {
	// Arrange
	mockProvider := &MockProvider{}
	service := newTestService(mockProvider)
	service.loadTemplates()

	staff := &domain.StaffProfile{
		ID:    "staff-1",
		Name:  "Sarah Johnson",
		Email: "sarah.johnson@school.edu",
	}
	schedule := &domain.Schedule{
		ID:        "sched-1",
		ClassName: "Grade 10A",
		Subject:   "Mathematics",
		Day:       "Monday",
		Time:      "09:00",
		Room:      "201",
	}

	// Act
	err := service.SendSubstitutionAlert(context.Background(), staff, schedule)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mockProvider.SentEmails) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(mockProvider.SentEmails))
	}
	email := mockProvider.SentEmails[0]
	if !strings.Contains(email.Body, "Grade 10A") {
		t.Error("expected body to contain class name")
	}
	if !strings.Contains(email.Body, "Sarah Johnson") {
		t.Error("expected body to contain staff name")
	}
}
