package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/adapter/http/fiber/handlers"
	"github.com/edustaff/staffhub/internal/adapter/http/fiber/middleware"
	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/mocks"
	"github.com/edustaff/staffhub/internal/service/auth"
	"github.com/edustaff/staffhub/internal/service/extraction"
	"github.com/edustaff/staffhub/internal/service/health"
	"github.com/edustaff/staffhub/internal/service/voice"
)

// setupTestApp builds a fiber app with the real auth and voice stacks
// wired to in-memory storage.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := zap.NewNop()

	// In-memory user store backing the repository mock.
	var mu sync.Mutex
	usersByEmail := make(map[string]*domain.User)
	usersByID := make(map[string]*domain.User)

	userRepo := &mocks.MockUserRepository{
		SaveFunc: func(ctx context.Context, user *domain.User) error {
			mu.Lock()
			defer mu.Unlock()
			copied := *user
			usersByEmail[user.Email] = &copied
			usersByID[user.ID] = &copied
			return nil
		},
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			mu.Lock()
			defer mu.Unlock()
			return usersByEmail[email], nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			mu.Lock()
			defer mu.Unlock()
			return usersByID[id], nil
		},
	}

	authService := auth.NewService(userRepo, mocks.NewMockCache(), "integration-test-secret", logger)

	messageQueue := mocks.NewMockMessageQueue()
	engine := extraction.NewEngine(logger)
	voiceService := voice.NewService(
		&mocks.MockTranscriptionRepository{},
		&mocks.MockConversionRepository{},
		engine,
		&mocks.MockActivityLogger{},
		messageQueue,
		logger,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
	})

	healthService := health.NewService(&health.Config{
		Version: "test",
		Cache:   mocks.NewMockCache(),
		Queue:   messageQueue,
	}, logger)
	health.NewFiberHandler(healthService).RegisterRoutes(app)

	authHandler := handlers.NewAuthHandler(authService, logger)
	voiceHandler := handlers.NewVoiceHandler(voiceService, logger)

	v1 := app.Group("/api/v1")
	v1.Post("/auth/register", authHandler.Register)
	v1.Post("/auth/login", authHandler.Login)
	v1.Post("/auth/refresh", authHandler.RefreshToken)

	protected := v1.Group("", middleware.AuthRequired(authService))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/voice/process-template", voiceHandler.ProcessTemplate)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path, token string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("Failed to decode response %s: %v", data, err)
	}
}

// getAuthToken registers a fresh user and returns its access token.
func getAuthToken(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp := postJSON(t, app, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Sarah Johnson",
		"email":    email,
		"password": "s3cret-pass",
		"role":     "teacher",
		"staff_id": "staff-1",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201 from register, got %d", resp.StatusCode)
	}

	var body struct {
		Tokens struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		} `json:"tokens"`
	}
	decodeBody(t, resp, &body)

	if body.Tokens.AccessToken == "" {
		t.Fatal("Register response is missing an access token")
	}
	return body.Tokens.AccessToken
}

func TestAPI_HealthEndpoints(t *testing.T) {
	app := setupTestApp(t)

	t.Run("Health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected 200, got %d", resp.StatusCode)
		}

		var body struct {
			Status string `json:"status"`
		}
		decodeBody(t, resp, &body)
		if body.Status != "healthy" {
			t.Errorf("Expected status 'healthy', got '%s'", body.Status)
		}
	})

	t.Run("Ready", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected 200, got %d", resp.StatusCode)
		}

		var body struct {
			Ready bool `json:"ready"`
		}
		decodeBody(t, resp, &body)
		if !body.Ready {
			t.Error("Expected readiness with in-memory dependencies")
		}
	})
}

func TestAPI_AuthFlow(t *testing.T) {
	app := setupTestApp(t)

	token := getAuthToken(t, app, "sarah.johnson@school.edu")

	t.Run("Me", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var user struct {
			Email   string `json:"email"`
			StaffID string `json:"staff_id"`
		}
		decodeBody(t, resp, &user)
		if user.Email != "sarah.johnson@school.edu" {
			t.Errorf("Expected registered email, got '%s'", user.Email)
		}
		if user.StaffID != "staff-1" {
			t.Errorf("Expected staff_id 'staff-1', got '%s'", user.StaffID)
		}
	})

	t.Run("Login", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/auth/login", "", map[string]string{
			"email":    "sarah.johnson@school.edu",
			"password": "s3cret-pass",
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var body struct {
			Tokens struct {
				AccessToken string `json:"accessToken"`
			} `json:"tokens"`
		}
		decodeBody(t, resp, &body)
		if body.Tokens.AccessToken == "" {
			t.Error("Expected an access token from login")
		}
	})

	t.Run("DuplicateRegister", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/auth/register", "", map[string]string{
			"name":     "Impostor",
			"email":    "sarah.johnson@school.edu",
			"password": "other-pass",
		})
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("Expected 409 on duplicate email, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	})

	t.Run("WrongPassword", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/auth/login", "", map[string]string{
			"email":    "sarah.johnson@school.edu",
			"password": "wrong-pass",
		})
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	})

	t.Run("MissingToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Expected 401 without a token, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	})
}

func TestAPI_VoiceProcessTemplate(t *testing.T) {
	app := setupTestApp(t)
	token := getAuthToken(t, app, "voice.tester@school.edu")

	t.Run("RequiresAuth", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/voice/process-template", "", map[string]string{
			"transcription": "I need a lesson plan",
			"staff_id":      "staff-1",
		})
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Expected 401 without a token, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	})

	t.Run("MatchedTranscript", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/voice/process-template", token, map[string]string{
			"transcription": "I need a lesson plan for calculus covering derivatives",
			"staff_id":      "staff-1",
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var result struct {
			TemplateMatch *struct {
				TemplateID   string `json:"template_id"`
				TemplateName string `json:"template_name"`
			} `json:"template_match"`
			ExtractedData map[string]string `json:"extracted_data"`
			Confidence    float64           `json:"confidence"`
		}
		decodeBody(t, resp, &result)

		if result.TemplateMatch == nil {
			t.Fatal("Expected a template match")
		}
		if result.TemplateMatch.TemplateID != "template_1" {
			t.Errorf("Expected template_1, got '%s'", result.TemplateMatch.TemplateID)
		}
		if result.Confidence != 0.85 {
			t.Errorf("Expected confidence 0.85, got %v", result.Confidence)
		}
		if result.ExtractedData["subject"] == "" {
			t.Error("Expected an extracted subject field")
		}
	})

	t.Run("UnmatchedTranscript", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/voice/process-template", token, map[string]string{
			"transcription": "the weather is nice and sunny",
			"staff_id":      "staff-1",
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var result struct {
			TemplateMatch *struct {
				TemplateID string `json:"template_id"`
			} `json:"template_match"`
			ExtractedData map[string]string `json:"extracted_data"`
			Confidence    float64           `json:"confidence"`
		}
		decodeBody(t, resp, &result)

		if result.TemplateMatch != nil {
			t.Errorf("Expected no template match, got '%s'", result.TemplateMatch.TemplateID)
		}
		if result.Confidence != 0 {
			t.Errorf("Expected zero confidence, got %v", result.Confidence)
		}
		if result.ExtractedData == nil || len(result.ExtractedData) != 0 {
			t.Errorf("Expected empty extracted data, got %v", result.ExtractedData)
		}
	})
}
