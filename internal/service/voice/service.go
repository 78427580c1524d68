package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/adapter/queue"
	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/observability/telemetry"
	"github.com/edustaff/staffhub/internal/ports"
	"github.com/edustaff/staffhub/internal/service/extraction"
)

// Service owns voice transcriptions, saved conversions, and the
// transcription-to-template pipeline. The extraction engine itself is pure;
// this layer adds persistence, activity logging, metrics, and events.
type Service struct {
	transcriptions ports.TranscriptionRepository
	conversions    ports.ConversionRepository
	engine         *extraction.Engine
	activities     ports.ActivityLogger
	mq             queue.MessageQueue
	log            *zap.Logger
}

func NewService(
	transcriptions ports.TranscriptionRepository,
	conversions ports.ConversionRepository,
	engine *extraction.Engine,
	activities ports.ActivityLogger,
	mq queue.MessageQueue,
	log *zap.Logger,
) ports.VoiceService {
	return &Service{
		transcriptions: transcriptions,
		conversions:    conversions,
		engine:         engine,
		activities:     activities,
		mq:             mq,
		log:            log,
	}
}

func (s *Service) CreateTranscription(ctx context.Context, transcription *domain.VoiceTranscription) (*domain.VoiceTranscription, error) {
	if transcription.ID == "" {
		transcription.ID = uuid.New().String()
	}
	transcription.CreatedAt = time.Now()

	if err := s.transcriptions.Save(ctx, transcription); err != nil {
		return nil, err
	}

	s.activities.LogActivity(ctx, transcription.StaffID,
		fmt.Sprintf("Created voice transcription (%ds)", transcription.Duration))
	return transcription, nil
}

func (s *Service) GetTranscription(ctx context.Context, id string) (*domain.VoiceTranscription, error) {
	return s.transcriptions.FindByID(ctx, id)
}

func (s *Service) ListTranscriptionsByStaff(ctx context.Context, staffID string) ([]domain.VoiceTranscription, error) {
	return s.transcriptions.FindByStaff(ctx, staffID)
}

func (s *Service) DeleteTranscription(ctx context.Context, id string) (bool, error) {
	return s.transcriptions.Delete(ctx, id)
}

// ProcessVoiceToTemplate runs the extraction engine over a transcript and
// logs the outcome as a dashboard activity. staffID only feeds the activity
// log and the published event, never the matching itself.
func (s *Service) ProcessVoiceToTemplate(ctx context.Context, transcription, staffID string) (*domain.ExtractionResult, error) {
	started := time.Now()
	result := s.engine.Process(transcription, staffID)
	telemetry.VoiceProcessingLatency.Observe(time.Since(started).Seconds())

	templateName := "none"
	if result.Matched() {
		templateName = result.TemplateMatch.TemplateName
	}
	telemetry.VoiceConversionsTotal.WithLabelValues(templateName, matchLabel(result.Matched())).Inc()

	s.activities.LogActivity(ctx, staffID,
		fmt.Sprintf("Processed voice to template with %.0f%% confidence", result.Confidence*100))

	s.publishProcessed(staffID, result)

	return result, nil
}

func (s *Service) CreateConversion(ctx context.Context, conversion *domain.VoiceToTemplateConversion) (*domain.VoiceToTemplateConversion, error) {
	if conversion.ID == "" {
		conversion.ID = uuid.New().String()
	}
	if conversion.Status == "" {
		conversion.Status = domain.FormStatusDraft
	}
	conversion.CreatedAt = time.Now()

	if err := s.conversions.Save(ctx, conversion); err != nil {
		return nil, err
	}

	s.activities.LogActivity(ctx, conversion.StaffID,
		fmt.Sprintf("Saved AI conversion for %s", conversion.TemplateName))
	return conversion, nil
}

func (s *Service) GetConversion(ctx context.Context, id string) (*domain.VoiceToTemplateConversion, error) {
	return s.conversions.FindByID(ctx, id)
}

func (s *Service) ListConversionsByStaff(ctx context.Context, staffID string) ([]domain.VoiceToTemplateConversion, error) {
	return s.conversions.FindByStaff(ctx, staffID)
}

func (s *Service) DeleteConversion(ctx context.Context, id string) (bool, error) {
	return s.conversions.Delete(ctx, id)
}

func (s *Service) publishProcessed(staffID string, result *domain.ExtractionResult) {
	event := struct {
		StaffID    string  `json:"staff_id"`
		Template   string  `json:"template,omitempty"`
		Confidence float64 `json:"confidence"`
	}{
		StaffID:    staffID,
		Confidence: result.Confidence,
	}
	if result.Matched() {
		event.Template = result.TemplateMatch.TemplateName
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.mq.Publish(queue.SubjectVoiceProcessed, data); err != nil {
		s.log.Warn("Failed to publish voice processed event", zap.Error(err))
	}
}

func matchLabel(matched bool) string {
	if matched {
		return "matched"
	}
	return "unmatched"
}
