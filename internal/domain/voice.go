package domain

import (
	"time"

	"gorm.io/datatypes"
)

// VoiceTranscription is a block of text produced from spoken audio by an
// external speech-to-text collaborator; the server never processes audio.
type VoiceTranscription struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text"`
	Duration  int       `json:"duration"` // seconds
	StaffID   string    `json:"staff_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

// VoiceToTemplateConversion is an extraction result the staff member chose to
// keep, stored alongside the transcript it was derived from.
type VoiceToTemplateConversion struct {
	ID                    string            `json:"id" gorm:"primaryKey"`
	TemplateName          string            `json:"template_name"`
	OriginalTranscription string            `json:"original_transcription"`
	ExtractedData         datatypes.JSONMap `json:"extracted_data"`
	Status                FormStatus        `json:"status"`
	StaffID               string            `json:"staff_id" gorm:"index"`
	CreatedAt             time.Time         `json:"created_at"`
}
