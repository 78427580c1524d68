package domain

import (
	"time"

	"gorm.io/datatypes"
)

type FormStatus string

const (
	FormStatusDraft     FormStatus = "draft"
	FormStatusSubmitted FormStatus = "submitted"
)

type FormSubmission struct {
	ID           string             `json:"id" gorm:"primaryKey"`
	TemplateName string             `json:"template_name"`
	TemplateID   string             `json:"template_id" gorm:"index"`
	Data         datatypes.JSONMap  `json:"data"`
	Status       FormStatus         `json:"status"`
	StaffID      string             `json:"staff_id" gorm:"index"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type FormSubmissionUpdate struct {
	Data   map[string]interface{} `json:"data"`
	Status *FormStatus            `json:"status"`
}
