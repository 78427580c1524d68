package domain

import (
	"time"

	"gorm.io/datatypes"
)

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeSelect   FieldType = "select"
	FieldTypeDate     FieldType = "date"
	FieldTypeTime     FieldType = "time"
)

// TemplateField defines the contract a form field must satisfy. Options is
// populated only for select fields. Fields are immutable once defined on a
// template.
type TemplateField struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// Template is a named, categorized form definition consisting of an ordered
// list of typed fields.
type Template struct {
	ID        string                             `json:"id" gorm:"primaryKey"`
	Name      string                             `json:"name"`
	Category  string                             `json:"category" gorm:"index"`
	Fields    datatypes.JSONSlice[TemplateField] `json:"fields"`
	CreatedAt time.Time                          `json:"created_at"`
	UpdatedAt time.Time                          `json:"updated_at"`
}
