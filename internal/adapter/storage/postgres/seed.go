package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/edustaff/staffhub/internal/domain"
)

// Seed inserts the default templates and announcements if the tables are
// empty. It is safe to run on every startup.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	var templateCount int64
	if err := db.WithContext(ctx).Model(&domain.Template{}).Count(&templateCount).Error; err != nil {
		return err
	}

	if templateCount == 0 {
		if err := db.WithContext(ctx).Create(defaultTemplates()).Error; err != nil {
			return err
		}
		log.Info("Default templates inserted", zap.Int("count", len(defaultTemplates())))
	}

	var announcementCount int64
	if err := db.WithContext(ctx).Model(&domain.Announcement{}).Count(&announcementCount).Error; err != nil {
		return err
	}

	if announcementCount == 0 {
		if err := db.WithContext(ctx).Create(defaultAnnouncements()).Error; err != nil {
			return err
		}
		log.Info("Default announcements inserted", zap.Int("count", len(defaultAnnouncements())))
	}

	return nil
}

func defaultTemplates() []domain.Template {
	return []domain.Template{
		{
			ID:       "template_1",
			Name:     "Lesson Plan Template",
			Category: "Academic",
			Fields: datatypes.NewJSONSlice([]domain.TemplateField{
				{Name: "subject", Label: "Subject", Type: domain.FieldTypeText, Required: true},
				{Name: "grade", Label: "Grade Level", Type: domain.FieldTypeSelect, Required: true, Options: []string{"Grade 9", "Grade 10", "Grade 11", "Grade 12"}},
				{Name: "topic", Label: "Lesson Topic", Type: domain.FieldTypeText, Required: true},
				{Name: "objectives", Label: "Learning Objectives", Type: domain.FieldTypeTextarea, Required: true},
				{Name: "duration", Label: "Duration (minutes)", Type: domain.FieldTypeNumber, Required: true},
				{Name: "materials", Label: "Required Materials", Type: domain.FieldTypeTextarea, Required: false},
				{Name: "activities", Label: "Learning Activities", Type: domain.FieldTypeTextarea, Required: true},
				{Name: "assessment", Label: "Assessment Method", Type: domain.FieldTypeTextarea, Required: true},
			}),
		},
		{
			ID:       "template_2",
			Name:     "Student Progress Report",
			Category: "Assessment",
			Fields: datatypes.NewJSONSlice([]domain.TemplateField{
				{Name: "studentName", Label: "Student Name", Type: domain.FieldTypeText, Required: true},
				{Name: "studentId", Label: "Student ID", Type: domain.FieldTypeText, Required: true},
				{Name: "subject", Label: "Subject", Type: domain.FieldTypeText, Required: true},
				{Name: "period", Label: "Reporting Period", Type: domain.FieldTypeSelect, Required: true, Options: []string{"Quarter 1", "Quarter 2", "Quarter 3", "Quarter 4"}},
				{Name: "grade", Label: "Current Grade", Type: domain.FieldTypeSelect, Required: true, Options: []string{"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D", "F"}},
				{Name: "strengths", Label: "Student Strengths", Type: domain.FieldTypeTextarea, Required: true},
				{Name: "improvements", Label: "Areas for Improvement", Type: domain.FieldTypeTextarea, Required: true},
				{Name: "recommendations", Label: "Recommendations", Type: domain.FieldTypeTextarea, Required: true},
			}),
		},
		{
			ID:       "template_3",
			Name:     "Meeting Minutes Template",
			Category: "Administrative",
			Fields: datatypes.NewJSONSlice([]domain.TemplateField{
				{Name: "meetingTitle", Label: "Meeting Title", Type: domain.FieldTypeText, Required: true},
				{Name: "date", Label: "Date", Type: domain.FieldTypeDate, Required: true},
				{Name: "time", Label: "Time", Type: domain.FieldTypeTime, Required: true},
				{Name: "attendees", Label: "Attendees", Type: domain.FieldTypeTextarea, Required: true},
				{Name: "agenda", Label: "Agenda Items", Type: domain.FieldTypeTextarea, Required: true},
				{Name: "discussions", Label: "Key Discussions", Type: domain.FieldTypeTextarea, Required: true},
				{Name: "decisions", Label: "Decisions Made", Type: domain.FieldTypeTextarea, Required: true},
				{Name: "actionItems", Label: "Action Items", Type: domain.FieldTypeTextarea, Required: true},
			}),
		},
	}
}

func defaultAnnouncements() []domain.Announcement {
	return []domain.Announcement{
		{
			ID:      "announcement_1",
			Title:   "Staff Meeting",
			Content: "Monthly staff meeting scheduled for Friday at 3:00 PM",
			Date:    "2025-01-15",
		},
		{
			ID:      "announcement_2",
			Title:   "New Grading System",
			Content: "Please familiarize yourself with the updated grading guidelines",
			Date:    "2025-01-14",
		},
	}
}
