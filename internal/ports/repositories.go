package ports

import (
	"context"

	"github.com/edustaff/staffhub/internal/domain"
)

// Repositories return (nil, nil) when the requested entity does not exist;
// "not found" is a normal outcome, not an error.

type StaffRepository interface {
	Save(ctx context.Context, profile *domain.StaffProfile) error
	FindByID(ctx context.Context, id string) (*domain.StaffProfile, error)
	FindByEmail(ctx context.Context, email string) (*domain.StaffProfile, error)
	FindAll(ctx context.Context) ([]domain.StaffProfile, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ScheduleRepository interface {
	Save(ctx context.Context, schedule *domain.Schedule) error
	FindByID(ctx context.Context, id string) (*domain.Schedule, error)
	FindByStaff(ctx context.Context, staffID string) ([]domain.Schedule, error)
	FindByStaffAndDay(ctx context.Context, staffID, day string) ([]domain.Schedule, error)
	CountByStatus(ctx context.Context, staffID string, status domain.ScheduleStatus) (int, error)
	Count(ctx context.Context, staffID string) (int, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type AttendanceRepository interface {
	Save(ctx context.Context, record *domain.AttendanceRecord) error
	FindByID(ctx context.Context, id string) (*domain.AttendanceRecord, error)
	FindByStaff(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error)
	FindByStaffAndDate(ctx context.Context, staffID, date string) ([]domain.AttendanceRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type TemplateRepository interface {
	Save(ctx context.Context, template *domain.Template) error
	FindByID(ctx context.Context, id string) (*domain.Template, error)
	FindAll(ctx context.Context) ([]domain.Template, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Template, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type SubmissionRepository interface {
	Save(ctx context.Context, submission *domain.FormSubmission) error
	FindByID(ctx context.Context, id string) (*domain.FormSubmission, error)
	FindByStaff(ctx context.Context, staffID string) ([]domain.FormSubmission, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type TranscriptionRepository interface {
	Save(ctx context.Context, transcription *domain.VoiceTranscription) error
	FindByID(ctx context.Context, id string) (*domain.VoiceTranscription, error)
	FindByStaff(ctx context.Context, staffID string) ([]domain.VoiceTranscription, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ConversionRepository interface {
	Save(ctx context.Context, conversion *domain.VoiceToTemplateConversion) error
	FindByID(ctx context.Context, id string) (*domain.VoiceToTemplateConversion, error)
	FindByStaff(ctx context.Context, staffID string) ([]domain.VoiceToTemplateConversion, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type TaskRepository interface {
	Save(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	FindByStaff(ctx context.Context, staffID string) ([]domain.Task, error)
	FindUpcoming(ctx context.Context, staffID, fromDate string, limit int) ([]domain.Task, error)
	CountCompleted(ctx context.Context, staffID string) (int, error)
}

type ActivityRepository interface {
	Save(ctx context.Context, activity *domain.Activity) error
	FindRecentByStaff(ctx context.Context, staffID string, limit int) ([]domain.Activity, error)
}

type AnnouncementRepository interface {
	Save(ctx context.Context, announcement *domain.Announcement) error
	FindRecent(ctx context.Context, limit int) ([]domain.Announcement, error)
	Count(ctx context.Context) (int, error)
}

type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
