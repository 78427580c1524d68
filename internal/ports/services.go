package ports

import (
	"context"

	"github.com/edustaff/staffhub/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, error) // access, refresh, err
	Register(ctx context.Context, user *domain.User) error
	RefreshToken(ctx context.Context, token string) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}

type StaffService interface {
	CreateProfile(ctx context.Context, profile *domain.StaffProfile) (*domain.StaffProfile, error)
	GetProfile(ctx context.Context, id string) (*domain.StaffProfile, error)
	GetProfileByEmail(ctx context.Context, email string) (*domain.StaffProfile, error)
	ListProfiles(ctx context.Context) ([]domain.StaffProfile, error)
	UpdateProfile(ctx context.Context, id string, update *domain.StaffProfileUpdate) (*domain.StaffProfile, error)
	DeleteProfile(ctx context.Context, id string) (bool, error)
}

type ScheduleService interface {
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	Get(ctx context.Context, id string) (*domain.Schedule, error)
	ListByStaff(ctx context.Context, staffID string) ([]domain.Schedule, error)
	ListByDay(ctx context.Context, staffID, day string) ([]domain.Schedule, error)
	Update(ctx context.Context, id string, update *domain.ScheduleUpdate) (*domain.Schedule, error)
	UpdateStatus(ctx context.Context, id string, status domain.ScheduleStatus) (*domain.Schedule, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context, staffID string) (*domain.ScheduleStats, error)
}

type AttendanceService interface {
	Create(ctx context.Context, record *domain.AttendanceRecord) (*domain.AttendanceRecord, error)
	Get(ctx context.Context, id string) (*domain.AttendanceRecord, error)
	ListByStaff(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error)
	ListByDate(ctx context.Context, staffID, date string) ([]domain.AttendanceRecord, error)
	Update(ctx context.Context, id string, update *domain.AttendanceRecordUpdate) (*domain.AttendanceRecord, error)
	UpdateStudentStatus(ctx context.Context, recordID, studentID string, status domain.AttendanceStatus) (*domain.AttendanceRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context, staffID string) (*domain.AttendanceStats, error)
}

type TemplateService interface {
	Create(ctx context.Context, template *domain.Template) (*domain.Template, error)
	Get(ctx context.Context, id string) (*domain.Template, error)
	List(ctx context.Context) ([]domain.Template, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Template, error)
	Delete(ctx context.Context, id string) (bool, error)

	CreateSubmission(ctx context.Context, submission *domain.FormSubmission) (*domain.FormSubmission, error)
	GetSubmission(ctx context.Context, id string) (*domain.FormSubmission, error)
	ListSubmissionsByStaff(ctx context.Context, staffID string) ([]domain.FormSubmission, error)
	UpdateSubmission(ctx context.Context, id string, update *domain.FormSubmissionUpdate) (*domain.FormSubmission, error)
	DeleteSubmission(ctx context.Context, id string) (bool, error)
}

type VoiceService interface {
	CreateTranscription(ctx context.Context, transcription *domain.VoiceTranscription) (*domain.VoiceTranscription, error)
	GetTranscription(ctx context.Context, id string) (*domain.VoiceTranscription, error)
	ListTranscriptionsByStaff(ctx context.Context, staffID string) ([]domain.VoiceTranscription, error)
	DeleteTranscription(ctx context.Context, id string) (bool, error)

	// ProcessVoiceToTemplate runs the extraction engine over a transcript.
	// It is total: an unmatched transcript yields a zero-confidence result,
	// never an error.
	ProcessVoiceToTemplate(ctx context.Context, transcription, staffID string) (*domain.ExtractionResult, error)

	CreateConversion(ctx context.Context, conversion *domain.VoiceToTemplateConversion) (*domain.VoiceToTemplateConversion, error)
	GetConversion(ctx context.Context, id string) (*domain.VoiceToTemplateConversion, error)
	ListConversionsByStaff(ctx context.Context, staffID string) ([]domain.VoiceToTemplateConversion, error)
	DeleteConversion(ctx context.Context, id string) (bool, error)
}

type DashboardService interface {
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListTasksByStaff(ctx context.Context, staffID string) ([]domain.Task, error)
	CompleteTask(ctx context.Context, id string) (*domain.Task, error)

	CreateActivity(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	ListRecentActivities(ctx context.Context, staffID string, limit int) ([]domain.Activity, error)

	CreateAnnouncement(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error)
	ListRecentAnnouncements(ctx context.Context, limit int) ([]domain.Announcement, error)

	GetDashboardData(ctx context.Context, staffID string) (*domain.DashboardData, error)

	ActivityLogger
}

// ActivityLogger records a human-readable description of something a staff
// member just did. Callers treat logging failures as non-fatal.
type ActivityLogger interface {
	LogActivity(ctx context.Context, staffID, description string)
}
