package mocks

import (
	"context"

	"github.com/edustaff/staffhub/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	SaveFunc        func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

// MockStaffRepository is a mock implementation of StaffRepository
type MockStaffRepository struct {
	SaveFunc        func(ctx context.Context, profile *domain.StaffProfile) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.StaffProfile, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.StaffProfile, error)
	FindAllFunc     func(ctx context.Context) ([]domain.StaffProfile, error)
	DeleteFunc      func(ctx context.Context, id string) (bool, error)
}

func (m *MockStaffRepository) Save(ctx context.Context, profile *domain.StaffProfile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, profile)
	}
	return nil
}

func (m *MockStaffRepository) FindByID(ctx context.Context, id string) (*domain.StaffProfile, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStaffRepository) FindByEmail(ctx context.Context, email string) (*domain.StaffProfile, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockStaffRepository) FindAll(ctx context.Context) ([]domain.StaffProfile, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.StaffProfile{}, nil
}

func (m *MockStaffRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

// MockScheduleRepository is a mock implementation of ScheduleRepository
type MockScheduleRepository struct {
	SaveFunc              func(ctx context.Context, schedule *domain.Schedule) error
	FindByIDFunc          func(ctx context.Context, id string) (*domain.Schedule, error)
	FindByStaffFunc       func(ctx context.Context, staffID string) ([]domain.Schedule, error)
	FindByStaffAndDayFunc func(ctx context.Context, staffID, day string) ([]domain.Schedule, error)
	CountByStatusFunc     func(ctx context.Context, staffID string, status domain.ScheduleStatus) (int, error)
	CountFunc             func(ctx context.Context, staffID string) (int, error)
	DeleteFunc            func(ctx context.Context, id string) (bool, error)
}

func (m *MockScheduleRepository) Save(ctx context.Context, schedule *domain.Schedule) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, schedule)
	}
	return nil
}

func (m *MockScheduleRepository) FindByID(ctx context.Context, id string) (*domain.Schedule, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockScheduleRepository) FindByStaff(ctx context.Context, staffID string) ([]domain.Schedule, error) {
	if m.FindByStaffFunc != nil {
		return m.FindByStaffFunc(ctx, staffID)
	}
	return []domain.Schedule{}, nil
}

func (m *MockScheduleRepository) FindByStaffAndDay(ctx context.Context, staffID, day string) ([]domain.Schedule, error) {
	if m.FindByStaffAndDayFunc != nil {
		return m.FindByStaffAndDayFunc(ctx, staffID, day)
	}
	return []domain.Schedule{}, nil
}

func (m *MockScheduleRepository) CountByStatus(ctx context.Context, staffID string, status domain.ScheduleStatus) (int, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, staffID, status)
	}
	return 0, nil
}

func (m *MockScheduleRepository) Count(ctx context.Context, staffID string) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, staffID)
	}
	return 0, nil
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

// MockAttendanceRepository is a mock implementation of AttendanceRepository
type MockAttendanceRepository struct {
	SaveFunc               func(ctx context.Context, record *domain.AttendanceRecord) error
	FindByIDFunc           func(ctx context.Context, id string) (*domain.AttendanceRecord, error)
	FindByStaffFunc        func(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error)
	FindByStaffAndDateFunc func(ctx context.Context, staffID, date string) ([]domain.AttendanceRecord, error)
	DeleteFunc             func(ctx context.Context, id string) (bool, error)
}

func (m *MockAttendanceRepository) Save(ctx context.Context, record *domain.AttendanceRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return nil
}

func (m *MockAttendanceRepository) FindByID(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAttendanceRepository) FindByStaff(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error) {
	if m.FindByStaffFunc != nil {
		return m.FindByStaffFunc(ctx, staffID)
	}
	return []domain.AttendanceRecord{}, nil
}

func (m *MockAttendanceRepository) FindByStaffAndDate(ctx context.Context, staffID, date string) ([]domain.AttendanceRecord, error) {
	if m.FindByStaffAndDateFunc != nil {
		return m.FindByStaffAndDateFunc(ctx, staffID, date)
	}
	return []domain.AttendanceRecord{}, nil
}

func (m *MockAttendanceRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

// MockTemplateRepository is a mock implementation of TemplateRepository
type MockTemplateRepository struct {
	SaveFunc           func(ctx context.Context, template *domain.Template) error
	FindByIDFunc       func(ctx context.Context, id string) (*domain.Template, error)
	FindAllFunc        func(ctx context.Context) ([]domain.Template, error)
	FindByCategoryFunc func(ctx context.Context, category string) ([]domain.Template, error)
	CountFunc          func(ctx context.Context) (int, error)
	DeleteFunc         func(ctx context.Context, id string) (bool, error)
}

func (m *MockTemplateRepository) Save(ctx context.Context, template *domain.Template) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, template)
	}
	return nil
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, id string) (*domain.Template, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTemplateRepository) FindAll(ctx context.Context) ([]domain.Template, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Template{}, nil
}

func (m *MockTemplateRepository) FindByCategory(ctx context.Context, category string) ([]domain.Template, error) {
	if m.FindByCategoryFunc != nil {
		return m.FindByCategoryFunc(ctx, category)
	}
	return []domain.Template{}, nil
}

func (m *MockTemplateRepository) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockTemplateRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

// MockSubmissionRepository is a mock implementation of SubmissionRepository
type MockSubmissionRepository struct {
	SaveFunc        func(ctx context.Context, submission *domain.FormSubmission) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.FormSubmission, error)
	FindByStaffFunc func(ctx context.Context, staffID string) ([]domain.FormSubmission, error)
	DeleteFunc      func(ctx context.Context, id string) (bool, error)
}

func (m *MockSubmissionRepository) Save(ctx context.Context, submission *domain.FormSubmission) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, submission)
	}
	return nil
}

func (m *MockSubmissionRepository) FindByID(ctx context.Context, id string) (*domain.FormSubmission, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSubmissionRepository) FindByStaff(ctx context.Context, staffID string) ([]domain.FormSubmission, error) {
	if m.FindByStaffFunc != nil {
		return m.FindByStaffFunc(ctx, staffID)
	}
	return []domain.FormSubmission{}, nil
}

func (m *MockSubmissionRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

// MockTranscriptionRepository is a mock implementation of TranscriptionRepository
type MockTranscriptionRepository struct {
	SaveFunc        func(ctx context.Context, transcription *domain.VoiceTranscription) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.VoiceTranscription, error)
	FindByStaffFunc func(ctx context.Context, staffID string) ([]domain.VoiceTranscription, error)
	DeleteFunc      func(ctx context.Context, id string) (bool, error)
}

func (m *MockTranscriptionRepository) Save(ctx context.Context, transcription *domain.VoiceTranscription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, transcription)
	}
	return nil
}

func (m *MockTranscriptionRepository) FindByID(ctx context.Context, id string) (*domain.VoiceTranscription, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTranscriptionRepository) FindByStaff(ctx context.Context, staffID string) ([]domain.VoiceTranscription, error) {
	if m.FindByStaffFunc != nil {
		return m.FindByStaffFunc(ctx, staffID)
	}
	return []domain.VoiceTranscription{}, nil
}

func (m *MockTranscriptionRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

// MockConversionRepository is a mock implementation of ConversionRepository
type MockConversionRepository struct {
	SaveFunc        func(ctx context.Context, conversion *domain.VoiceToTemplateConversion) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.VoiceToTemplateConversion, error)
	FindByStaffFunc func(ctx context.Context, staffID string) ([]domain.VoiceToTemplateConversion, error)
	DeleteFunc      func(ctx context.Context, id string) (bool, error)
}

func (m *MockConversionRepository) Save(ctx context.Context, conversion *domain.VoiceToTemplateConversion) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, conversion)
	}
	return nil
}

func (m *MockConversionRepository) FindByID(ctx context.Context, id string) (*domain.VoiceToTemplateConversion, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockConversionRepository) FindByStaff(ctx context.Context, staffID string) ([]domain.VoiceToTemplateConversion, error) {
	if m.FindByStaffFunc != nil {
		return m.FindByStaffFunc(ctx, staffID)
	}
	return []domain.VoiceToTemplateConversion{}, nil
}

func (m *MockConversionRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	SaveFunc           func(ctx context.Context, task *domain.Task) error
	FindByIDFunc       func(ctx context.Context, id string) (*domain.Task, error)
	FindByStaffFunc    func(ctx context.Context, staffID string) ([]domain.Task, error)
	FindUpcomingFunc   func(ctx context.Context, staffID, fromDate string, limit int) ([]domain.Task, error)
	CountCompletedFunc func(ctx context.Context, staffID string) (int, error)
}

func (m *MockTaskRepository) Save(ctx context.Context, task *domain.Task) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByStaff(ctx context.Context, staffID string) ([]domain.Task, error) {
	if m.FindByStaffFunc != nil {
		return m.FindByStaffFunc(ctx, staffID)
	}
	return []domain.Task{}, nil
}

func (m *MockTaskRepository) FindUpcoming(ctx context.Context, staffID, fromDate string, limit int) ([]domain.Task, error) {
	if m.FindUpcomingFunc != nil {
		return m.FindUpcomingFunc(ctx, staffID, fromDate, limit)
	}
	return []domain.Task{}, nil
}

func (m *MockTaskRepository) CountCompleted(ctx context.Context, staffID string) (int, error) {
	if m.CountCompletedFunc != nil {
		return m.CountCompletedFunc(ctx, staffID)
	}
	return 0, nil
}

// MockActivityRepository is a mock implementation of ActivityRepository
type MockActivityRepository struct {
	SaveFunc              func(ctx context.Context, activity *domain.Activity) error
	FindRecentByStaffFunc func(ctx context.Context, staffID string, limit int) ([]domain.Activity, error)
}

func (m *MockActivityRepository) Save(ctx context.Context, activity *domain.Activity) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, activity)
	}
	return nil
}

func (m *MockActivityRepository) FindRecentByStaff(ctx context.Context, staffID string, limit int) ([]domain.Activity, error) {
	if m.FindRecentByStaffFunc != nil {
		return m.FindRecentByStaffFunc(ctx, staffID, limit)
	}
	return []domain.Activity{}, nil
}

// MockAnnouncementRepository is a mock implementation of AnnouncementRepository
type MockAnnouncementRepository struct {
	SaveFunc       func(ctx context.Context, announcement *domain.Announcement) error
	FindRecentFunc func(ctx context.Context, limit int) ([]domain.Announcement, error)
	CountFunc      func(ctx context.Context) (int, error)
}

func (m *MockAnnouncementRepository) Save(ctx context.Context, announcement *domain.Announcement) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, announcement)
	}
	return nil
}

func (m *MockAnnouncementRepository) FindRecent(ctx context.Context, limit int) ([]domain.Announcement, error) {
	if m.FindRecentFunc != nil {
		return m.FindRecentFunc(ctx, limit)
	}
	return []domain.Announcement{}, nil
}

func (m *MockAnnouncementRepository) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}
