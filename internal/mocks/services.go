package mocks

import (
	"context"
	"sync"

	"github.com/edustaff/staffhub/internal/domain"
)

// MockScheduleService is a mock implementation of ScheduleService
type MockScheduleService struct {
	CreateFunc       func(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	GetFunc          func(ctx context.Context, id string) (*domain.Schedule, error)
	ListByStaffFunc  func(ctx context.Context, staffID string) ([]domain.Schedule, error)
	ListByDayFunc    func(ctx context.Context, staffID, day string) ([]domain.Schedule, error)
	UpdateFunc       func(ctx context.Context, id string, update *domain.ScheduleUpdate) (*domain.Schedule, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.ScheduleStatus) (*domain.Schedule, error)
	DeleteFunc       func(ctx context.Context, id string) (bool, error)
	StatsFunc        func(ctx context.Context, staffID string) (*domain.ScheduleStats, error)
}

func (m *MockScheduleService) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, schedule)
	}
	return schedule, nil
}

func (m *MockScheduleService) Get(ctx context.Context, id string) (*domain.Schedule, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockScheduleService) ListByStaff(ctx context.Context, staffID string) ([]domain.Schedule, error) {
	if m.ListByStaffFunc != nil {
		return m.ListByStaffFunc(ctx, staffID)
	}
	return []domain.Schedule{}, nil
}

func (m *MockScheduleService) ListByDay(ctx context.Context, staffID, day string) ([]domain.Schedule, error) {
	if m.ListByDayFunc != nil {
		return m.ListByDayFunc(ctx, staffID, day)
	}
	return []domain.Schedule{}, nil
}

func (m *MockScheduleService) Update(ctx context.Context, id string, update *domain.ScheduleUpdate) (*domain.Schedule, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockScheduleService) UpdateStatus(ctx context.Context, id string, status domain.ScheduleStatus) (*domain.Schedule, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil, nil
}

func (m *MockScheduleService) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

func (m *MockScheduleService) Stats(ctx context.Context, staffID string) (*domain.ScheduleStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, staffID)
	}
	return &domain.ScheduleStats{}, nil
}

// MockAttendanceService is a mock implementation of AttendanceService
type MockAttendanceService struct {
	CreateFunc              func(ctx context.Context, record *domain.AttendanceRecord) (*domain.AttendanceRecord, error)
	GetFunc                 func(ctx context.Context, id string) (*domain.AttendanceRecord, error)
	ListByStaffFunc         func(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error)
	ListByDateFunc          func(ctx context.Context, staffID, date string) ([]domain.AttendanceRecord, error)
	UpdateFunc              func(ctx context.Context, id string, update *domain.AttendanceRecordUpdate) (*domain.AttendanceRecord, error)
	UpdateStudentStatusFunc func(ctx context.Context, recordID, studentID string, status domain.AttendanceStatus) (*domain.AttendanceRecord, error)
	DeleteFunc              func(ctx context.Context, id string) (bool, error)
	StatsFunc               func(ctx context.Context, staffID string) (*domain.AttendanceStats, error)
}

func (m *MockAttendanceService) Create(ctx context.Context, record *domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return record, nil
}

func (m *MockAttendanceService) Get(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAttendanceService) ListByStaff(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error) {
	if m.ListByStaffFunc != nil {
		return m.ListByStaffFunc(ctx, staffID)
	}
	return []domain.AttendanceRecord{}, nil
}

func (m *MockAttendanceService) ListByDate(ctx context.Context, staffID, date string) ([]domain.AttendanceRecord, error) {
	if m.ListByDateFunc != nil {
		return m.ListByDateFunc(ctx, staffID, date)
	}
	return []domain.AttendanceRecord{}, nil
}

func (m *MockAttendanceService) Update(ctx context.Context, id string, update *domain.AttendanceRecordUpdate) (*domain.AttendanceRecord, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockAttendanceService) UpdateStudentStatus(ctx context.Context, recordID, studentID string, status domain.AttendanceStatus) (*domain.AttendanceRecord, error) {
	if m.UpdateStudentStatusFunc != nil {
		return m.UpdateStudentStatusFunc(ctx, recordID, studentID, status)
	}
	return nil, nil
}

func (m *MockAttendanceService) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

func (m *MockAttendanceService) Stats(ctx context.Context, staffID string) (*domain.AttendanceStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, staffID)
	}
	return &domain.AttendanceStats{}, nil
}

// MockActivityLogger records activity descriptions for assertions.
type MockActivityLogger struct {
	mu      sync.Mutex
	Entries []string
}

func (m *MockActivityLogger) LogActivity(ctx context.Context, staffID, description string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, description)
}

// Logged returns the recorded activity descriptions.
func (m *MockActivityLogger) Logged() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Entries...)
}
