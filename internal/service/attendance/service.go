package attendance

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

type Service struct {
	repo ports.AttendanceRepository
	log  *zap.Logger
}

func NewService(repo ports.AttendanceRepository, log *zap.Logger) ports.AttendanceService {
	return &Service{
		repo: repo,
		log:  log,
	}
}

func (s *Service) Create(ctx context.Context, record *domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	for i := range record.Students {
		if record.Students[i].ID == "" {
			record.Students[i].ID = uuid.New().String()
		}
		if record.Students[i].Status == "" {
			record.Students[i].Status = domain.AttendanceStatusPresent
		}
	}
	applyTotals(record)

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.log.Info("Created attendance record",
		zap.String("record_id", record.ID),
		zap.String("class", record.ClassName),
		zap.Int("students", record.TotalStudents),
	)
	return record, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListByStaff(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error) {
	return s.repo.FindByStaff(ctx, staffID)
}

func (s *Service) ListByDate(ctx context.Context, staffID, date string) ([]domain.AttendanceRecord, error) {
	return s.repo.FindByStaffAndDate(ctx, staffID, date)
}

func (s *Service) Update(ctx context.Context, id string, update *domain.AttendanceRecordUpdate) (*domain.AttendanceRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	if update.ClassName != nil {
		record.ClassName = *update.ClassName
	}
	if update.Date != nil {
		record.Date = *update.Date
	}
	if update.Students != nil {
		record.Students = update.Students
		applyTotals(record)
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) UpdateStudentStatus(ctx context.Context, recordID, studentID string, status domain.AttendanceStatus) (*domain.AttendanceRecord, error) {
	record, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	found := false
	for i := range record.Students {
		if record.Students[i].ID == studentID {
			record.Students[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return nil, nil
	}

	applyTotals(record)
	record.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Stats(ctx context.Context, staffID string) (*domain.AttendanceStats, error) {
	records, err := s.repo.FindByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	stats := &domain.AttendanceStats{TotalRecords: len(records)}
	for _, record := range records {
		stats.TotalStudentsTracked += record.TotalStudents
		stats.TotalPresent += record.Present
		stats.TotalAbsent += record.Absent
		stats.TotalLate += record.Late
	}
	if stats.TotalStudentsTracked > 0 {
		rate := float64(stats.TotalPresent) / float64(stats.TotalStudentsTracked) * 100
		stats.AttendanceRate = math.Round(rate*100) / 100
	}
	return stats, nil
}

// applyTotals recalculates the derived counters from the student list.
func applyTotals(record *domain.AttendanceRecord) {
	record.TotalStudents = len(record.Students)
	record.Present = 0
	record.Absent = 0
	record.Late = 0
	for _, student := range record.Students {
		switch student.Status {
		case domain.AttendanceStatusPresent:
			record.Present++
		case domain.AttendanceStatusAbsent:
			record.Absent++
		case domain.AttendanceStatusLate:
			record.Late++
		}
	}
}
