package schedule

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/adapter/queue"
	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

type Service struct {
	repo ports.ScheduleRepository
	mq   queue.MessageQueue
	log  *zap.Logger
}

func NewService(repo ports.ScheduleRepository, mq queue.MessageQueue, log *zap.Logger) ports.ScheduleService {
	return &Service{
		repo: repo,
		mq:   mq,
		log:  log,
	}
}

func (s *Service) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	if schedule.Status == "" {
		schedule.Status = domain.ScheduleStatusScheduled
	}
	now := time.Now()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	if err := s.repo.Save(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Schedule, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListByStaff(ctx context.Context, staffID string) ([]domain.Schedule, error) {
	return s.repo.FindByStaff(ctx, staffID)
}

// ListByDay returns the staff member's slots for a weekday name ("Monday"),
// sorted by start time.
func (s *Service) ListByDay(ctx context.Context, staffID, day string) ([]domain.Schedule, error) {
	schedules, err := s.repo.FindByStaffAndDay(ctx, staffID, day)
	if err != nil {
		return nil, err
	}
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].Time < schedules[j].Time
	})
	return schedules, nil
}

func (s *Service) Update(ctx context.Context, id string, update *domain.ScheduleUpdate) (*domain.Schedule, error) {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}

	if update.Time != nil {
		schedule.Time = *update.Time
	}
	if update.Subject != nil {
		schedule.Subject = *update.Subject
	}
	if update.ClassName != nil {
		schedule.ClassName = *update.ClassName
	}
	if update.Room != nil {
		schedule.Room = *update.Room
	}
	if update.Day != nil {
		schedule.Day = *update.Day
	}
	if update.Status != nil {
		schedule.Status = *update.Status
	}
	schedule.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.ScheduleStatus) (*domain.Schedule, error) {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}

	schedule.Status = status
	schedule.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, schedule); err != nil {
		return nil, err
	}

	s.log.Info("Updated schedule status",
		zap.String("schedule_id", id),
		zap.String("status", string(status)),
	)
	s.publishUpdate(schedule)
	return schedule, nil
}

func (s *Service) publishUpdate(schedule *domain.Schedule) {
	payload, err := json.Marshal(schedule)
	if err != nil {
		return
	}
	if err := s.mq.Publish(queue.SubjectScheduleUpdated, payload); err != nil {
		s.log.Warn("Failed to publish schedule update",
			zap.String("schedule_id", schedule.ID),
			zap.Error(err),
		)
	}
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Stats(ctx context.Context, staffID string) (*domain.ScheduleStats, error) {
	total, err := s.repo.Count(ctx, staffID)
	if err != nil {
		return nil, err
	}

	stats := &domain.ScheduleStats{Total: total}
	counts := []struct {
		status domain.ScheduleStatus
		dest   *int
	}{
		{domain.ScheduleStatusScheduled, &stats.Scheduled},
		{domain.ScheduleStatusSubstitutionNeeded, &stats.SubstitutionNeeded},
		{domain.ScheduleStatusCancelled, &stats.Cancelled},
		{domain.ScheduleStatusCompleted, &stats.Completed},
	}
	for _, c := range counts {
		n, err := s.repo.CountByStatus(ctx, staffID, c.status)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}
	return stats, nil
}
