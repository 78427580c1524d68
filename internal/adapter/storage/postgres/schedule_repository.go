package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

type ScheduleRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewScheduleRepository(db *gorm.DB, log *zap.Logger) ports.ScheduleRepository {
	return &ScheduleRepository{
		db:  db,
		log: log,
	}
}

func (r *ScheduleRepository) Save(ctx context.Context, schedule *domain.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*domain.Schedule, error) {
	var schedule domain.Schedule
	err := r.db.WithContext(ctx).First(&schedule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *ScheduleRepository) FindByStaff(ctx context.Context, staffID string) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("day, time").
		Find(&schedules).Error
	return schedules, err
}

func (r *ScheduleRepository) FindByStaffAndDay(ctx context.Context, staffID, day string) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND day = ?", staffID, day).
		Order("time").
		Find(&schedules).Error
	return schedules, err
}

func (r *ScheduleRepository) CountByStatus(ctx context.Context, staffID string, status domain.ScheduleStatus) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Schedule{}).
		Where("staff_id = ? AND status = ?", staffID, status).
		Count(&count).Error
	return int(count), err
}

func (r *ScheduleRepository) Count(ctx context.Context, staffID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Schedule{}).
		Where("staff_id = ?", staffID).
		Count(&count).Error
	return int(count), err
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Schedule{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
