package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

type TaskRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTaskRepository(db *gorm.DB, log *zap.Logger) ports.TaskRepository {
	return &TaskRepository{
		db:  db,
		log: log,
	}
}

func (r *TaskRepository) Save(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindByStaff(ctx context.Context, staffID string) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("due_date").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindUpcoming(ctx context.Context, staffID, fromDate string, limit int) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND completed = ? AND due_date >= ?", staffID, false, fromDate).
		Order("due_date").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) CountCompleted(ctx context.Context, staffID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("staff_id = ? AND completed = ?", staffID, true).
		Count(&count).Error
	return int(count), err
}

type ActivityRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewActivityRepository(db *gorm.DB, log *zap.Logger) ports.ActivityRepository {
	return &ActivityRepository{
		db:  db,
		log: log,
	}
}

func (r *ActivityRepository) Save(ctx context.Context, activity *domain.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *ActivityRepository) FindRecentByStaff(ctx context.Context, staffID string, limit int) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

type AnnouncementRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAnnouncementRepository(db *gorm.DB, log *zap.Logger) ports.AnnouncementRepository {
	return &AnnouncementRepository{
		db:  db,
		log: log,
	}
}

func (r *AnnouncementRepository) Save(ctx context.Context, announcement *domain.Announcement) error {
	return r.db.WithContext(ctx).Save(announcement).Error
}

func (r *AnnouncementRepository) FindRecent(ctx context.Context, limit int) ([]domain.Announcement, error) {
	var announcements []domain.Announcement
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&announcements).Error
	return announcements, err
}

func (r *AnnouncementRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Announcement{}).Count(&count).Error
	return int(count), err
}
