package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

type AttendanceRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAttendanceRepository(db *gorm.DB, log *zap.Logger) ports.AttendanceRepository {
	return &AttendanceRepository{
		db:  db,
		log: log,
	}
}

func (r *AttendanceRepository) Save(ctx context.Context, record *domain.AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *AttendanceRepository) FindByID(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	var record domain.AttendanceRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *AttendanceRepository) FindByStaff(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error) {
	var records []domain.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) FindByStaffAndDate(ctx context.Context, staffID, date string) ([]domain.AttendanceRecord, error) {
	var records []domain.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND date = ?", staffID, date).
		Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.AttendanceRecord{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
