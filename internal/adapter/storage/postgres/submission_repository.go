package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

type SubmissionRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSubmissionRepository(db *gorm.DB, log *zap.Logger) ports.SubmissionRepository {
	return &SubmissionRepository{
		db:  db,
		log: log,
	}
}

func (r *SubmissionRepository) Save(ctx context.Context, submission *domain.FormSubmission) error {
	return r.db.WithContext(ctx).Save(submission).Error
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*domain.FormSubmission, error) {
	var submission domain.FormSubmission
	err := r.db.WithContext(ctx).First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *SubmissionRepository) FindByStaff(ctx context.Context, staffID string) ([]domain.FormSubmission, error) {
	var submissions []domain.FormSubmission
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.FormSubmission{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
