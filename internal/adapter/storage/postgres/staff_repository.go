package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

type StaffRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStaffRepository(db *gorm.DB, log *zap.Logger) ports.StaffRepository {
	return &StaffRepository{
		db:  db,
		log: log,
	}
}

func (r *StaffRepository) Save(ctx context.Context, profile *domain.StaffProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *StaffRepository) FindByID(ctx context.Context, id string) (*domain.StaffProfile, error) {
	var profile domain.StaffProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*domain.StaffProfile, error) {
	var profile domain.StaffProfile
	err := r.db.WithContext(ctx).First(&profile, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *StaffRepository) FindAll(ctx context.Context) ([]domain.StaffProfile, error) {
	var profiles []domain.StaffProfile
	err := r.db.WithContext(ctx).Order("name").Find(&profiles).Error
	return profiles, err
}

func (r *StaffRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.StaffProfile{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
