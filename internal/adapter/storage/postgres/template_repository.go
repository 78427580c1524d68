package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

type TemplateRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTemplateRepository(db *gorm.DB, log *zap.Logger) ports.TemplateRepository {
	return &TemplateRepository{
		db:  db,
		log: log,
	}
}

func (r *TemplateRepository) Save(ctx context.Context, template *domain.Template) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*domain.Template, error) {
	var template domain.Template
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) FindAll(ctx context.Context) ([]domain.Template, error) {
	var templates []domain.Template
	err := r.db.WithContext(ctx).Order("name").Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) FindByCategory(ctx context.Context, category string) ([]domain.Template, error) {
	var templates []domain.Template
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name").
		Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Template{}).Count(&count).Error
	return int(count), err
}

func (r *TemplateRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Template{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
