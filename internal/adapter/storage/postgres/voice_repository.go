package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

type TranscriptionRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTranscriptionRepository(db *gorm.DB, log *zap.Logger) ports.TranscriptionRepository {
	return &TranscriptionRepository{
		db:  db,
		log: log,
	}
}

func (r *TranscriptionRepository) Save(ctx context.Context, transcription *domain.VoiceTranscription) error {
	return r.db.WithContext(ctx).Save(transcription).Error
}

func (r *TranscriptionRepository) FindByID(ctx context.Context, id string) (*domain.VoiceTranscription, error) {
	var transcription domain.VoiceTranscription
	err := r.db.WithContext(ctx).First(&transcription, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transcription, nil
}

func (r *TranscriptionRepository) FindByStaff(ctx context.Context, staffID string) ([]domain.VoiceTranscription, error) {
	var transcriptions []domain.VoiceTranscription
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&transcriptions).Error
	return transcriptions, err
}

func (r *TranscriptionRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.VoiceTranscription{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type ConversionRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewConversionRepository(db *gorm.DB, log *zap.Logger) ports.ConversionRepository {
	return &ConversionRepository{
		db:  db,
		log: log,
	}
}

func (r *ConversionRepository) Save(ctx context.Context, conversion *domain.VoiceToTemplateConversion) error {
	return r.db.WithContext(ctx).Save(conversion).Error
}

func (r *ConversionRepository) FindByID(ctx context.Context, id string) (*domain.VoiceToTemplateConversion, error) {
	var conversion domain.VoiceToTemplateConversion
	err := r.db.WithContext(ctx).First(&conversion, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversion, nil
}

func (r *ConversionRepository) FindByStaff(ctx context.Context, staffID string) ([]domain.VoiceToTemplateConversion, error) {
	var conversions []domain.VoiceToTemplateConversion
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&conversions).Error
	return conversions, err
}

func (r *ConversionRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.VoiceToTemplateConversion{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
