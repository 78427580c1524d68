package staff

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

// ErrEmailTaken is returned when a profile create reuses an existing email.
var ErrEmailTaken = errors.New("staff member with this email already exists")

type Service struct {
	repo  ports.StaffRepository
	cache ports.Cache
	log   *zap.Logger
}

func NewService(repo ports.StaffRepository, cache ports.Cache, log *zap.Logger) ports.StaffService {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func (s *Service) CreateProfile(ctx context.Context, profile *domain.StaffProfile) (*domain.StaffProfile, error) {
	existing, err := s.repo.FindByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.log.Info("Created staff profile",
		zap.String("staff_id", profile.ID),
		zap.String("department", profile.Department),
	)
	return profile, nil
}

func (s *Service) GetProfile(ctx context.Context, id string) (*domain.StaffProfile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) GetProfileByEmail(ctx context.Context, email string) (*domain.StaffProfile, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *Service) ListProfiles(ctx context.Context) ([]domain.StaffProfile, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) UpdateProfile(ctx context.Context, id string, update *domain.StaffProfileUpdate) (*domain.StaffProfile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	if update.Name != nil {
		profile.Name = *update.Name
	}
	if update.Role != nil {
		profile.Role = *update.Role
	}
	if update.EmployeeID != nil {
		profile.EmployeeID = *update.EmployeeID
	}
	if update.Department != nil {
		profile.Department = *update.Department
	}
	if update.Subjects != nil {
		profile.Subjects = update.Subjects
	}
	if update.Email != nil {
		profile.Email = *update.Email
	}
	if update.Phone != nil {
		profile.Phone = *update.Phone
	}
	if update.JoinDate != nil {
		profile.JoinDate = *update.JoinDate
	}
	if update.Avatar != nil {
		profile.Avatar = *update.Avatar
	}
	profile.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Service) DeleteProfile(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
