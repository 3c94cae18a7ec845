package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/greensteps/greensteps-api/internal/dto"
	"github.com/greensteps/greensteps-api/internal/model"
	"github.com/greensteps/greensteps-api/internal/repository"
	"github.com/greensteps/greensteps-api/pkg/apperror"
	"github.com/greensteps/greensteps-api/pkg/storage"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, input dto.UpdateProfileInput, avatar *dto.AvatarFile) (*dto.ProfileResponse, error)
}

type profileService struct {
	repo         repository.UserRepository
	imageStorage storage.ImageStorage
	search       SearchService
}

func NewProfileService(repo repository.UserRepository, imageStorage storage.ImageStorage, search SearchService) ProfileService {
	return &profileService{
		repo:         repo,
		imageStorage: imageStorage,
		search:       search,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return &dto.ProfileResponse{
		User:  user,
		Level: levelDTO(user.TotalPoints),
	}, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, input dto.UpdateProfileInput, avatar *dto.AvatarFile) (*dto.ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		if len(*input.Name) < 2 || len(*input.Name) > 100 {
			return nil, fmt.Errorf("%w: name must be 2-100 characters", apperror.ErrInvalidInput)
		}
		user.Name = *input.Name
	}

	if input.Password != nil && *input.Password != "" {
		if len(*input.Password) < 8 {
			return nil, fmt.Errorf("%w: password must be at least 8 characters", apperror.ErrInvalidInput)
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if input.DefaultMode != nil {
		if !model.TransportMode(*input.DefaultMode).Valid() {
			return nil, fmt.Errorf("%w: unknown transport mode %q", apperror.ErrInvalidInput, *input.DefaultMode)
		}
		user.DefaultMode = *input.DefaultMode
	}
	if input.DefaultDistanceKm != nil {
		if *input.DefaultDistanceKm < 0 {
			return nil, fmt.Errorf("%w: distance cannot be negative", apperror.ErrInvalidInput)
		}
		user.DefaultDistanceKm = *input.DefaultDistanceKm
	}
	if input.DefaultTrips != nil {
		if *input.DefaultTrips < 1 {
			return nil, fmt.Errorf("%w: trips must be at least 1", apperror.ErrInvalidInput)
		}
		user.DefaultTrips = *input.DefaultTrips
	}

	if avatar != nil && avatar.Reader != nil && s.imageStorage != nil {
		url, err := s.imageStorage.UploadImage(ctx, avatar.Reader, "avatars", avatar.FileName)
		if err != nil {
			return nil, err
		}
		user.AvatarURL = &url
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if s.search != nil {
		// Name changes must reach the member directory.
		if err := s.search.IndexUser(user); err != nil {
			log.Printf("failed to reindex user %s for search: %v", user.ID, err)
		}
	}

	return &dto.ProfileResponse{
		User:  user,
		Level: levelDTO(user.TotalPoints),
	}, nil
}
