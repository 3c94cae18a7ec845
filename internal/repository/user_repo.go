package repository

import (
	"context"

	"github.com/greensteps/greensteps-api/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	FindAll(ctx context.Context) ([]*model.User, error)
	Count(ctx context.Context) (int64, error)

	// ResetDailyCounters zeroes daily points/emissions and today's mode for
	// every user. Run by the nightly rollover agent.
	ResetDailyCounters(ctx context.Context) error

	// ResetStreaksBefore zeroes the streak of every user whose last logged
	// date is strictly before the given YYYY-MM-DD date.
	ResetStreaksBefore(ctx context.Context, date string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) ResetDailyCounters(ctx context.Context) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("daily_points <> 0 OR daily_emissions <> 0 OR today_mode IS NOT NULL").
		Updates(map[string]interface{}{
			"daily_points":    0,
			"daily_emissions": 0,
			"today_mode":      nil,
		}).Error
}

func (r *userRepository) ResetStreaksBefore(ctx context.Context, date string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("streak > 0 AND (last_log_date IS NULL OR last_log_date < ?)", date).
		Update("streak", 0).Error
}
