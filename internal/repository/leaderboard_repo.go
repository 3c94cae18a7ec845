package repository

import (
	"context"

	"github.com/greensteps/greensteps-api/internal/model"
	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	All(ctx context.Context) ([]model.LeaderboardEntry, error)
	ByDepartment(ctx context.Context, department string) ([]model.LeaderboardEntry, error)
	ResetDaily(ctx context.Context) error
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) All(ctx context.Context) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := r.db.WithContext(ctx).
		Order("total_points DESC").
		Find(&entries).Error
	return entries, err
}

func (r *leaderboardRepository) ByDepartment(ctx context.Context, department string) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := r.db.WithContext(ctx).
		Where("department = ?", department).
		Order("total_points DESC").
		Find(&entries).Error
	return entries, err
}

func (r *leaderboardRepository) ResetDaily(ctx context.Context) error {
	return r.db.WithContext(ctx).Model(&model.LeaderboardEntry{}).
		Where("daily_points <> 0").
		Update("daily_points", 0).Error
}
