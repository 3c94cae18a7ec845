package repository

import (
	"context"

	"github.com/greensteps/greensteps-api/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TravelRepository interface {
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*model.TravelLog, error)
	History(ctx context.Context, userID uuid.UUID, since string) ([]model.TravelLog, error)

	// CommitDailyLog persists an applied daily log in one transaction: the
	// adjusted user profile, the replaced entry for the day, and the
	// refreshed leaderboard projection. Callers must treat a returned error
	// as "nothing committed".
	CommitDailyLog(ctx context.Context, user *model.User, entry *model.TravelLog, board *model.LeaderboardEntry) error
}

type travelRepository struct {
	db *gorm.DB
}

func NewTravelRepository(db *gorm.DB) TravelRepository {
	return &travelRepository{db: db}
}

func (r *travelRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*model.TravelLog, error) {
	var entry model.TravelLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *travelRepository) History(ctx context.Context, userID uuid.UUID, since string) ([]model.TravelLog, error) {
	var entries []model.TravelLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date asc").
		Find(&entries).Error
	return entries, err
}

func (r *travelRepository) CommitDailyLog(ctx context.Context, user *model.User, entry *model.TravelLog, board *model.LeaderboardEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}

		// Replace today's entry wholesale on conflict.
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"mode", "distance_km", "trips", "emissions_kg", "points", "updated_at",
			}),
		}).Create(entry).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "department", "campus", "total_points", "daily_points", "last_updated_at",
			}),
		}).Create(board).Error; err != nil {
			return err
		}

		return nil
	})
}
