package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/greensteps/greensteps-api/internal/dto"
	"github.com/greensteps/greensteps-api/internal/model"
	"github.com/greensteps/greensteps-api/internal/repository"
	"github.com/greensteps/greensteps-api/pkg/apperror"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Streak lengths that earn a notification.
const (
	StreakWeek  = 7
	StreakMonth = 30
)

// RecommendationInput is the context handed to the recommendation adapter
// after a day's log has been committed.
type RecommendationInput struct {
	Mode           string  `json:"transportMode"`
	DistanceKm     float64 `json:"distanceTraveled"`
	Trips          int     `json:"numberOfTrips"`
	DailyEmissions float64 `json:"dailyEmissions"`
	TotalPoints    int     `json:"totalPoints"`
	DailyPoints    int     `json:"dailyPoints"`
}

type TravelService interface {
	// LogTravel applies today's transport log for the user: computes
	// emissions/points, replaces any existing entry for today, and adjusts
	// the user's running totals by the diff. Nothing is applied unless the
	// commit succeeds.
	LogTravel(ctx context.Context, userID string, input dto.LogTravelInput) (*dto.TravelLogResponse, error)

	// Today returns today's entry, or nil when nothing is logged yet.
	Today(ctx context.Context, userID string) (*model.TravelLog, error)

	// History returns the last `days` calendar days of logged data, oldest
	// first, for the dashboard charts.
	History(ctx context.Context, userID string, days int) ([]dto.DailyData, error)

	// RecommendationContext assembles the adapter input from today's
	// committed log. Returns apperror.ErrNotFound when nothing is logged.
	RecommendationContext(ctx context.Context, userID string) (*RecommendationInput, error)
}

type travelService struct {
	travelRepo          repository.TravelRepository
	userRepo            repository.UserRepository
	notificationService NotificationService
	now                 func() time.Time
}

func NewTravelService(travelRepo repository.TravelRepository, userRepo repository.UserRepository, notificationService NotificationService) TravelService {
	return &travelService{
		travelRepo:          travelRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		now:                 time.Now,
	}
}

func (s *travelService) LogTravel(ctx context.Context, userID string, input dto.LogTravelInput) (*dto.TravelLogResponse, error) {
	mode := model.TransportMode(input.Mode)
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown transport mode %q", apperror.ErrInvalidInput, input.Mode)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	today := s.now().Format(dateLayout)

	existing, err := s.travelRepo.FindByUserAndDate(ctx, user.ID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	emissions, points := ComputeScore(mode, input.DistanceKm, input.Trips)
	entry := &model.TravelLog{
		UserID:      user.ID,
		Date:        today,
		Mode:        mode,
		DistanceKm:  input.DistanceKm,
		Trips:       input.Trips,
		EmissionsKg: emissions,
		Points:      points,
	}
	if existing != nil {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	}

	previousTotal := user.TotalPoints
	previousStreak := user.Streak

	applyDailyLog(user, existing, entry)

	board := &model.LeaderboardEntry{
		UserID:      user.ID,
		Name:        user.Name,
		Department:  user.Department,
		Campus:      user.Campus,
		TotalPoints: user.TotalPoints,
		DailyPoints: user.DailyPoints,
	}

	if err := s.travelRepo.CommitDailyLog(ctx, user, entry, board); err != nil {
		return nil, err
	}

	s.notifyProgress(user, previousTotal, previousStreak)

	return &dto.TravelLogResponse{
		Entry: entry,
		User:  user,
		Level: levelDTO(user.TotalPoints),
	}, nil
}

// applyDailyLog folds a (re)logged entry into the user's profile. Totals
// move by the diff between the new entry and the existing one for the same
// date, never by re-summing, so other days are untouched. Streak and
// last-log date advance only on the first log of a date; milestone
// kilometers are re-based when a day is re-logged.
func applyDailyLog(user *model.User, existing *model.TravelLog, entry *model.TravelLog) {
	var prevEmissions float64
	var prevPoints int
	if existing != nil {
		prevEmissions = existing.EmissionsKg
		prevPoints = existing.Points

		// Remove the old entry's milestone contribution before re-adding.
		km := existing.DistanceKm * float64(existing.Trips)
		switch existing.Mode {
		case model.ModeWalking:
			user.WalkedKm -= km
		case model.ModeBicycle:
			user.CycledKm -= km
		}
	}

	user.TotalPoints += entry.Points - prevPoints
	user.TotalEmissions = round2(user.TotalEmissions + entry.EmissionsKg - prevEmissions)
	user.DailyPoints = entry.Points
	user.DailyEmissions = entry.EmissionsKg

	modeStr := string(entry.Mode)
	user.TodayMode = &modeStr

	km := entry.DistanceKm * float64(entry.Trips)
	switch entry.Mode {
	case model.ModeWalking:
		user.WalkedKm = round2(user.WalkedKm + km)
	case model.ModeBicycle:
		user.CycledKm = round2(user.CycledKm + km)
	}

	if existing == nil {
		yesterday := mustPrevDate(entry.Date)
		if user.LastLogDate != nil && *user.LastLogDate == yesterday {
			user.Streak++
		} else {
			user.Streak = 1
		}
		date := entry.Date
		user.LastLogDate = &date
	}
}

func mustPrevDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(dateLayout)
}

// notifyProgress emits level-up and streak notifications in the background,
// mirroring how point awards surface to users. Failures only log.
func (s *travelService) notifyProgress(user *model.User, previousTotal, previousStreak int) {
	if s.notificationService == nil {
		return
	}

	previousLevel := GetLevelStatus(previousTotal).LevelName
	newLevel := GetLevelStatus(user.TotalPoints).LevelName
	userID := user.ID
	totalPoints := user.TotalPoints
	streak := user.Streak

	go func() {
		ctx := context.Background()

		if newLevel != previousLevel && totalPoints > previousTotal {
			n := &model.Notification{
				UserID:  userID,
				Type:    "level_up",
				Message: fmt.Sprintf("You reached %s with %d points. Keep it green!", newLevel, totalPoints),
			}
			if err := s.notificationService.CreateNotification(ctx, n); err != nil {
				log.Printf("failed to send level up notification to user %s: %v", userID, err)
			}
		}

		if streak != previousStreak && (streak == StreakWeek || streak == StreakMonth) {
			n := &model.Notification{
				UserID:  userID,
				Type:    "streak",
				Message: fmt.Sprintf("%d days logged in a row!", streak),
			}
			if err := s.notificationService.CreateNotification(ctx, n); err != nil {
				log.Printf("failed to send streak notification to user %s: %v", userID, err)
			}
		}
	}()
}

func (s *travelService) Today(ctx context.Context, userID string) (*model.TravelLog, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry, err := s.travelRepo.FindByUserAndDate(ctx, user.ID, s.now().Format(dateLayout))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return entry, nil
}

func (s *travelService) History(ctx context.Context, userID string, days int) ([]dto.DailyData, error) {
	if days <= 0 {
		days = 7
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -(days - 1)).Format(dateLayout)
	entries, err := s.travelRepo.History(ctx, user.ID, since)
	if err != nil {
		return nil, err
	}

	data := make([]dto.DailyData, 0, len(entries))
	for _, e := range entries {
		data = append(data, dto.DailyData{
			Date:      e.Date,
			Emissions: e.EmissionsKg,
			Points:    e.Points,
		})
	}

	return data, nil
}

func (s *travelService) RecommendationContext(ctx context.Context, userID string) (*RecommendationInput, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	entry, err := s.travelRepo.FindByUserAndDate(ctx, user.ID, s.now().Format(dateLayout))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no travel logged today", apperror.ErrNotFound)
		}
		return nil, err
	}

	return &RecommendationInput{
		Mode:           string(entry.Mode),
		DistanceKm:     entry.DistanceKm,
		Trips:          entry.Trips,
		DailyEmissions: entry.EmissionsKg,
		TotalPoints:    user.TotalPoints,
		DailyPoints:    user.DailyPoints,
	}, nil
}

func levelDTO(totalPoints int) dto.LevelStatus {
	status := GetLevelStatus(totalPoints)
	return dto.LevelStatus{
		LevelName:     status.LevelName,
		NextLevel:     status.NextLevel,
		CurrentPoints: status.CurrentPoints,
		TargetPoints:  status.TargetPoints,
		Progress:      status.Progress,
	}
}
