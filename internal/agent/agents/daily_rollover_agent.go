package agents

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/greensteps/greensteps-api/internal/repository"
)

// DailyRolloverAgent closes out the previous day shortly after midnight:
// daily counters go back to zero and streaks of users who skipped
// yesterday are broken. Running totals are untouched.
type DailyRolloverAgent struct {
	userRepo        repository.UserRepository
	leaderboardRepo repository.LeaderboardRepository
}

func NewDailyRolloverAgent(userRepo repository.UserRepository, leaderboardRepo repository.LeaderboardRepository) *DailyRolloverAgent {
	return &DailyRolloverAgent{
		userRepo:        userRepo,
		leaderboardRepo: leaderboardRepo,
	}
}

func (a *DailyRolloverAgent) GetName() string {
	return "daily-rollover"
}

func (a *DailyRolloverAgent) GetSchedule() string {
	// 00:05 every day, leaving a small buffer past midnight for clock skew.
	return "5 0 * * *"
}

func (a *DailyRolloverAgent) Execute(ctx context.Context) error {
	if err := a.userRepo.ResetDailyCounters(ctx); err != nil {
		return fmt.Errorf("reset daily counters: %w", err)
	}

	if err := a.leaderboardRepo.ResetDaily(ctx); err != nil {
		return fmt.Errorf("reset leaderboard daily points: %w", err)
	}

	// A streak survives the rollover only if the user logged yesterday.
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	if err := a.userRepo.ResetStreaksBefore(ctx, yesterday); err != nil {
		return fmt.Errorf("reset lapsed streaks: %w", err)
	}

	log.Println("Daily rollover complete")
	return nil
}
