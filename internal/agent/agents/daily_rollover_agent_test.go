package agents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/greensteps/greensteps-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rolloverUserRepo struct {
	countersReset    bool
	streakResetDate  string
	countersResetErr error
}

func (r *rolloverUserRepo) Create(_ context.Context, _ *model.User) error            { return nil }
func (r *rolloverUserRepo) FindByID(_ context.Context, _ string) (*model.User, error) {
	return nil, nil
}
func (r *rolloverUserRepo) FindByEmail(_ context.Context, _ string) (*model.User, error) {
	return nil, nil
}
func (r *rolloverUserRepo) Update(_ context.Context, _ *model.User) error    { return nil }
func (r *rolloverUserRepo) FindAll(_ context.Context) ([]*model.User, error) { return nil, nil }
func (r *rolloverUserRepo) Count(_ context.Context) (int64, error)           { return 0, nil }

func (r *rolloverUserRepo) ResetDailyCounters(_ context.Context) error {
	r.countersReset = true
	return r.countersResetErr
}

func (r *rolloverUserRepo) ResetStreaksBefore(_ context.Context, date string) error {
	r.streakResetDate = date
	return nil
}

type rolloverLeaderboardRepo struct {
	dailyReset bool
}

func (r *rolloverLeaderboardRepo) All(_ context.Context) ([]model.LeaderboardEntry, error) {
	return nil, nil
}
func (r *rolloverLeaderboardRepo) ByDepartment(_ context.Context, _ string) ([]model.LeaderboardEntry, error) {
	return nil, nil
}
func (r *rolloverLeaderboardRepo) ResetDaily(_ context.Context) error {
	r.dailyReset = true
	return nil
}

func TestDailyRolloverExecute(t *testing.T) {
	userRepo := &rolloverUserRepo{}
	boardRepo := &rolloverLeaderboardRepo{}
	agent := NewDailyRolloverAgent(userRepo, boardRepo)

	require.NoError(t, agent.Execute(context.Background()))

	assert.True(t, userRepo.countersReset)
	assert.True(t, boardRepo.dailyReset)

	wantDate := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	assert.Equal(t, wantDate, userRepo.streakResetDate)
}

func TestDailyRolloverStopsOnFirstFailure(t *testing.T) {
	userRepo := &rolloverUserRepo{countersResetErr: errors.New("db down")}
	boardRepo := &rolloverLeaderboardRepo{}
	agent := NewDailyRolloverAgent(userRepo, boardRepo)

	require.Error(t, agent.Execute(context.Background()))
	assert.False(t, boardRepo.dailyReset)
	assert.Empty(t, userRepo.streakResetDate)
}

func TestDailyRolloverSchedule(t *testing.T) {
	agent := NewDailyRolloverAgent(&rolloverUserRepo{}, &rolloverLeaderboardRepo{})
	assert.Equal(t, "daily-rollover", agent.GetName())
	assert.Equal(t, "5 0 * * *", agent.GetSchedule())
}
