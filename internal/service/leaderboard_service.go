package service

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/greensteps/greensteps-api/internal/dto"
	"github.com/greensteps/greensteps-api/internal/model"
	"github.com/greensteps/greensteps-api/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultLeaderboardLimit = 10

	leaderboardCacheTTL = 30 * time.Second
)

type LeaderboardService interface {
	// DepartmentLeaderboard returns the top users of the viewer's
	// department, ranked by total points, with the viewer flagged.
	DepartmentLeaderboard(ctx context.Context, department string, viewerID uuid.UUID, limit int) ([]dto.RankedUser, error)

	// CampusLeaderboard ranks every department by its summed total points.
	CampusLeaderboard(ctx context.Context) ([]dto.RankedDepartment, error)
}

type leaderboardService struct {
	repo        repository.LeaderboardRepository
	redisClient *redis.Client
}

func NewLeaderboardService(repo repository.LeaderboardRepository, redisClient *redis.Client) LeaderboardService {
	return &leaderboardService{
		repo:        repo,
		redisClient: redisClient,
	}
}

// RankDepartment derives the ranked department view from flat leaderboard
// rows: filter to the department, sort by total points descending (ties by
// name, then user ID, so output is reproducible), take the top limit, and
// assign 1-based ranks. The viewer's own row is flagged.
func RankDepartment(entries []model.LeaderboardEntry, department string, viewerID uuid.UUID, limit int) []dto.RankedUser {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	filtered := make([]model.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if e.Department == department {
			filtered = append(filtered, e)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].TotalPoints != filtered[j].TotalPoints {
			return filtered[i].TotalPoints > filtered[j].TotalPoints
		}
		if filtered[i].Name != filtered[j].Name {
			return filtered[i].Name < filtered[j].Name
		}
		return filtered[i].UserID.String() < filtered[j].UserID.String()
	})

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	ranked := make([]dto.RankedUser, 0, len(filtered))
	for i, e := range filtered {
		ranked = append(ranked, dto.RankedUser{
			Rank:          i + 1,
			Name:          e.Name,
			TotalPoints:   e.TotalPoints,
			DailyPoints:   e.DailyPoints,
			IsCurrentUser: e.UserID == viewerID,
		})
	}

	return ranked
}

// RankCampus groups leaderboard rows by department, sums total points per
// department, and ranks departments descending (ties by name). Every
// department is returned; no limit applies.
func RankCampus(entries []model.LeaderboardEntry) []dto.RankedDepartment {
	totals := make(map[string]int)
	for _, e := range entries {
		totals[e.Department] += e.TotalPoints
	}

	departments := make([]string, 0, len(totals))
	for dept := range totals {
		departments = append(departments, dept)
	}

	sort.Slice(departments, func(i, j int) bool {
		if totals[departments[i]] != totals[departments[j]] {
			return totals[departments[i]] > totals[departments[j]]
		}
		return departments[i] < departments[j]
	})

	ranked := make([]dto.RankedDepartment, 0, len(departments))
	for i, dept := range departments {
		ranked = append(ranked, dto.RankedDepartment{
			Rank:        i + 1,
			Department:  dept,
			TotalPoints: totals[dept],
		})
	}

	return ranked
}

func (s *leaderboardService) DepartmentLeaderboard(ctx context.Context, department string, viewerID uuid.UUID, limit int) ([]dto.RankedUser, error) {
	entries, err := s.repo.ByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}

	return RankDepartment(entries, department, viewerID, limit), nil
}

func (s *leaderboardService) CampusLeaderboard(ctx context.Context) ([]dto.RankedDepartment, error) {
	// The campus view is identical for everyone, so a short redis cache
	// absorbs the dashboard read load. Leaderboard reads are eventually
	// consistent; a 30s stale view is acceptable.
	cacheKey := "leaderboard:campus"

	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var ranked []dto.RankedDepartment
			if err := json.Unmarshal([]byte(cached), &ranked); err == nil {
				return ranked, nil
			}
		}
	}

	entries, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	ranked := RankCampus(entries)

	if s.redisClient != nil {
		if payload, err := json.Marshal(ranked); err == nil {
			if err := s.redisClient.Set(ctx, cacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
				// Cache failures never break the read path.
				log.Printf("failed to cache campus leaderboard: %v", err)
			}
		}
	}

	return ranked, nil
}
