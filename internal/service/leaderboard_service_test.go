package service

import (
	"testing"

	"github.com/greensteps/greensteps-api/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(name, department string, totalPoints int) model.LeaderboardEntry {
	return model.LeaderboardEntry{
		UserID:      uuid.New(),
		Name:        name,
		Department:  department,
		Campus:      "Main Campus",
		TotalPoints: totalPoints,
	}
}

func TestRankDepartmentOrdering(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("Alice", "Engineering", 100),
		entry("Bob", "Engineering", 300),
		entry("Carol", "Engineering", 200),
		entry("Dave", "Business", 900),
	}

	ranked := RankDepartment(entries, "Engineering", uuid.Nil, 10)
	require.Len(t, ranked, 3)

	assert.Equal(t, []string{"Bob", "Carol", "Alice"}, []string{ranked[0].Name, ranked[1].Name, ranked[2].Name})
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRankDepartmentTieBreaksByName(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("Zoe", "Medicine", 150),
		entry("Amir", "Medicine", 150),
		entry("Mila", "Medicine", 150),
	}

	ranked := RankDepartment(entries, "Medicine", uuid.Nil, 10)
	require.Len(t, ranked, 3)
	assert.Equal(t, "Amir", ranked[0].Name)
	assert.Equal(t, "Mila", ranked[1].Name)
	assert.Equal(t, "Zoe", ranked[2].Name)
}

func TestRankDepartmentLimit(t *testing.T) {
	var entries []model.LeaderboardEntry
	for i := 0; i < 15; i++ {
		entries = append(entries, entry("User", "Engineering", i*10))
	}

	ranked := RankDepartment(entries, "Engineering", uuid.Nil, 0)
	assert.Len(t, ranked, DefaultLeaderboardLimit)

	ranked = RankDepartment(entries, "Engineering", uuid.Nil, 3)
	require.Len(t, ranked, 3)
	assert.Equal(t, 140, ranked[0].TotalPoints)
}

func TestRankDepartmentFlagsViewer(t *testing.T) {
	viewer := entry("Alice", "Engineering", 50)
	entries := []model.LeaderboardEntry{
		entry("Bob", "Engineering", 100),
		viewer,
	}

	ranked := RankDepartment(entries, "Engineering", viewer.UserID, 10)
	require.Len(t, ranked, 2)
	assert.False(t, ranked[0].IsCurrentUser)
	assert.True(t, ranked[1].IsCurrentUser)
}

func TestRankDepartmentEmptyDepartment(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("Dave", "Business", 900),
	}

	ranked := RankDepartment(entries, "Engineering", uuid.Nil, 10)
	assert.Empty(t, ranked)
}

func TestRankCampusSumsAndOrders(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("Alice", "Engineering", 100),
		entry("Bob", "Engineering", 150),
		entry("Carol", "Business", 400),
		entry("Dana", "Medicine", 250),
	}

	ranked := RankCampus(entries)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Business", ranked[0].Department)
	assert.Equal(t, 400, ranked[0].TotalPoints)
	assert.Equal(t, 1, ranked[0].Rank)

	assert.Equal(t, "Engineering", ranked[1].Department)
	assert.Equal(t, 250, ranked[1].TotalPoints)

	assert.Equal(t, "Medicine", ranked[2].Department)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRankCampusTieBreaksByDepartmentName(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("A", "Medicine", 300),
		entry("B", "Business", 300),
	}

	ranked := RankCampus(entries)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Business", ranked[0].Department)
	assert.Equal(t, "Medicine", ranked[1].Department)
}
