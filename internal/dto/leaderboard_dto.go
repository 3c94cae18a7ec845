package dto

// RankedUser is a single row of the department leaderboard.
// Rank is the 1-based position after sorting by total points descending.
type RankedUser struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	TotalPoints   int    `json:"total_points"`
	DailyPoints   int    `json:"daily_points"`
	IsCurrentUser bool   `json:"is_current_user"`
}

// RankedDepartment is a single row of the campus leaderboard: one
// department's summed total points and 1-based position.
type RankedDepartment struct {
	Rank        int    `json:"rank"`
	Department  string `json:"department"`
	TotalPoints int    `json:"total_points"`
}
