package handler

import (
	"net/http"
	"strconv"

	"github.com/greensteps/greensteps-api/internal/repository"
	"github.com/greensteps/greensteps-api/internal/service"
	"github.com/greensteps/greensteps-api/pkg/response"
	"github.com/gin-gonic/gin"
)

const defaultLeaderboardLimit = 10

type LeaderboardHandler struct {
	leaderboardService service.LeaderboardService
	userRepo           repository.UserRepository
}

func NewLeaderboardHandler(leaderboardService service.LeaderboardService, userRepo repository.UserRepository) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
		userRepo:           userRepo,
	}
}

// DepartmentLeaderboard ranks the viewer's own department.
func (h *LeaderboardHandler) DepartmentLeaderboard(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), userID.String())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	limit := defaultLeaderboardLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	ranked, err := h.leaderboardService.DepartmentLeaderboard(c.Request.Context(), user.Department, userID, limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"department": user.Department,
		"data":       ranked,
	})
}

func (h *LeaderboardHandler) CampusLeaderboard(c *gin.Context) {
	ranked, err := h.leaderboardService.CampusLeaderboard(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ranked})
}
