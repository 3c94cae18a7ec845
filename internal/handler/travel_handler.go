package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/greensteps/greensteps-api/internal/dto"
	"github.com/greensteps/greensteps-api/internal/service"
	"github.com/greensteps/greensteps-api/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Guard against accidental double submits of the travel form.
const travelLogRateLimit = 3 * time.Second

type TravelHandler struct {
	travelService service.TravelService
	redisClient   *redis.Client
}

func NewTravelHandler(travelService service.TravelService, redisClient *redis.Client) *TravelHandler {
	return &TravelHandler{
		travelService: travelService,
		redisClient:   redisClient,
	}
}

func (h *TravelHandler) LogTravel(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.LogTravelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	allowed, err := service.CheckAndSetRateLimit(c.Request.Context(), h.redisClient, userID, "travel_log", travelLogRateLimit)
	if err == nil && !allowed {
		ttl, _ := service.GetRateLimitTTL(c.Request.Context(), h.redisClient, userID, "travel_log")
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":       "you are logging too fast, please wait",
			"retry_after": int(ttl.Seconds()),
		})
		return
	}

	res, err := h.travelService.LogTravel(c.Request.Context(), userID.String(), input)
	if err != nil {
		// A failed commit should not leave the user locked out of retrying.
		_ = service.ClearRateLimit(c.Request.Context(), h.redisClient, userID, "travel_log")
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *TravelHandler) Today(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	entry, err := h.travelService.Today(c.Request.Context(), userID.String())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (h *TravelHandler) History(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	days := 7
	if daysStr := c.Query("days"); daysStr != "" {
		if parsed, err := strconv.Atoi(daysStr); err == nil && parsed > 0 && parsed <= 365 {
			days = parsed
		}
	}

	data, err := h.travelService.History(c.Request.Context(), userID.String(), days)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}
