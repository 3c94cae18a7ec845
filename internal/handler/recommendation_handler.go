package handler

import (
	"errors"
	"net/http"

	"github.com/greensteps/greensteps-api/internal/dto"
	"github.com/greensteps/greensteps-api/internal/service"
	"github.com/greensteps/greensteps-api/pkg/apperror"
	"github.com/greensteps/greensteps-api/pkg/response"
	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	travelService         service.TravelService
	recommendationService service.RecommendationService
}

func NewRecommendationHandler(travelService service.TravelService, recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		travelService:         travelService,
		recommendationService: recommendationService,
	}
}

// GetRecommendations produces AI eco tips for today's committed log. When
// nothing is logged yet the client gets a prompt to log first; generation
// failures are absorbed by the service and still return a usable tip.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	input, err := h.travelService.RecommendationContext(c.Request.Context(), userID.String())
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			c.JSON(http.StatusOK, dto.RecommendationsResponse{
				Recommendations: []string{"Update your daily travel to get new suggestions."},
			})
			return
		}
		response.ResponseError(c, err)
		return
	}

	recs := h.recommendationService.GetRecommendations(c.Request.Context(), *input)
	c.JSON(http.StatusOK, dto.RecommendationsResponse{Recommendations: recs})
}
