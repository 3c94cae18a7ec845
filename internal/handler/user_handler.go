package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/greensteps/greensteps-api/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	searchService service.SearchService
}

func NewUserHandler(searchService service.SearchService) *UserHandler {
	return &UserHandler{searchService: searchService}
}

// SearchUsers looks members up by name in the search index.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 50 {
			limit = parsed
		}
	}

	hits, err := h.searchService.SearchUsers(query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search is temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": hits})
}
