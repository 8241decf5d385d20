package handlers

import (
	"net/http"

	"fastbus/internal/http/middleware"
	"fastbus/internal/services"
	"fastbus/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/search?origin=Chennai&destination=Bangalore&date=2025-08-09
func SearchSchedules(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")

	travelDate, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD", err)
		return
	}

	results, err := services.SearchService{RequestID: middleware.GetRequestID(c)}.
		Search(origin, destination, travelDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
