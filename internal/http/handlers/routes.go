package handlers

import (
	"net/http"
	"strings"

	"fastbus/internal/domain/models"
	"fastbus/internal/repositories"

	"github.com/gin-gonic/gin"
)

type routeRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// GET /api/routes
func ListRoutes(c *gin.Context) {
	routes, err := repositories.RouteRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list routes", err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// POST /api/routes (operator)
func CreateRoute(c *gin.Context) {
	var req routeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		RespondError(c, http.StatusBadRequest, "origin and destination are required", nil)
		return
	}

	id, err := repositories.RouteRepository{}.Create(models.Route{
		Origin:      origin,
		Destination: destination,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save route", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
