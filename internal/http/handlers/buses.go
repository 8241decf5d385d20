package handlers

import (
	"net/http"
	"strings"

	"fastbus/internal/domain/models"
	"fastbus/internal/http/middleware"
	"fastbus/internal/repositories"

	"github.com/gin-gonic/gin"
)

type busRequest struct {
	BusName   string `json:"bus_name"`
	BusNumber string `json:"bus_number"`
	BusType   string `json:"bus_type"`
	SeatCount int    `json:"seat_count"`
}

func (r busRequest) validate() string {
	switch {
	case strings.TrimSpace(r.BusName) == "":
		return "bus_name is required"
	case strings.TrimSpace(r.BusNumber) == "":
		return "bus_number is required"
	case r.SeatCount <= 0:
		return "seat_count must be positive"
	default:
		return ""
	}
}

// GET /api/buses
func ListBuses(c *gin.Context) {
	buses, err := repositories.BusRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list buses", err)
		return
	}
	c.JSON(http.StatusOK, buses)
}

// GET /api/buses/:id
func GetBus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	bus, err := repositories.BusRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// POST /api/buses (operator)
func CreateBus(c *gin.Context) {
	var req busRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		RespondError(c, http.StatusBadRequest, msg, nil)
		return
	}

	id, err := repositories.BusRepository{}.Create(models.Bus{
		OperatorID: middleware.UserID(c),
		BusName:    strings.TrimSpace(req.BusName),
		BusNumber:  strings.TrimSpace(req.BusNumber),
		BusType:    strings.TrimSpace(req.BusType),
		SeatCount:  req.SeatCount,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save bus", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/buses/:id (operator; scoped to owner)
func UpdateBus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req busRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		RespondError(c, http.StatusBadRequest, msg, nil)
		return
	}

	err := repositories.BusRepository{}.Update(models.Bus{
		ID:         id,
		OperatorID: middleware.UserID(c),
		BusName:    strings.TrimSpace(req.BusName),
		BusNumber:  strings.TrimSpace(req.BusNumber),
		BusType:    strings.TrimSpace(req.BusType),
		SeatCount:  req.SeatCount,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update bus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DELETE /api/buses/:id (operator; scoped to owner)
func DeleteBus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	deleted, err := repositories.BusRepository{}.Delete(id, middleware.UserID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete bus", err)
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, "bus not found or not owned", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
