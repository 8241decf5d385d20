package handlers

import (
	"net/http"

	"fastbus/internal/http/middleware"
	"fastbus/internal/services"

	"github.com/gin-gonic/gin"
)

func scheduleService(c *gin.Context) services.ScheduleService {
	return services.ScheduleService{RequestID: middleware.GetRequestID(c)}
}

// POST /api/schedules (operator)
func CreateSchedule(c *gin.Context) {
	var in services.ScheduleInput
	if !BindJSONOrError(c, &in) {
		return
	}

	sched, err := scheduleService(c).CreateSchedule(middleware.UserID(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sched)
}

// PUT /api/schedules/:id (operator). Ownership failure and absence both
// answer 404 without distinguishing, per the catalog's soft contract.
func UpdateSchedule(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var in services.ScheduleInput
	if !BindJSONOrError(c, &in) {
		return
	}

	applied, err := scheduleService(c).UpdateSchedule(id, in, middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !applied {
		RespondError(c, http.StatusNotFound, "schedule not found or not owned", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DELETE /api/schedules/:id (operator)
func DeleteSchedule(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	applied, err := scheduleService(c).DeleteSchedule(id, middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !applied {
		RespondError(c, http.StatusNotFound, "schedule not found or not owned", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GET /api/schedules/operator (operator)
func GetOperatorSchedules(c *gin.Context) {
	schedules, err := scheduleService(c).GetSchedulesByOperator(middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// GET /api/schedules/:id/seats
func GetScheduleSeats(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	seats, err := services.SeatService{RequestID: middleware.GetRequestID(c)}.ListSeats(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, seats)
}
