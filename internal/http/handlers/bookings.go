package handlers

import (
	"net/http"

	"fastbus/internal/http/middleware"
	"fastbus/internal/services"

	"github.com/gin-gonic/gin"
)

type bookingRequest struct {
	ScheduleID  int64    `json:"schedule_id"`
	SeatNumbers []string `json:"seat_numbers"`
}

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{RequestID: middleware.GetRequestID(c)}
}

// POST /api/bookings — books seats for the authenticated user.
func CreateBooking(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	summary, err := bookingService(c).BookTickets(middleware.UserID(c), req.ScheduleID, req.SeatNumbers)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// GET /api/bookings/:id
func GetBookingSummary(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	summary, err := bookingService(c).GetBookingSummary(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/bookings/operator — bookings taken on the operator's buses.
func GetOperatorBookings(c *gin.Context) {
	bookings, err := bookingService(c).GetBookingsByOperator(middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id/eticket
func GetBookingETicket(c *gin.Context) {
	serveBookingPDF(c, func(svc services.DocsService, id int64) ([]byte, string, error) {
		return svc.GenerateETicket(id)
	})
}

// GET /api/bookings/:id/invoice
func GetBookingInvoice(c *gin.Context) {
	serveBookingPDF(c, func(svc services.DocsService, id int64) ([]byte, string, error) {
		return svc.GenerateInvoice(id)
	})
}

func serveBookingPDF(c *gin.Context, generate func(services.DocsService, int64) ([]byte, string, error)) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := generate(svc, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
