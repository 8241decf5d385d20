package handlers

import (
	"net/http"

	"fastbus/internal/http/middleware"
	"fastbus/internal/services"

	"github.com/gin-gonic/gin"
)

type paymentRequest struct {
	BookingID   int64 `json:"booking_id"`
	AmountCents int64 `json:"amount_cents"`
}

func paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{RequestID: middleware.GetRequestID(c)}
}

// POST /api/payments
func RecordPayment(c *gin.Context) {
	var req paymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	payment, err := paymentService(c).RecordPayment(req.BookingID, req.AmountCents)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// GET /api/payments/booking/:bookingId
func GetPaymentDetails(c *gin.Context) {
	bookingID, ok := PathID(c, "bookingId")
	if !ok {
		return
	}

	payment, err := paymentService(c).GetPaymentDetails(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
