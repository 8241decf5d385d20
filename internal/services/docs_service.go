package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"fastbus/internal/repositories"
	"fastbus/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking e-tickets and invoices as PDFs.
type DocsService struct {
	BookingRepo  repositories.BookingRepository
	ScheduleRepo repositories.ScheduleRepository
	UserRepo     repositories.UserRepository
	RequestID    string
	Loader       func(int64) (bookingDocData, error)
}

type bookingDocData struct {
	BookingID     int64
	PassengerName string
	BusName       string
	BusType       string
	Route         string
	DepartureTime string
	ArrivalTime   string
	SeatNumbers   []string
	TotalCents    int64
}

func (s DocsService) GenerateETicket(bookingID int64) ([]byte, string, error) {
	data, err := s.loadBookingDocData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(data)
}

func (s DocsService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	data, err := s.loadBookingDocData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(data)
}

func (s DocsService) loadBookingDocData(bookingID int64) (bookingDocData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return bookingDocData{}, err
	}
	detail, err := s.ScheduleRepo.GetDetail(nil, booking.ScheduleID)
	if err != nil {
		return bookingDocData{}, err
	}

	out := bookingDocData{
		BookingID:     booking.ID,
		BusName:       detail.BusName,
		BusType:       detail.BusType,
		Route:         detail.RouteDescription(),
		DepartureTime: utils.FormatShortDateTime(detail.DepartureTime),
		ArrivalTime:   utils.FormatShortDateTime(detail.ArrivalTime),
		SeatNumbers:   booking.SeatNumbers,
		TotalCents:    booking.TotalCents,
	}
	if user, err := s.UserRepo.GetByID(booking.UserID); err == nil {
		out.PassengerName = user.FullName
	}
	return out, nil
}

func buildETicketPDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger   : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Bus         : %s (%s)", safe(d.BusName, "-"), safe(d.BusType, "-")),
		fmt.Sprintf("Route       : %s", safe(d.Route, "-")),
		fmt.Sprintf("Departure   : %s", safe(d.DepartureTime, "-")),
		fmt.Sprintf("Arrival     : %s", safe(d.ArrivalTime, "-")),
		fmt.Sprintf("Seats       : %s", safe(strings.Join(d.SeatNumbers, ", "), "-")),
		fmt.Sprintf("Total       : %s", utils.FormatCents(d.TotalCents)),
		fmt.Sprintf("Booking Ref : #%d", d.BookingID),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket at boarding. Valid for the listed seats only.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d", d.BookingID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Billed To  : "+safe(d.PassengerName, "-"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(120, 8, "Description")
	pdf.Cell(0, 8, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	desc := fmt.Sprintf("%s, %s, seat(s) %s", safe(d.BusName, "-"), safe(d.Route, "-"),
		safe(strings.Join(d.SeatNumbers, ", "), "-"))
	pdf.Cell(120, 8, desc)
	pdf.Cell(0, 8, utils.FormatCents(d.TotalCents))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(120, 8, "Total")
	pdf.Cell(0, 8, utils.FormatCents(d.TotalCents))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
