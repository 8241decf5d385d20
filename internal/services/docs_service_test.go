package services

import (
	"bytes"
	"errors"
	"testing"
)

func docsFixture() bookingDocData {
	return bookingDocData{
		BookingID:     7,
		PassengerName: "Test User",
		BusName:       "Test Bus",
		BusType:       "AC Sleeper",
		Route:         "Chennai to Bangalore",
		DepartureTime: "09/08/2025 10:00",
		ArrivalTime:   "09/08/2025 16:00",
		SeatNumbers:   []string{"A1", "A2"},
		TotalCents:    100000,
	}
}

func TestGenerateETicketProducesPDF(t *testing.T) {
	svc := DocsService{Loader: func(int64) (bookingDocData, error) {
		return docsFixture(), nil
	}}

	data, filename, err := svc.GenerateETicket(7)
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if filename != "ETICKET_7.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output does not look like a PDF")
	}
}

func TestGenerateInvoiceProducesPDF(t *testing.T) {
	svc := DocsService{Loader: func(int64) (bookingDocData, error) {
		return docsFixture(), nil
	}}

	data, filename, err := svc.GenerateInvoice(7)
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if filename != "INVOICE_7.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output does not look like a PDF")
	}
}

func TestGenerateETicketPropagatesLoadFailure(t *testing.T) {
	wantErr := errors.New("booking 404 not found")
	svc := DocsService{Loader: func(int64) (bookingDocData, error) {
		return bookingDocData{}, wantErr
	}}

	if _, _, err := svc.GenerateETicket(404); !errors.Is(err, wantErr) {
		t.Fatalf("expected load error, got %v", err)
	}
}
