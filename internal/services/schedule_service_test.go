package services

import (
	"database/sql"
	"testing"
	"time"

	"fastbus/internal/domain"
	"fastbus/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newScheduleService(db *sql.DB) ScheduleService {
	return ScheduleService{
		ScheduleRepo: repositories.ScheduleRepository{DB: db},
		BusRepo:      repositories.BusRepository{DB: db},
		RouteRepo:    repositories.RouteRepository{DB: db},
		SeatSvc:      SeatService{SeatRepo: repositories.SeatRepository{DB: db}, DB: db},
		DB:           db,
	}
}

func busRow(operatorID int64, seatCount int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "operator_id", "bus_name", "bus_number", "bus_type", "seat_count"}).
		AddRow(1, operatorID, "Test Bus", "KA-01-1234", "AC Sleeper", seatCount)
}

func testScheduleInput() ScheduleInput {
	return ScheduleInput{
		BusID:         1,
		RouteID:       1,
		DepartureTime: time.Date(2025, 8, 9, 10, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2025, 8, 9, 16, 0, 0, 0, time.UTC),
		FareCents:     50000,
	}
}

func TestCreateScheduleGeneratesSeatInventory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM buses").
		WithArgs(int64(1)).
		WillReturnRows(busRow(1, 40))
	mock.ExpectQuery("FROM routes").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "origin", "destination"}).
			AddRow(1, "Chennai", "Bangalore"))
	mock.ExpectExec("INSERT INTO schedules").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM seats").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("INSERT INTO seats").
		WillReturnResult(sqlmock.NewResult(0, 40))

	sched, err := newScheduleService(db).CreateSchedule(1, testScheduleInput())
	if err != nil {
		t.Fatalf("CreateSchedule returned error: %v", err)
	}
	if sched.ID != 5 {
		t.Fatalf("expected schedule id 5, got %d", sched.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateScheduleRejectsForeignBus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM buses").
		WithArgs(int64(1)).
		WillReturnRows(busRow(99, 40))

	_, err = newScheduleService(db).CreateSchedule(1, testScheduleInput())
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
}

func TestCreateScheduleRejectsInvalidTimes(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	in := testScheduleInput()
	in.ArrivalTime = in.DepartureTime.Add(-time.Hour)
	if _, err := newScheduleService(db).CreateSchedule(1, in); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	in = testScheduleInput()
	in.FareCents = -1
	if _, err := newScheduleService(db).CreateSchedule(1, in); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateScheduleByOwnerSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM schedules sc").
		WithArgs(int64(5)).
		WillReturnRows(scheduleDetailRows(50000))
	mock.ExpectExec("UPDATE schedules SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := newScheduleService(db).UpdateSchedule(5, testScheduleInput(), 1)
	if err != nil {
		t.Fatalf("UpdateSchedule returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected update to report true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateScheduleNonOwnerReportsFalseWithoutError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM schedules sc").
		WithArgs(int64(5)).
		WillReturnRows(scheduleDetailRows(50000))

	ok, err := newScheduleService(db).UpdateSchedule(5, testScheduleInput(), 42)
	if err != nil {
		t.Fatalf("expected nil error for foreign operator, got %v", err)
	}
	if ok {
		t.Fatal("expected update to report false for foreign operator")
	}
}

func TestUpdateScheduleMissingReportsFalseWithoutError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM schedules sc").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	ok, err := newScheduleService(db).UpdateSchedule(404, testScheduleInput(), 1)
	if err != nil {
		t.Fatalf("expected nil error for missing schedule, got %v", err)
	}
	if ok {
		t.Fatal("expected update to report false for missing schedule")
	}
}

func TestDeleteScheduleByOwnerSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM schedules sc").
		WithArgs(int64(5)).
		WillReturnRows(scheduleDetailRows(50000))
	mock.ExpectExec("DELETE FROM schedules").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := newScheduleService(db).DeleteSchedule(5, 1)
	if err != nil {
		t.Fatalf("DeleteSchedule returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected delete to report true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteScheduleNonOwnerReportsFalseWithoutError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM schedules sc").
		WithArgs(int64(5)).
		WillReturnRows(scheduleDetailRows(50000))

	ok, err := newScheduleService(db).DeleteSchedule(5, 42)
	if err != nil {
		t.Fatalf("expected nil error for foreign operator, got %v", err)
	}
	if ok {
		t.Fatal("expected delete to report false for foreign operator")
	}
}

func TestGetSchedulesByOperatorFormatsDisplayRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM schedules sc").
		WithArgs(int64(1)).
		WillReturnRows(scheduleDetailRows(50000))

	rowsOut, err := newScheduleService(db).GetSchedulesByOperator(1)
	if err != nil {
		t.Fatalf("GetSchedulesByOperator returned error: %v", err)
	}
	if len(rowsOut) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rowsOut))
	}
	got := rowsOut[0]
	if got.Route != "Chennai to Bangalore" {
		t.Fatalf("unexpected route %q", got.Route)
	}
	if got.DepartureTime != "09/08/2025 10:00" || got.ArrivalTime != "09/08/2025 16:00" {
		t.Fatalf("unexpected display times %q / %q", got.DepartureTime, got.ArrivalTime)
	}
	if got.Fare != "500.00" {
		t.Fatalf("unexpected fare display %q", got.Fare)
	}
}
