package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/elena-voss/luxe-salon-api/models"
)

func TestCountAppointments_AllStatusesCount(t *testing.T) {
	db := setupTestDB(t)
	createTestSalon(t, db, "08:00", "17:00")

	service := createTestService(t, db, "50.00", 60)
	stylist := createTestStylist(t, db, service)
	customer := createTestUser(t, db, models.RoleCustomer)

	base := time.Date(2026, time.September, 14, 8, 0, 0, 0, time.UTC)
	statuses := []models.AppointmentStatus{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusCancelled,
		models.StatusCompleted,
		models.StatusNoShow,
	}
	for i, status := range statuses {
		createTestAppointment(t, db, customer, stylist, service,
			base.Add(time.Duration(i)*time.Hour), status)
	}

	count, err := NewStatsService(db).CountAppointments(StatsFilter{})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestTotalRevenue_CompletedOnly(t *testing.T) {
	db := setupTestDB(t)
	createTestSalon(t, db, "08:00", "17:00")

	stylist := createTestStylist(t, db)
	customer := createTestUser(t, db, models.RoleCustomer)

	base := time.Date(2026, time.September, 14, 8, 0, 0, 0, time.UTC)
	bookings := []struct {
		price  string
		status models.AppointmentStatus
	}{
		{"50.00", models.StatusCompleted},
		{"30.00", models.StatusCompleted},
		{"40.00", models.StatusNoShow},
		{"20.00", models.StatusCancelled},
		{"60.00", models.StatusPending},
		{"45.00", models.StatusConfirmed},
	}
	for i, b := range bookings {
		service := createTestService(t, db, b.price, 60)
		createTestAppointment(t, db, customer, stylist, service,
			base.Add(time.Duration(i)*time.Hour), b.status)
	}

	total, err := NewStatsService(db).TotalRevenue(StatsFilter{})
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("80.00")),
		"only the two completed appointments count, got %s", total)
}

func TestTotalRevenue_EmptyIsZero(t *testing.T) {
	db := setupTestDB(t)

	total, err := NewStatsService(db).TotalRevenue(StatsFilter{})
	assert.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestTotalRevenue_ExactDecimalArithmetic(t *testing.T) {
	db := setupTestDB(t)
	createTestSalon(t, db, "08:00", "17:00")

	stylist := createTestStylist(t, db)
	customer := createTestUser(t, db, models.RoleCustomer)

	// Prices chosen to drift under float addition
	base := time.Date(2026, time.September, 14, 8, 0, 0, 0, time.UTC)
	for i, price := range []string{"0.10", "0.20", "0.30"} {
		service := createTestService(t, db, price, 60)
		createTestAppointment(t, db, customer, stylist, service,
			base.Add(time.Duration(i)*time.Hour), models.StatusCompleted)
	}

	total, err := NewStatsService(db).TotalRevenue(StatsFilter{})
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("0.60")), "got %s", total)
}

func TestStats_StylistFilter(t *testing.T) {
	db := setupTestDB(t)
	createTestSalon(t, db, "08:00", "17:00")

	service := createTestService(t, db, "50.00", 60)
	stylistA := createTestStylist(t, db, service)
	stylistB := createTestStylist(t, db, service)
	customer := createTestUser(t, db, models.RoleCustomer)

	base := time.Date(2026, time.September, 14, 8, 0, 0, 0, time.UTC)
	createTestAppointment(t, db, customer, stylistA, service, base, models.StatusCompleted)
	createTestAppointment(t, db, customer, stylistA, service, base.Add(time.Hour), models.StatusCompleted)
	createTestAppointment(t, db, customer, stylistB, service, base.Add(2*time.Hour), models.StatusCompleted)

	stats := NewStatsService(db)

	count, err := stats.CountAppointments(StatsFilter{StylistID: &stylistA.ID})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	revenue, err := stats.TotalRevenue(StatsFilter{StylistID: &stylistB.ID})
	assert.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.RequireFromString("50.00")), "got %s", revenue)
}

func TestStats_DateRangeFilter(t *testing.T) {
	db := setupTestDB(t)
	createTestSalon(t, db, "08:00", "17:00")

	service := createTestService(t, db, "50.00", 60)
	stylist := createTestStylist(t, db, service)
	customer := createTestUser(t, db, models.RoleCustomer)

	days := []time.Time{
		time.Date(2026, time.September, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 20, 10, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		createTestAppointment(t, db, customer, stylist, service, day, models.StatusCompleted)
	}

	stats := NewStatsService(db)

	from := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.September, 16, 0, 0, 0, 0, time.UTC)

	count, err := stats.CountAppointments(StatsFilter{StartDate: &from, EndDate: &to})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Open-ended range: everything from the 12th onwards
	count, err = stats.CountAppointments(StatsFilter{StartDate: &from})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	revenue, err := stats.TotalRevenue(StatsFilter{StartDate: &from, EndDate: &to})
	assert.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.RequireFromString("50.00")), "got %s", revenue)
}

func TestStats_FiltersCombineConjunctively(t *testing.T) {
	db := setupTestDB(t)
	createTestSalon(t, db, "08:00", "17:00")

	service := createTestService(t, db, "50.00", 60)
	stylistA := createTestStylist(t, db, service)
	stylistB := createTestStylist(t, db, service)
	customer := createTestUser(t, db, models.RoleCustomer)

	early := time.Date(2026, time.September, 10, 10, 0, 0, 0, time.UTC)
	late := time.Date(2026, time.September, 20, 10, 0, 0, 0, time.UTC)

	createTestAppointment(t, db, customer, stylistA, service, early, models.StatusCompleted)
	createTestAppointment(t, db, customer, stylistA, service, late, models.StatusCompleted)
	createTestAppointment(t, db, customer, stylistB, service, early.Add(time.Hour), models.StatusCompleted)

	from := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

	// Stylist A and the late window together match exactly one appointment
	count, err := NewStatsService(db).CountAppointments(StatsFilter{
		StylistID: &stylistA.ID,
		StartDate: &from,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
