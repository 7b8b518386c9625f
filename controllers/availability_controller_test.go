package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/elena-voss/luxe-salon-api/config"
	"github.com/elena-voss/luxe-salon-api/models"
)

func TestGetServiceSlots_FullDay(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	seedSalon(t, db, "08:00", "17:00")

	stylist := seedUser(t, db, "auth0|stylist", "stylist")
	service := seedService(t, db, "50.00", 60, stylist)

	router := setupTestRouter()
	router.GET("/stylists/:id/services/:serviceId/slots", GetServiceSlots)

	path := fmt.Sprintf("/stylists/%s/services/%s/slots?date=2026-09-14", stylist.ID, service.ID)
	w, response := performRequest(router, http.MethodGet, path, nil)

	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())
	assert.True(t, response["success"].(bool))

	slots := response["data"].([]interface{})
	assert.Len(t, slots, 9)
	for _, raw := range slots {
		slot := raw.(map[string]interface{})
		assert.True(t, slot["is_available"].(bool))
	}
}

func TestGetServiceSlots_BookedSlotFlaggedUnavailable(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	seedSalon(t, db, "08:00", "17:00")

	stylist := seedUser(t, db, "auth0|stylist", "stylist")
	service := seedService(t, db, "50.00", 60, stylist)
	customer := seedUser(t, db, "auth0|customer", "customer")

	booked := time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC)
	seedAppointment(t, db, customer, stylist, service, booked, models.StatusConfirmed)

	router := setupTestRouter()
	router.GET("/stylists/:id/services/:serviceId/slots", GetServiceSlots)

	path := fmt.Sprintf("/stylists/%s/services/%s/slots?date=2026-09-14", stylist.ID, service.ID)
	w, response := performRequest(router, http.MethodGet, path, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	unavailable := 0
	for _, raw := range response["data"].([]interface{}) {
		slot := raw.(map[string]interface{})
		if !slot["is_available"].(bool) {
			unavailable++
			start, err := time.Parse(time.RFC3339, slot["start_time"].(string))
			assert.NoError(t, err)
			assert.True(t, start.Equal(booked))
		}
	}
	assert.Equal(t, 1, unavailable)
}

func TestGetServiceSlots_MissingDate(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.GET("/stylists/:id/services/:serviceId/slots", GetServiceSlots)

	path := fmt.Sprintf("/stylists/%s/services/%s/slots", uuid.New(), uuid.New())
	w, response := performRequest(router, http.MethodGet, path, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_DATE", errorCode(response))
}

func TestGetServiceSlots_InvalidDate(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.GET("/stylists/:id/services/:serviceId/slots", GetServiceSlots)

	path := fmt.Sprintf("/stylists/%s/services/%s/slots?date=tomorrow", uuid.New(), uuid.New())
	w, response := performRequest(router, http.MethodGet, path, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATE", errorCode(response))
}

func TestGetServiceSlots_InvalidStylistID(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.GET("/stylists/:id/services/:serviceId/slots", GetServiceSlots)

	path := fmt.Sprintf("/stylists/not-a-uuid/services/%s/slots?date=2026-09-14", uuid.New())
	w, response := performRequest(router, http.MethodGet, path, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", errorCode(response))
}

func TestGetServiceSlots_UnknownStylist(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	seedSalon(t, db, "08:00", "17:00")

	service := seedService(t, db, "50.00", 60)

	router := setupTestRouter()
	router.GET("/stylists/:id/services/:serviceId/slots", GetServiceSlots)

	path := fmt.Sprintf("/stylists/%s/services/%s/slots?date=2026-09-14", uuid.New(), service.ID)
	w, response := performRequest(router, http.MethodGet, path, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "STYLIST_NOT_FOUND", errorCode(response))
}

func TestGetServiceSlots_NoSalonConfigured(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	stylist := seedUser(t, db, "auth0|stylist", "stylist")
	service := seedService(t, db, "50.00", 60, stylist)

	router := setupTestRouter()
	router.GET("/stylists/:id/services/:serviceId/slots", GetServiceSlots)

	path := fmt.Sprintf("/stylists/%s/services/%s/slots?date=2026-09-14", stylist.ID, service.ID)
	w, response := performRequest(router, http.MethodGet, path, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "CONFIGURATION_ERROR", errorCode(response))
}
