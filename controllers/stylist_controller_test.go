package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elena-voss/luxe-salon-api/config"
	"github.com/elena-voss/luxe-salon-api/models"
)

func TestListStylists_IncludesManagers(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	seedUser(t, db, "auth0|stylist", "stylist")
	seedUser(t, db, "auth0|manager", "manager")
	seedUser(t, db, "auth0|customer", "customer")

	router := setupTestRouter()
	router.GET("/stylists", ListStylists)

	w, response := performRequest(router, http.MethodGet, "/stylists", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	// Both the stylist and the manager appear; the customer does not
	assert.Len(t, response["data"].([]interface{}), 2)
}

func TestGetStylist_CustomerIsNotAStylist(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	customer := seedUser(t, db, "auth0|customer", "customer")

	router := setupTestRouter()
	router.GET("/stylists/:id", GetStylist)

	w, response := performRequest(router, http.MethodGet, "/stylists/"+customer.ID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "STYLIST_NOT_FOUND", errorCode(response))
}

func TestGetStylistServices_ActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	stylist := seedUser(t, db, "auth0|stylist", "stylist")
	active := seedService(t, db, "50.00", 60, stylist)
	retired := seedService(t, db, "70.00", 90, stylist)
	db.Model(retired).Update("is_deleted", true)

	router := setupTestRouter()
	router.GET("/stylists/:id/services", GetStylistServices)

	w, response := performRequest(router, http.MethodGet, "/stylists/"+stylist.ID.String()+"/services", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].([]interface{})
	if assert.Len(t, data, 1) {
		service := data[0].(map[string]interface{})
		assert.Equal(t, active.ID.String(), service["id"])
	}
}

func TestGetStylistAppointments_SelfAndManagerOnly(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	seedSalon(t, db, "08:00", "17:00")

	stylist := seedUser(t, db, "auth0|stylist", "stylist")
	seedUser(t, db, "auth0|rival", "stylist")
	seedUser(t, db, "auth0|manager", "manager")
	service := seedService(t, db, "50.00", 60, stylist)
	customer := seedUser(t, db, "auth0|customer", "customer")

	seedAppointment(t, db, customer, stylist, service,
		time.Now().UTC().Add(48*time.Hour).Truncate(time.Hour), models.StatusPending)

	path := "/stylists/" + stylist.ID.String() + "/appointments"

	tests := []struct {
		name           string
		auth0ID        string
		role           string
		expectedStatus int
	}{
		{"Stylist views own schedule", "auth0|stylist", "stylist", http.StatusOK},
		{"Manager views any schedule", "auth0|manager", "manager", http.StatusOK},
		{"Another stylist is rejected", "auth0|rival", "stylist", http.StatusForbidden},
		{"Customer is rejected", "auth0|customer", "customer", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.GET("/stylists/:id/appointments", mockAuthMiddleware(tt.auth0ID, tt.role, "token"), GetStylistAppointments)

			w, response := performRequest(router, http.MethodGet, path, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Len(t, response["data"].([]interface{}), 1)
			}
		})
	}
}

func TestGetStylistAppointments_UpcomingFilter(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	seedSalon(t, db, "08:00", "17:00")

	stylist := seedUser(t, db, "auth0|stylist", "stylist")
	service := seedService(t, db, "50.00", 60, stylist)
	customer := seedUser(t, db, "auth0|customer", "customer")

	seedAppointment(t, db, customer, stylist, service,
		time.Now().UTC().Add(-48*time.Hour).Truncate(time.Hour), models.StatusCompleted)
	seedAppointment(t, db, customer, stylist, service,
		time.Now().UTC().Add(48*time.Hour).Truncate(time.Hour), models.StatusPending)

	router := setupTestRouter()
	router.GET("/stylists/:id/appointments", mockAuthMiddleware("auth0|stylist", "stylist", "token"), GetStylistAppointments)

	path := "/stylists/" + stylist.ID.String() + "/appointments"

	w, response := performRequest(router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, response["data"].([]interface{}), 2)

	w, response = performRequest(router, http.MethodGet, path+"?upcoming=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, response["data"].([]interface{}), 1)
}
