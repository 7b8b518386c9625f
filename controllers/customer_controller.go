package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elena-voss/luxe-salon-api/config"
	"github.com/elena-voss/luxe-salon-api/models"
	"github.com/elena-voss/luxe-salon-api/services"
)

// ListCustomers handles GET /api/v1/customers - lists customers (managers only)
func ListCustomers(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	if !user.IsManager() {
		respondForbidden(c, "Only managers can list customers")
		return
	}

	page, pageSize := parsePagination(c)

	db := config.GetDB()
	var customers []models.User
	if err := db.Where("role = ?", models.RoleCustomer).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&customers).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customers,
	})
}

// GetCustomer handles GET /api/v1/customers/:id - returns one customer.
// Restricted to the customer themselves and staff.
func GetCustomer(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if !user.IsStylist() && user.ID != id {
		respondForbidden(c, "You can only view your own profile")
		return
	}

	db := config.GetDB()
	var customer models.User
	if err := db.Where("id = ? AND role = ?", id, models.RoleCustomer).First(&customer).Error; err != nil {
		respondServiceError(c, &services.NotFoundError{Entity: "customer", ID: id.String()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customer,
	})
}

// GetCustomerAppointments handles GET /api/v1/customers/:id/appointments -
// pages through a customer's appointments, optionally only upcoming ones.
// Restricted to the customer themselves and staff.
func GetCustomerAppointments(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if !user.IsStylist() && user.ID != id {
		respondForbidden(c, "You can only view your own appointments")
		return
	}

	upcoming, _ := strconv.ParseBool(c.DefaultQuery("upcoming", "false"))
	page, pageSize := parsePagination(c)

	appointmentService := services.NewAppointmentService(config.GetDB())
	appointments, err := appointmentService.ListForCustomer(id, upcoming, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    appointments,
	})
}
