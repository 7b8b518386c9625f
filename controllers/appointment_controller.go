package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elena-voss/luxe-salon-api/config"
	"github.com/elena-voss/luxe-salon-api/models"
	"github.com/elena-voss/luxe-salon-api/services"
)

// CreateAppointmentRequest represents the request body for booking an appointment
type CreateAppointmentRequest struct {
	StylistID string     `json:"stylist_id" binding:"required,uuid"`
	ServiceID string     `json:"service_id" binding:"required,uuid"`
	DateTime  *time.Time `json:"date_time" binding:"required"`
	Notes     *string    `json:"notes" binding:"omitempty,max=128"`
}

// UpdateAppointmentStatusRequest represents the request body for a status transition
type UpdateAppointmentStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes" binding:"omitempty,max=128"`
}

// CreateAppointment handles POST /api/v1/appointments - books a new
// appointment (customers only). The appointment starts out Pending with the
// service's current price locked in.
func CreateAppointment(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	if !user.IsCustomer() {
		respondForbidden(c, "Only customers can book appointments")
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	stylistID, _ := uuid.Parse(req.StylistID)
	serviceID, _ := uuid.Parse(req.ServiceID)

	// Advance-booking window. The salon's leadWeeks policy is enforced here
	// at the API edge; the slot generator itself knows nothing about it.
	db := config.GetDB()
	var salon models.Salon
	if err := db.First(&salon).Error; err == nil && salon.LeadWeeks > 0 {
		latest := time.Now().AddDate(0, 0, salon.LeadWeeks*7)
		if req.DateTime.After(latest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "OUTSIDE_BOOKING_WINDOW",
					"message": fmt.Sprintf("Appointments can be booked at most %d weeks in advance", salon.LeadWeeks),
				},
			})
			return
		}
	}

	appointmentService := services.NewAppointmentService(db)
	appointment, err := appointmentService.Create(services.CreateAppointmentInput{
		CustomerID:    user.ID,
		StylistID:     stylistID,
		ServiceID:     serviceID,
		DateTime:      *req.DateTime,
		CustomerNotes: req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    appointment,
	})
}

// ListAppointments handles GET /api/v1/appointments - lists all appointments
// ordered by start time (managers only)
func ListAppointments(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	if !user.IsManager() {
		respondForbidden(c, "Only managers can list all appointments")
		return
	}

	page, pageSize := parsePagination(c)

	appointmentService := services.NewAppointmentService(config.GetDB())
	appointments, err := appointmentService.List(page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    appointments,
	})
}

// GetAppointment handles GET /api/v1/appointments/:id - returns one
// appointment with its customer, stylist and service. Visible to the booking
// customer, the assigned stylist, and managers.
func GetAppointment(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	appointmentService := services.NewAppointmentService(config.GetDB())
	appointment, err := appointmentService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !user.IsManager() && appointment.CustomerID != user.ID && appointment.StylistID != user.ID {
		respondForbidden(c, "You do not have access to this appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    appointment,
	})
}

// UpdateAppointmentStatus handles PATCH /api/v1/appointments/:id/status.
// Customers may cancel their own appointments; stylists confirm, cancel,
// complete or no-show appointments assigned to them; managers may do any of
// these on any appointment. The transition table itself is enforced by the
// appointment service.
func UpdateAppointmentStatus(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	target := models.AppointmentStatus(req.Status)

	appointmentService := services.NewAppointmentService(config.GetDB())
	current, err := appointmentService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	switch {
	case user.IsManager():
		// managers can drive any appointment
	case user.IsStylist():
		if current.StylistID != user.ID {
			respondForbidden(c, "Stylists can only manage their own appointments")
			return
		}
	default:
		if current.CustomerID != user.ID {
			respondForbidden(c, "You do not have access to this appointment")
			return
		}
		if target != models.StatusCancelled {
			respondForbidden(c, "Customers can only cancel appointments")
			return
		}
	}

	appointment, err := appointmentService.Transition(id, target, req.Notes, user.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    appointment,
	})
}

// DeleteAppointment handles DELETE /api/v1/appointments/:id. Appointments
// are never deleted - cancellation is a status transition - so this always
// reports an unsupported operation.
func DeleteAppointment(c *gin.Context) {
	if _, ok := getCurrentUser(c); !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	appointmentService := services.NewAppointmentService(config.GetDB())
	respondServiceError(c, appointmentService.Delete(id))
}
