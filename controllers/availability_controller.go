package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elena-voss/luxe-salon-api/config"
	"github.com/elena-voss/luxe-salon-api/services"
)

// dateQueryFormat is the expected layout of the ?date= query parameter
const dateQueryFormat = "2006-01-02"

// GetServiceSlots handles GET /api/v1/stylists/:id/services/:serviceId/slots
// It returns the availability grid for one stylist, service and date: every
// candidate start time between opening and closing, flagged available or not.
func GetServiceSlots(c *gin.Context) {
	stylistID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	serviceID, ok := parseUUIDParam(c, "serviceId")
	if !ok {
		return
	}

	dateParam := c.Query("date")
	if dateParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_DATE",
				"message": "The date query parameter is required",
			},
		})
		return
	}

	date, err := time.Parse(dateQueryFormat, dateParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_DATE",
				"message": "Date must be in YYYY-MM-DD format",
			},
		})
		return
	}

	slotService := services.NewSlotService(config.GetDB())
	slots, err := slotService.ComputeSlots(stylistID, serviceID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    slots,
	})
}
