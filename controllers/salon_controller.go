package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elena-voss/luxe-salon-api/config"
	"github.com/elena-voss/luxe-salon-api/models"
	"github.com/elena-voss/luxe-salon-api/services"
)

// UpdateSalonRequest represents the request body for updating salon settings
type UpdateSalonRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=256"`
	Address     *string `json:"address" binding:"omitempty,max=256"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
	Email       *string `json:"email" binding:"omitempty,email,max=128"`
	OpeningTime *string `json:"opening_time"`
	ClosingTime *string `json:"closing_time"`
	LeadWeeks   *int    `json:"lead_weeks" binding:"omitempty,gte=0"`
}

// GetSalon handles GET /api/v1/salon - returns the salon profile and settings
func GetSalon(c *gin.Context) {
	db := config.GetDB()
	var salon models.Salon
	if err := db.First(&salon).Error; err != nil {
		respondServiceError(c, &services.ConfigurationError{Message: "no salon configured"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    salon,
	})
}

// UpdateSalon handles PUT /api/v1/salon - updates the salon settings
// (managers only). The salon is a singleton: settings change in place, rows
// are never added or removed.
func UpdateSalon(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	if !user.IsManager() {
		respondForbidden(c, "Only managers can update salon settings")
		return
	}

	var req UpdateSalonRequest
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

	db := config.GetDB()
	var salon models.Salon
	if err := db.First(&salon).Error; err != nil {
		respondServiceError(c, &services.ConfigurationError{Message: "no salon configured"})
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Description != nil {
		salon.Description = *req.Description
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.PhoneNumber != nil {
		salon.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		salon.Email = *req.Email
	}
	if req.OpeningTime != nil {
		salon.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		salon.ClosingTime = *req.ClosingTime
	}
	if req.LeadWeeks != nil {
		salon.LeadWeeks = *req.LeadWeeks
	}

	// Hours are validated as a pair so a partial update cannot leave the
	// salon closing before it opens
	if err := salon.ValidateHours(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	if err := db.Save(&salon).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    salon,
	})
}

// CreateSalon handles POST /api/v1/salon. The system models exactly one
// salon; adding another is always an unsupported operation.
func CreateSalon(c *gin.Context) {
	if _, ok := getCurrentUser(c); !ok {
		return
	}

	respondServiceError(c, &services.UnsupportedOperationError{Operation: "create salon"})
}

// DeleteSalon handles DELETE /api/v1/salon. The salon row is permanent.
func DeleteSalon(c *gin.Context) {
	if _, ok := getCurrentUser(c); !ok {
		return
	}

	respondServiceError(c, &services.UnsupportedOperationError{Operation: "delete salon"})
}
