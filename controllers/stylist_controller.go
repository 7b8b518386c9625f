package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elena-voss/luxe-salon-api/config"
	"github.com/elena-voss/luxe-salon-api/models"
	"github.com/elena-voss/luxe-salon-api/services"
)

// stylistRoles is the role filter for the stylist read view. Managers also
// take appointments, so they appear alongside dedicated stylists.
var stylistRoles = []string{models.RoleStylist, models.RoleManager}

// attachStylistImageURL fills in the presigned profile image URL
func attachStylistImageURL(stylist *models.User) {
	imageService := services.GetImageService()
	if imageService == nil || stylist.ImageS3Key == nil {
		return
	}
	if url, err := imageService.GetImageURL(*stylist.ImageS3Key); err == nil && url != "" {
		stylist.ImageURL = &url
	}
}

// ListStylists handles GET /api/v1/stylists - lists the salon's stylists
func ListStylists(c *gin.Context) {
	page, pageSize := parsePagination(c)

	db := config.GetDB()
	var stylists []models.User
	if err := db.Where("role IN ?", stylistRoles).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&stylists).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	for i := range stylists {
		attachStylistImageURL(&stylists[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stylists,
	})
}

// GetStylist handles GET /api/v1/stylists/:id - returns one stylist profile
func GetStylist(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var stylist models.User
	if err := db.Where("id = ? AND role IN ?", id, stylistRoles).First(&stylist).Error; err != nil {
		respondServiceError(c, &services.NotFoundError{Entity: "stylist", ID: id.String()})
		return
	}

	attachStylistImageURL(&stylist)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stylist,
	})
}

// GetStylistServices handles GET /api/v1/stylists/:id/services - lists the
// active services a stylist offers
func GetStylistServices(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var stylist models.User
	if err := db.Preload("Services", "is_deleted = ?", false).
		Where("id = ? AND role IN ?", id, stylistRoles).
		First(&stylist).Error; err != nil {
		respondServiceError(c, &services.NotFoundError{Entity: "stylist", ID: id.String()})
		return
	}

	for i := range stylist.Services {
		attachServiceImageURL(&stylist.Services[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stylist.Services,
	})
}

// GetStylistAppointments handles GET /api/v1/stylists/:id/appointments -
// pages through a stylist's appointments, optionally only upcoming ones.
// Restricted to the stylist themselves and managers.
func GetStylistAppointments(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if !user.IsManager() && user.ID != id {
		respondForbidden(c, "You can only view your own appointments")
		return
	}

	upcoming, _ := strconv.ParseBool(c.DefaultQuery("upcoming", "false"))
	page, pageSize := parsePagination(c)

	appointmentService := services.NewAppointmentService(config.GetDB())
	appointments, err := appointmentService.ListForStylist(id, upcoming, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    appointments,
	})
}
