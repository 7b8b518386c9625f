package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/elena-voss/luxe-salon-api/config"
	"github.com/elena-voss/luxe-salon-api/models"
	"github.com/elena-voss/luxe-salon-api/services"
)

// CreateServiceRequest represents the request body for creating a service
type CreateServiceRequest struct {
	Name            string           `json:"name" binding:"required,max=50"`
	Description     string           `json:"description" binding:"max=256"`
	Price           *decimal.Decimal `json:"price" binding:"required"`
	DurationMinutes int              `json:"duration_minutes" binding:"required,gt=0"`
	ImageS3Key      *string          `json:"image_s3_key"`
}

// UpdateServiceRequest represents the request body for updating a service
type UpdateServiceRequest struct {
	Name            *string          `json:"name" binding:"omitempty,max=50"`
	Description     *string          `json:"description" binding:"omitempty,max=256"`
	Price           *decimal.Decimal `json:"price"`
	DurationMinutes *int             `json:"duration_minutes" binding:"omitempty,gt=0"`
	ImageS3Key      *string          `json:"image_s3_key"`
}

// attachServiceImageURL fills in the presigned image URL for a service
func attachServiceImageURL(service *models.Service) {
	imageService := services.GetImageService()
	if imageService == nil || service.ImageS3Key == nil {
		return
	}
	if url, err := imageService.GetImageURL(*service.ImageS3Key); err == nil && url != "" {
		service.ImageURL = &url
	}
}

// ListServices handles GET /api/v1/services - lists active services
func ListServices(c *gin.Context) {
	page, pageSize := parsePagination(c)

	db := config.GetDB()
	var serviceList []models.Service
	if err := db.Where("is_deleted = ?", false).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&serviceList).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	for i := range serviceList {
		attachServiceImageURL(&serviceList[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    serviceList,
	})
}

// GetService handles GET /api/v1/services/:id - returns one active service
func GetService(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var service models.Service
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&service).Error; err != nil {
		respondServiceError(c, &services.NotFoundError{Entity: "service", ID: id.String()})
		return
	}

	attachServiceImageURL(&service)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    service,
	})
}

// CreateService handles POST /api/v1/services - adds a service (managers only)
func CreateService(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	if !user.IsManager() {
		respondForbidden(c, "Only managers can create services")
		return
	}

	var req CreateServiceRequest
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

	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Price must not be negative",
			},
		})
		return
	}

	service := models.Service{
		Name:            req.Name,
		Description:     req.Description,
		Price:           *req.Price,
		DurationMinutes: req.DurationMinutes,
		ImageS3Key:      req.ImageS3Key,
	}

	db := config.GetDB()
	if err := db.Create(&service).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	attachServiceImageURL(&service)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    service,
	})
}

// UpdateService handles PUT /api/v1/services/:id (managers only). Price
// changes affect future bookings only; existing appointments keep the price
// they were booked at.
func UpdateService(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	if !user.IsManager() {
		respondForbidden(c, "Only managers can update services")
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
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
	var service models.Service
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&service).Error; err != nil {
		respondServiceError(c, &services.NotFoundError{Entity: "service", ID: id.String()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Price must not be negative",
				},
			})
			return
		}
		updates["price"] = *req.Price
	}
	if req.DurationMinutes != nil {
		updates["duration_minutes"] = *req.DurationMinutes
	}
	if req.ImageS3Key != nil {
		updates["image_s3_key"] = *req.ImageS3Key
	}

	if len(updates) > 0 {
		if err := db.Model(&service).Updates(updates).Error; err != nil {
			respondServiceError(c, err)
			return
		}
	}

	if err := db.First(&service, "id = ?", id).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	attachServiceImageURL(&service)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    service,
	})
}

// DeleteService handles DELETE /api/v1/services/:id (managers only). The
// service row stays - past appointments reference it - but the soft-delete
// flag hides it from every active listing.
func DeleteService(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	if !user.IsManager() {
		respondForbidden(c, "Only managers can delete services")
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var service models.Service
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&service).Error; err != nil {
		respondServiceError(c, &services.NotFoundError{Entity: "service", ID: id.String()})
		return
	}

	if err := db.Model(&service).Update("is_deleted", true).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service deleted",
	})
}

// GetServiceStylists handles GET /api/v1/services/:id/stylists - lists the
// stylists offering a service
func GetServiceStylists(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var service models.Service
	if err := db.Preload("Stylists").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&service).Error; err != nil {
		respondServiceError(c, &services.NotFoundError{Entity: "service", ID: id.String()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    service.Stylists,
	})
}

// AddServiceStylist handles POST /api/v1/services/:id/stylists/:stylistId -
// assigns a stylist to a service (managers only)
func AddServiceStylist(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	if !user.IsManager() {
		respondForbidden(c, "Only managers can assign stylists to services")
		return
	}

	serviceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	stylistID, ok := parseUUIDParam(c, "stylistId")
	if !ok {
		return
	}

	db := config.GetDB()
	var service models.Service
	if err := db.Where("id = ? AND is_deleted = ?", serviceID, false).First(&service).Error; err != nil {
		respondServiceError(c, &services.NotFoundError{Entity: "service", ID: serviceID.String()})
		return
	}

	var stylist models.User
	if err := db.Where("id = ? AND role IN ?", stylistID, []string{models.RoleStylist, models.RoleManager}).
		First(&stylist).Error; err != nil {
		respondServiceError(c, &services.NotFoundError{Entity: "stylist", ID: stylistID.String()})
		return
	}

	if err := db.Model(&service).Association("Stylists").Append(&stylist); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Stylist assigned to service",
	})
}

// RemoveServiceStylist handles DELETE /api/v1/services/:id/stylists/:stylistId
// (managers only)
func RemoveServiceStylist(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	if !user.IsManager() {
		respondForbidden(c, "Only managers can unassign stylists from services")
		return
	}

	serviceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	stylistID, ok := parseUUIDParam(c, "stylistId")
	if !ok {
		return
	}

	db := config.GetDB()
	var service models.Service
	if err := db.Where("id = ? AND is_deleted = ?", serviceID, false).First(&service).Error; err != nil {
		respondServiceError(c, &services.NotFoundError{Entity: "service", ID: serviceID.String()})
		return
	}

	var stylist models.User
	if err := db.First(&stylist, "id = ?", stylistID).Error; err != nil {
		respondServiceError(c, &services.NotFoundError{Entity: "stylist", ID: stylistID.String()})
		return
	}

	if err := db.Model(&service).Association("Stylists").Delete(&stylist); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Stylist unassigned from service",
	})
}
