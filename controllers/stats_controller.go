package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elena-voss/luxe-salon-api/config"
	"github.com/elena-voss/luxe-salon-api/services"
)

// parseStatsFilter reads the optional stylistId/startDate/endDate query
// parameters shared by the stats endpoints. On failure it writes the error
// response and returns false.
func parseStatsFilter(c *gin.Context) (services.StatsFilter, bool) {
	var filter services.StatsFilter

	if raw := c.Query("stylistId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_ID",
					"message": "Invalid stylistId format",
				},
			})
			return filter, false
		}
		filter.StylistID = &id
	}

	for _, p := range []struct {
		name string
		dest **time.Time
	}{
		{"startDate", &filter.StartDate},
		{"endDate", &filter.EndDate},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(dateQueryFormat, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_DATE",
					"message": p.name + " must be in YYYY-MM-DD format",
				},
			})
			return filter, false
		}
		*p.dest = &t
	}

	// An end date covers its whole day
	if filter.EndDate != nil {
		end := filter.EndDate.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}

	return filter, true
}

// GetAppointmentCount handles GET /api/v1/stats/appointments - counts
// appointments in any status matching the filter (managers only)
func GetAppointmentCount(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	if !user.IsManager() {
		respondForbidden(c, "Only managers can view salon statistics")
		return
	}

	filter, ok := parseStatsFilter(c)
	if !ok {
		return
	}

	statsService := services.NewStatsService(config.GetDB())
	count, err := statsService.CountAppointments(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"count": count,
		},
	})
}

// GetTotalRevenue handles GET /api/v1/stats/revenue - sums completed
// appointment revenue matching the filter (managers only)
func GetTotalRevenue(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	if !user.IsManager() {
		respondForbidden(c, "Only managers can view salon statistics")
		return
	}

	filter, ok := parseStatsFilter(c)
	if !ok {
		return
	}

	statsService := services.NewStatsService(config.GetDB())
	revenue, err := statsService.TotalRevenue(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_revenue": revenue,
		},
	})
}
