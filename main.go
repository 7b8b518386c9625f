package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/elena-voss/luxe-salon-api/config"
	"github.com/elena-voss/luxe-salon-api/controllers"
	"github.com/elena-voss/luxe-salon-api/middleware"
	"github.com/elena-voss/luxe-salon-api/models"
	"github.com/elena-voss/luxe-salon-api/services"
)

func main() {
	log.Println("Starting Luxe Salon API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Salon{},
		&models.Service{},
		&models.Appointment{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Ensure the salon row exists so availability and booking work out of the box
	if err := seedSalon(db); err != nil {
		log.Fatalf("Failed to seed salon: %v", err)
	}

	// Initialize S3-backed image service. Image uploads are optional; the
	// booking API works without AWS credentials configured.
	if s3Service, err := services.InitS3Service(); err != nil {
		log.Printf("S3 service unavailable, image uploads disabled: %v", err)
	} else {
		services.InitImageService(s3Service)
		log.Println("S3 image service initialized")
	}

	router := setupRouter(cfg)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedSalon creates the initial salon row if none exists yet. The salon is a
// singleton: it is only ever updated afterwards, never recreated or deleted.
func seedSalon(db *gorm.DB) error {
	var salon models.Salon
	err := db.First(&salon).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	salon = models.Salon{
		Name:        "Luxe Salon",
		OpeningTime: "09:00",
		ClosingTime: "18:00",
		LeadWeeks:   4,
	}
	if err := db.Create(&salon).Error; err != nil {
		return err
	}
	log.Println("Seeded default salon configuration")
	return nil
}

// setupRouter builds the Gin engine with all middleware and routes
func setupRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1 := router.Group("/api/v1")
	{
		// Operational endpoints
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)

		// Public read-only endpoints: browsing the salon, its services and
		// stylists, and checking availability requires no account
		v1.GET("/salon", controllers.GetSalon)
		v1.GET("/services", controllers.ListServices)
		v1.GET("/services/:id", controllers.GetService)
		v1.GET("/services/:id/stylists", controllers.GetServiceStylists)
		v1.GET("/stylists", controllers.ListStylists)
		v1.GET("/stylists/:id", controllers.GetStylist)
		v1.GET("/stylists/:id/services", controllers.GetStylistServices)
		v1.GET("/stylists/:id/services/:serviceId/slots", controllers.GetServiceSlots)

		// Authenticated endpoints
		protected := v1.Group("")
		protected.Use(middleware.EnsureValidToken(cfg))
		{
			protected.POST("/users", controllers.CreateUser)
			protected.GET("/users/me", controllers.GetMyProfile)
			protected.PUT("/users/me", controllers.UpdateMyProfile)

			protected.POST("/appointments", controllers.CreateAppointment)
			protected.GET("/appointments", controllers.ListAppointments)
			protected.GET("/appointments/:id", controllers.GetAppointment)
			protected.PATCH("/appointments/:id/status", controllers.UpdateAppointmentStatus)
			protected.DELETE("/appointments/:id", controllers.DeleteAppointment)

			protected.GET("/customers", controllers.ListCustomers)
			protected.GET("/customers/:id", controllers.GetCustomer)
			protected.GET("/customers/:id/appointments", controllers.GetCustomerAppointments)
			protected.GET("/stylists/:id/appointments", controllers.GetStylistAppointments)

			protected.PUT("/salon", controllers.UpdateSalon)
			protected.POST("/salon", controllers.CreateSalon)
			protected.DELETE("/salon", controllers.DeleteSalon)

			protected.POST("/services", controllers.CreateService)
			protected.PUT("/services/:id", controllers.UpdateService)
			protected.DELETE("/services/:id", controllers.DeleteService)
			protected.POST("/services/:id/stylists/:stylistId", controllers.AddServiceStylist)
			protected.DELETE("/services/:id/stylists/:stylistId", controllers.RemoveServiceStylist)

			protected.GET("/stats/appointments", controllers.GetAppointmentCount)
			protected.GET("/stats/revenue", controllers.GetTotalRevenue)

			protected.POST("/uploads/images", controllers.UploadImage)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Luxe Salon API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables
	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
