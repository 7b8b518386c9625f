package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service represents a salon service that stylists offer
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"size:50;not null" json:"name"`
	Description string          `gorm:"size:256" json:"description"`
	ImageS3Key  *string         `json:"image_s3_key,omitempty"`
	ImageURL    *string         `gorm:"-" json:"image_url,omitempty"` // computed field, presigned URL for image
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	// Length of one appointment for this service. Also the slot width on the
	// availability grid.
	DurationMinutes int `gorm:"not null" json:"duration_minutes"`

	// Soft-delete flag. Services are never removed so historical appointments
	// keep a valid reference; deleted services just stop showing up in active
	// listings.
	IsDeleted bool `gorm:"not null;default:false" json:"-"`

	// Stylists offering this service
	Stylists []User `gorm:"many2many:stylist_services" json:"stylists,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// BeforeCreate assigns a UUID before the row is inserted
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Duration returns the service duration as a time.Duration
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
