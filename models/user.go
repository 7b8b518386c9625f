package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Stylists and customers share the users table; the role column
// decides which read views (stylist vs customer queries) a row appears in.
const (
	RoleCustomer = "customer"
	RoleStylist  = "stylist"
	RoleManager  = "manager"
)

// User represents a user in the system (customer, stylist or manager)
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Auth0ID     string    `gorm:"uniqueIndex;not null" json:"auth0_id"` // Auth0 user ID (from 'sub' claim)
	FirstName   string    `gorm:"size:50;not null" json:"first_name"`
	LastName    string    `gorm:"size:50;not null" json:"last_name"`
	Email       string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number"`
	Role        string    `gorm:"size:20;not null;default:'customer'" json:"role"` // "customer", "stylist" or "manager"

	// Stylist profile fields (empty for customers)
	Specialties []string `gorm:"serializer:json" json:"specialties,omitempty"`
	Bio         *string  `gorm:"size:128" json:"bio,omitempty"`
	ImageS3Key  *string  `json:"image_s3_key,omitempty"`
	ImageURL    *string  `gorm:"-" json:"image_url,omitempty"` // computed field, presigned URL for image

	// Services this stylist offers
	Services []Service `gorm:"many2many:stylist_services" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID before the row is inserted
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsStylist returns true if the user can be booked for appointments.
// Managers double as stylists, matching the role model of the salon.
func (u *User) IsStylist() bool {
	return u.Role == RoleStylist || u.Role == RoleManager
}

// IsCustomer returns true if the user books appointments as a customer
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// IsManager returns true if the user administers the salon
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
