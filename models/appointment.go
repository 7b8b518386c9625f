package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Appointment represents a booked appointment slot. Appointments are never
// deleted; cancellation is a status transition so history and revenue
// reporting stay intact.
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Immutable references set at creation
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   User      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	StylistID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stylist_datetime" json:"stylist_id"`
	Stylist    User      `gorm:"foreignKey:StylistID" json:"stylist,omitempty"`
	ServiceID  uuid.UUID `gorm:"type:uuid;not null;index" json:"service_id"`
	Service    Service   `gorm:"foreignKey:ServiceID" json:"service,omitempty"`

	// Scheduled start instant. The unique index with StylistID is the guard
	// against two customers booking the same stylist slot concurrently.
	DateTime time.Time `gorm:"not null;uniqueIndex:idx_stylist_datetime" json:"date_time"`

	Status AppointmentStatus `gorm:"size:16;not null;default:'Pending'" json:"status"`

	// Price of the service at booking time. Later price changes to the
	// service must not alter past appointments, so this is written once at
	// creation and never recomputed.
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`

	// Notes are per actor and never overwritten by the other side
	CustomerNotes *string `gorm:"size:128" json:"customer_notes,omitempty"`
	StylistNotes  *string `gorm:"size:128" json:"stylist_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// BeforeCreate assigns a UUID before the row is inserted
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// OccupiedUntil returns the end of the half-open interval
// [DateTime, DateTime+duration) this appointment occupies.
// The Service relation must be loaded.
func (a *Appointment) OccupiedUntil() time.Time {
	return a.DateTime.Add(a.Service.Duration())
}

// Occupies reports whether the instant t falls inside this appointment's
// occupied interval. The Service relation must be loaded.
func (a *Appointment) Occupies(t time.Time) bool {
	return !a.DateTime.After(t) && a.OccupiedUntil().After(t)
}
