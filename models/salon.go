package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeOfDayFormat is the layout for the salon's opening/closing times
const TimeOfDayFormat = "15:04"

// Salon represents the single salon this system serves. Exactly one row
// exists; it is created at setup and only ever updated, never deleted.
type Salon struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Description string    `gorm:"size:256" json:"description"`
	Address     string    `gorm:"size:256" json:"address"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number"`
	Email       string    `gorm:"size:128" json:"email"`

	// Daily business hours as "HH:MM" time-of-day values
	OpeningTime string `gorm:"size:5;not null" json:"opening_time"`
	ClosingTime string `gorm:"size:5;not null" json:"closing_time"`

	// How many weeks in advance customers may book. Zero means unlimited.
	LeadWeeks int `gorm:"not null;default:0" json:"lead_weeks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Salon model
func (Salon) TableName() string {
	return "salons"
}

// BeforeCreate assigns a UUID before the row is inserted
func (s *Salon) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ValidateHours checks that both times parse and that opening precedes closing
func (s *Salon) ValidateHours() error {
	open, err := time.Parse(TimeOfDayFormat, s.OpeningTime)
	if err != nil {
		return fmt.Errorf("invalid opening time %q: %w", s.OpeningTime, err)
	}
	close, err := time.Parse(TimeOfDayFormat, s.ClosingTime)
	if err != nil {
		return fmt.Errorf("invalid closing time %q: %w", s.ClosingTime, err)
	}
	if !open.Before(close) {
		return fmt.Errorf("opening time %s must be before closing time %s", s.OpeningTime, s.ClosingTime)
	}
	return nil
}

// HoursOnDate combines the salon's opening and closing times with a calendar
// date, producing the absolute start and end instants of that business day.
func (s *Salon) HoursOnDate(date time.Time) (time.Time, time.Time, error) {
	if err := s.ValidateHours(); err != nil {
		return time.Time{}, time.Time{}, err
	}

	open, _ := time.Parse(TimeOfDayFormat, s.OpeningTime)
	close, _ := time.Parse(TimeOfDayFormat, s.ClosingTime)

	startOfDay := time.Date(date.Year(), date.Month(), date.Day(),
		open.Hour(), open.Minute(), 0, 0, date.Location())
	endOfDay := time.Date(date.Year(), date.Month(), date.Day(),
		close.Hour(), close.Minute(), 0, 0, date.Location())

	return startOfDay, endOfDay, nil
}
