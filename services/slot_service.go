package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elena-voss/luxe-salon-api/models"
)

// TimeSlot is one candidate appointment start time on the availability grid
type TimeSlot struct {
	StartTime   time.Time `json:"start_time"`
	IsAvailable bool      `json:"is_available"`
}

// SlotService computes bookable time slots for a stylist, service and date.
// All its operations are read-only.
type SlotService struct {
	db *gorm.DB
}

// NewSlotService creates a new slot service
func NewSlotService(db *gorm.DB) *SlotService {
	return &SlotService{db: db}
}

// ComputeSlots returns the ordered sequence of candidate slots for the given
// stylist, service and calendar date. Slots start at the salon's opening
// time and advance by the service duration; the last slot is the one whose
// start is still strictly before closing time, even if it runs past it.
//
// A slot is unavailable when its start falls inside the half-open interval
// [a.DateTime, a.DateTime+duration) of any of the stylist's appointments on
// that date. Cancelled appointments still count: a cancelled booking keeps
// its original slot blocked.
func (s *SlotService) ComputeSlots(stylistID, serviceID uuid.UUID, date time.Time) ([]TimeSlot, error) {
	stylist, err := s.findStylist(stylistID)
	if err != nil {
		return nil, err
	}

	service, err := s.findOfferedService(stylist, serviceID)
	if err != nil {
		return nil, err
	}

	if service.DurationMinutes <= 0 {
		return nil, &ConfigurationError{
			Message: "service " + service.ID.String() + " has a non-positive duration",
		}
	}

	salon, err := s.loadSalon()
	if err != nil {
		return nil, err
	}

	startOfDay, endOfDay, err := salon.HoursOnDate(date)
	if err != nil {
		return nil, &ConfigurationError{Message: err.Error()}
	}

	appointments, err := s.appointmentsOnDate(stylistID, date)
	if err != nil {
		return nil, err
	}

	slots := []TimeSlot{}
	for t := startOfDay; t.Before(endOfDay); t = t.Add(service.Duration()) {
		available := true
		for i := range appointments {
			if appointments[i].Occupies(t) {
				available = false
				break
			}
		}
		slots = append(slots, TimeSlot{StartTime: t, IsAvailable: available})
	}

	return slots, nil
}

// IsSlotAvailable reports whether start is one of the available slot starts
// for the stylist, service and day of start. Used by the booking flow to
// validate a requested appointment time against the grid.
func (s *SlotService) IsSlotAvailable(stylistID, serviceID uuid.UUID, start time.Time) (bool, error) {
	slots, err := s.ComputeSlots(stylistID, serviceID, start)
	if err != nil {
		return false, err
	}

	for _, slot := range slots {
		if slot.StartTime.Equal(start) {
			return slot.IsAvailable, nil
		}
	}
	return false, nil
}

// findStylist loads a user that appears in the stylist view (stylists and
// managers) together with the services they offer
func (s *SlotService) findStylist(stylistID uuid.UUID) (*models.User, error) {
	var stylist models.User
	err := s.db.Preload("Services").
		Where("id = ? AND role IN ?", stylistID, []string{models.RoleStylist, models.RoleManager}).
		First(&stylist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "stylist", ID: stylistID.String()}
	}
	if err != nil {
		return nil, err
	}
	return &stylist, nil
}

// findOfferedService resolves the service from the stylist's offered set.
// A service the stylist does not offer is indistinguishable from a missing
// one: both surface as a service not-found.
func (s *SlotService) findOfferedService(stylist *models.User, serviceID uuid.UUID) (*models.Service, error) {
	for i := range stylist.Services {
		if stylist.Services[i].ID == serviceID && !stylist.Services[i].IsDeleted {
			return &stylist.Services[i], nil
		}
	}
	return nil, &NotFoundError{Entity: "service", ID: serviceID.String()}
}

// loadSalon fetches the singleton salon row
func (s *SlotService) loadSalon() (*models.Salon, error) {
	var salon models.Salon
	err := s.db.First(&salon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ConfigurationError{Message: "no salon configured"}
	}
	if err != nil {
		return nil, err
	}
	return &salon, nil
}

// appointmentsOnDate returns the stylist's appointments whose start falls on
// the given calendar date, in any status, with their services loaded so each
// occupied interval can be derived.
func (s *SlotService) appointmentsOnDate(stylistID uuid.UUID, date time.Time) ([]models.Appointment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var appointments []models.Appointment
	err := s.db.Preload("Service").
		Where("stylist_id = ? AND date_time >= ? AND date_time < ?", stylistID, dayStart, dayEnd).
		Order("date_time asc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
