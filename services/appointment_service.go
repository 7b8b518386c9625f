package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elena-voss/luxe-salon-api/models"
)

// AppointmentService creates appointments and drives them through their
// lifecycle. It is the only component that writes an appointment's status or
// price, and it offers no delete: appointments are part of the permanent
// booking history.
type AppointmentService struct {
	db    *gorm.DB
	slots *SlotService
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{
		db:    db,
		slots: NewSlotService(db),
	}
}

// CreateAppointmentInput carries everything needed to book an appointment
type CreateAppointmentInput struct {
	CustomerID    uuid.UUID
	StylistID     uuid.UUID
	ServiceID     uuid.UUID
	DateTime      time.Time
	CustomerNotes *string
}

// Create books a new Pending appointment. It validates every referenced
// entity, checks the requested time against the availability grid, and
// snapshots the service's current price into the appointment.
func (s *AppointmentService) Create(in CreateAppointmentInput) (*models.Appointment, error) {
	var customer models.User
	err := s.db.Where("id = ? AND role = ?", in.CustomerID, models.RoleCustomer).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "customer", ID: in.CustomerID.String()}
	}
	if err != nil {
		return nil, err
	}

	// ComputeSlots also resolves the stylist and verifies they offer the
	// service, so a missing stylist or unassigned service surfaces here.
	slots, err := s.slots.ComputeSlots(in.StylistID, in.ServiceID, in.DateTime)
	if err != nil {
		return nil, err
	}

	found := false
	for _, slot := range slots {
		if !slot.StartTime.Equal(in.DateTime) {
			continue
		}
		found = true
		if !slot.IsAvailable {
			return nil, &ConflictError{
				StylistID: in.StylistID.String(),
				DateTime:  in.DateTime.Format(time.RFC3339),
			}
		}
		break
	}
	if !found {
		return nil, &ValidationError{
			Message: "requested time is not a bookable slot for this stylist and service",
		}
	}

	var service models.Service
	if err := s.db.Where("id = ? AND is_deleted = ?", in.ServiceID, false).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "service", ID: in.ServiceID.String()}
		}
		return nil, err
	}

	appointment := models.Appointment{
		CustomerID:    in.CustomerID,
		StylistID:     in.StylistID,
		ServiceID:     in.ServiceID,
		DateTime:      in.DateTime,
		Status:        models.StatusPending,
		TotalPrice:    service.Price,
		CustomerNotes: in.CustomerNotes,
	}

	if err := s.db.Create(&appointment).Error; err != nil {
		// The (stylist_id, date_time) unique index catches the race where
		// two customers saw the same free slot and both tried to book it.
		if isUniqueViolation(err) {
			return nil, &ConflictError{
				StylistID: in.StylistID.String(),
				DateTime:  in.DateTime.Format(time.RFC3339),
			}
		}
		return nil, err
	}

	return s.GetByID(appointment.ID)
}

// Transition applies a status change from the allowed-transition table.
// Notes travel to the field matching the actor: customers write
// customer_notes, stylists and managers write stylist_notes.
func (s *AppointmentService) Transition(id uuid.UUID, target models.AppointmentStatus, notes *string, actorRole string) (*models.Appointment, error) {
	if !target.IsValid() {
		return nil, &ValidationError{Message: "unknown appointment status: " + string(target)}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var appointment models.Appointment
		if err := tx.First(&appointment, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "appointment", ID: id.String()}
			}
			return err
		}

		current := appointment.Status
		if !current.CanTransitionTo(target) {
			return &InvalidTransitionError{
				AppointmentID: id.String(),
				From:          string(current),
				To:            string(target),
			}
		}

		updates := map[string]interface{}{"status": target}
		if notes != nil {
			if actorRole == models.RoleCustomer {
				updates["customer_notes"] = *notes
			} else {
				updates["stylist_notes"] = *notes
			}
		}

		// Compare-and-set on the status read above, so two concurrent
		// transitions cannot both succeed against a stale status.
		result := tx.Model(&models.Appointment{}).
			Where("id = ? AND status = ?", id, current).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var fresh models.Appointment
			if err := tx.First(&fresh, "id = ?", id).Error; err != nil {
				return err
			}
			return &InvalidTransitionError{
				AppointmentID: id.String(),
				From:          string(fresh.Status),
				To:            string(target),
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Confirm moves a Pending appointment to Confirmed (stylist/manager accepts)
func (s *AppointmentService) Confirm(id uuid.UUID, stylistNotes *string) (*models.Appointment, error) {
	return s.Transition(id, models.StatusConfirmed, stylistNotes, models.RoleStylist)
}

// Cancel moves a Pending or Confirmed appointment to Cancelled
func (s *AppointmentService) Cancel(id uuid.UUID, reason *string, actorRole string) (*models.Appointment, error) {
	return s.Transition(id, models.StatusCancelled, reason, actorRole)
}

// Complete moves a Confirmed appointment to Completed, after which it counts
// toward revenue
func (s *AppointmentService) Complete(id uuid.UUID) (*models.Appointment, error) {
	return s.Transition(id, models.StatusCompleted, nil, models.RoleStylist)
}

// MarkNoShow moves a Confirmed appointment to NoShow
func (s *AppointmentService) MarkNoShow(id uuid.UUID) (*models.Appointment, error) {
	return s.Transition(id, models.StatusNoShow, nil, models.RoleStylist)
}

// Delete is deliberately unsupported: appointments are audit history
func (s *AppointmentService) Delete(id uuid.UUID) error {
	return &UnsupportedOperationError{Operation: "delete appointment"}
}

// GetByID loads an appointment with its customer, stylist and service
func (s *AppointmentService) GetByID(id uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.
		Preload("Customer").
		Preload("Stylist").
		Preload("Service").
		First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "appointment", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// List returns a page of all appointments ordered by start time
func (s *AppointmentService) List(page, pageSize int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.
		Preload("Customer").
		Preload("Stylist").
		Preload("Service").
		Order("date_time asc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&appointments).Error
	return appointments, err
}

// ListForCustomer returns a page of a customer's appointments, optionally
// only upcoming ones
func (s *AppointmentService) ListForCustomer(customerID uuid.UUID, upcomingOnly bool, page, pageSize int) ([]models.Appointment, error) {
	return s.listFor("customer_id", customerID, upcomingOnly, page, pageSize)
}

// ListForStylist returns a page of a stylist's appointments, optionally only
// upcoming ones
func (s *AppointmentService) ListForStylist(stylistID uuid.UUID, upcomingOnly bool, page, pageSize int) ([]models.Appointment, error) {
	return s.listFor("stylist_id", stylistID, upcomingOnly, page, pageSize)
}

func (s *AppointmentService) listFor(column string, id uuid.UUID, upcomingOnly bool, page, pageSize int) ([]models.Appointment, error) {
	query := s.db.
		Preload("Customer").
		Preload("Stylist").
		Preload("Service").
		Where(column+" = ?", id)
	if upcomingOnly {
		query = query.Where("date_time > ?", time.Now())
	}

	var appointments []models.Appointment
	err := query.
		Order("date_time asc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&appointments).Error
	return appointments, err
}

// isUniqueViolation detects duplicate-key errors from both PostgreSQL and
// SQLite without depending on driver-specific error types
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}
