package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/elena-voss/luxe-salon-api/models"
)

// StatsFilter narrows aggregate queries. Nil fields put no constraint on
// that dimension; set fields combine conjunctively.
type StatsFilter struct {
	StylistID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// StatsService computes appointment counts and revenue totals
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new stats service
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// CountAppointments counts appointments matching the filter, in any status
func (s *StatsService) CountAppointments(filter StatsFilter) (int64, error) {
	var count int64
	err := s.applyFilter(s.db.Model(&models.Appointment{}), filter).Count(&count).Error
	return count, err
}

// TotalRevenue sums the booked price of Completed appointments matching the
// filter. Cancelled and NoShow appointments contribute nothing. The sum is
// computed with exact decimal arithmetic; prices are money, not floats.
func (s *StatsService) TotalRevenue(filter StatsFilter) (decimal.Decimal, error) {
	var prices []decimal.Decimal
	err := s.applyFilter(s.db.Model(&models.Appointment{}), filter).
		Where("status = ?", models.StatusCompleted).
		Pluck("total_price", &prices).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p)
	}
	return total, nil
}

func (s *StatsService) applyFilter(query *gorm.DB, filter StatsFilter) *gorm.DB {
	if filter.StylistID != nil {
		query = query.Where("stylist_id = ?", *filter.StylistID)
	}
	if filter.StartDate != nil {
		query = query.Where("date_time >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date_time <= ?", *filter.EndDate)
	}
	return query
}
