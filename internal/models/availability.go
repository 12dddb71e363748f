package models

import "github.com/BruksfildServices01/booking-api/internal/validators"

// Availability is a bookable slot of a service on a given day.
// Date is YYYY-MM-DD and times are HH:MM in the business timezone.
type Availability struct {
	Base

	ServiceID string   `gorm:"type:uuid;not null;index" json:"service_id" binding:"required,uuid"`
	Service   *Service `json:"service,omitempty"`

	Date      string `gorm:"size:10;not null;index" json:"date" binding:"required"`
	StartTime string `gorm:"size:5;not null" json:"start_time" binding:"required"`
	EndTime   string `gorm:"size:5;not null" json:"end_time" binding:"required"`
	IsBooked  bool   `gorm:"default:false" json:"is_booked"`
}

func (a *Availability) Validate() error {
	return validators.SlotRange(a.Date, a.StartTime, a.EndTime)
}
