package models

import "time"

type Booking struct {
	Base

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	ServiceID string   `gorm:"type:uuid;not null;index" json:"service_id"`
	Service   *Service `json:"service,omitempty"`

	AvailabilityID *string       `gorm:"type:uuid;index" json:"availability_id"`
	Availability   *Availability `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"availability,omitempty"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	PaymentPreferenceID string `gorm:"size:100" json:"payment_preference_id"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (b *Booking) SetOwner(userID string) { b.UserID = userID }
func (b *Booking) OwnerID() string { return b.UserID }
