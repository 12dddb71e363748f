package models

type CartItem struct {
	Base

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	ServiceID string   `gorm:"type:uuid;not null;index" json:"service_id" binding:"required,uuid"`
	Service   *Service `json:"service,omitempty"`

	Quantity int `gorm:"not null;default:1" json:"quantity" binding:"gte=0"`
}

func (c *CartItem) SetOwner(userID string) { c.UserID = userID }
func (c *CartItem) OwnerID() string { return c.UserID }
