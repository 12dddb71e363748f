package models

type Review struct {
	Base

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	ServiceID string   `gorm:"type:uuid;not null;index" json:"service_id" binding:"required,uuid"`
	Service   *Service `json:"service,omitempty"`

	Rating  int    `gorm:"not null" json:"rating" binding:"required,min=1,max=5"`
	Comment string `gorm:"type:text" json:"comment"`
}

func (r *Review) SetOwner(userID string) { r.UserID = userID }
func (r *Review) OwnerID() string { return r.UserID }
