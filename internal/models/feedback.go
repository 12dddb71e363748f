package models

type Feedback struct {
	Base

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	Comment string `gorm:"type:text;not null" json:"comment" binding:"required"`
}

func (f *Feedback) SetOwner(userID string) { f.UserID = userID }
func (f *Feedback) OwnerID() string { return f.UserID }
