package models

type Blog struct {
	Base

	Title    string `gorm:"size:200;not null" json:"title" binding:"required"`
	Content  string `gorm:"type:text;not null" json:"content" binding:"required"`
	ImageURL string `gorm:"size:512" json:"image_url"`

	AuthorID string `gorm:"type:uuid;not null;index" json:"author_id"`
	Author   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author,omitempty"`
}

func (b *Blog) SetOwner(userID string) { b.AuthorID = userID }
func (b *Blog) OwnerID() string { return b.AuthorID }
