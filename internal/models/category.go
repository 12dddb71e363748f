package models

type Category struct {
	Base

	Title string `gorm:"size:100;uniqueIndex;not null" json:"title" binding:"required"`

	Services []Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"services,omitempty"`
}
