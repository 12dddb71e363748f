package models

type Service struct {
	Base

	Name        string  `gorm:"size:150;not null" json:"name" binding:"required"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null;default:0" json:"price" binding:"gte=0"`
	Location    string  `gorm:"size:150" json:"location"`
	DurationMin int     `gorm:"default:60" json:"duration_min" binding:"gte=0"`
	IsAvailable bool    `gorm:"not null" json:"is_available"`

	CategoryID string    `gorm:"type:uuid;not null;index" json:"category_id" binding:"required,uuid"`
	Category   *Category `json:"category,omitempty"`

	Images         []Image        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty" binding:"omitempty,dive"`
	Availabilities []Availability `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"availabilities,omitempty"`
	Bookings       []Booking      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"bookings,omitempty"`
	CartItems      []CartItem     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cart_items,omitempty"`
	Reviews        []Review       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reviews,omitempty"`
}

// Image is owned by its service and created together with it.
type Image struct {
	Base

	ServiceID string `gorm:"type:uuid;not null;index" json:"service_id"`
	FilePath  string `gorm:"size:512;not null" json:"file_path" binding:"required"`
}
