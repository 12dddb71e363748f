package testutil

import (
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/booking-api/internal/models"
)

// CreateUser inserts a user; override fields with opts.
func CreateUser(t *testing.T, db *gorm.DB, opts ...func(*models.User)) models.User {
	t.Helper()

	u := models.User{
		Name:         "Test User",
		Email:        "user-" + randomSuffix() + "@example.com",
		PasswordHash: "x",
		Role:         models.RoleUser,
	}
	for _, opt := range opts {
		opt(&u)
	}

	mustCreate(t, db, &u)
	return u
}

func CreateCategory(t *testing.T, db *gorm.DB, title string) models.Category {
	t.Helper()

	c := models.Category{Title: title}
	mustCreate(t, db, &c)
	return c
}

// CreateService inserts an available service in categoryID.
func CreateService(t *testing.T, db *gorm.DB, categoryID string, opts ...func(*models.Service)) models.Service {
	t.Helper()

	s := models.Service{
		Name:        "Haircut",
		Description: "Classic haircut",
		Price:       50,
		Location:    "Downtown",
		DurationMin: 30,
		IsAvailable: true,
		CategoryID:  categoryID,
	}
	for _, opt := range opts {
		opt(&s)
	}

	mustCreate(t, db, &s)
	return s
}

func CreateAvailability(t *testing.T, db *gorm.DB, serviceID string) models.Availability {
	t.Helper()

	a := models.Availability{
		ServiceID: serviceID,
		Date:      "2099-01-15",
		StartTime: "09:00",
		EndTime:   "10:00",
	}
	mustCreate(t, db, &a)
	return a
}

func mustCreate(t *testing.T, db *gorm.DB, row any) {
	t.Helper()
	if err := db.Omit(clause.Associations).Create(row).Error; err != nil {
		t.Fatalf("testutil: create %T: %v", row, err)
	}
}
