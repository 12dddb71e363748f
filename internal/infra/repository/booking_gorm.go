package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		First(&service, "id = ?", serviceID).Error; err != nil {
		return nil, translateError(err)
	}
	return &service, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetAvailability(
	ctx context.Context,
	availabilityID string,
) (*models.Availability, error) {

	var slot models.Availability
	if err := r.db.WithContext(ctx).
		First(&slot, "id = ?", availabilityID).Error; err != nil {
		return nil, translateError(err)
	}
	return &slot, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.AvailabilityID != nil {
			var slot models.Availability
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&slot, "id = ?", *b.AvailabilityID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return httperr.ErrBusiness("availability_not_found")
				}
				return err
			}

			if slot.IsBooked || slot.ServiceID != b.ServiceID {
				return httperr.ErrBusiness("slot_unavailable")
			}

			if err := tx.Model(&slot).Update("is_booked", true).Error; err != nil {
				return err
			}
		}

		return tx.Omit(clause.Associations).Create(b).Error
	})

	return translateError(err)
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&b, "id = ?", bookingID).Error; err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
	releaseSlot bool,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(b).Error; err != nil {
			return err
		}

		if releaseSlot && b.AvailabilityID != nil {
			return tx.Model(&models.Availability{}).
				Where("id = ?", *b.AvailabilityID).
				Update("is_booked", false).Error
		}
		return nil
	})

	return translateError(err)
}

// --------------------------------------------------
// Generic CRUD store
// --------------------------------------------------

// BookingResourceRepository is the generic store for bookings. Deleting a
// booking that still holds its availability slot frees the slot in the
// same transaction.
type BookingResourceRepository struct {
	*ResourceGormRepository[models.Booking]
}

func NewBookingResourceRepository(db *gorm.DB) *BookingResourceRepository {
	return &BookingResourceRepository{
		ResourceGormRepository: NewResourceGormRepository[models.Booking](db, BookingRelations),
	}
}

func (r *BookingResourceRepository) Delete(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&b, "id = ?", id).Error; err != nil {
			return err
		}

		if b.AvailabilityID != nil && domain.HoldsSlot(domain.Status(b.Status)) {
			if err := tx.Model(&models.Availability{}).
				Where("id = ?", *b.AvailabilityID).
				Update("is_booked", false).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&b).Error
	})
	if err != nil {
		return nil, translateError(err)
	}

	return &b, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

var _ resource.Store[models.Booking] = (*BookingResourceRepository)(nil)
