package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByReference(ctx context.Context, ref string) (*models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByReference(ctx context.Context, ref string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).Where("reference = ?", ref).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// memoryBookingRepository keeps bookings for the lifetime of the process.
type memoryBookingRepository struct {
	mu       sync.RWMutex
	nextID   uint
	bookings []models.Booking
}

func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{nextID: 1}
}

func (r *memoryBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.Reference == booking.Reference {
			return errors.New("duplicate booking reference")
		}
	}
	booking.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *memoryBookingRepository) FindByReference(ctx context.Context, ref string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.Reference == ref {
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryBookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}
