package repository

import (
	"context"
	"slices"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
)

// CatalogRepository serves the immutable park catalog.
type CatalogRepository interface {
	FindRides(ctx context.Context) ([]models.Ride, error)
	FindRideByID(ctx context.Context, id string) (*models.Ride, error)
	FindActivities(ctx context.Context) ([]models.Activity, error)
	FindActivityByID(ctx context.Context, id string) (*models.Activity, error)
	FindStaff(ctx context.Context) ([]models.StaffMember, error)
	FindStaffByID(ctx context.Context, id string) (*models.StaffMember, error)
}

type catalogRepository struct {
	rides      []models.Ride
	activities []models.Activity
	staff      []models.StaffMember
}

// NewCatalogRepository returns a repository over the seeded catalog.
func NewCatalogRepository() CatalogRepository {
	return &catalogRepository{
		rides:      seedRides,
		activities: seedActivities,
		staff:      seedStaff,
	}
}

func (r *catalogRepository) FindRides(ctx context.Context) ([]models.Ride, error) {
	return slices.Clone(r.rides), nil
}

func (r *catalogRepository) FindRideByID(ctx context.Context, id string) (*models.Ride, error) {
	return findByID(r.rides, id, func(v models.Ride) string { return v.ID })
}

func (r *catalogRepository) FindActivities(ctx context.Context) ([]models.Activity, error) {
	return slices.Clone(r.activities), nil
}

func (r *catalogRepository) FindActivityByID(ctx context.Context, id string) (*models.Activity, error) {
	return findByID(r.activities, id, func(v models.Activity) string { return v.ID })
}

func (r *catalogRepository) FindStaff(ctx context.Context) ([]models.StaffMember, error) {
	return slices.Clone(r.staff), nil
}

func (r *catalogRepository) FindStaffByID(ctx context.Context, id string) (*models.StaffMember, error) {
	return findByID(r.staff, id, func(v models.StaffMember) string { return v.ID })
}

func findByID[T any](items []T, id string, key func(T) string) (*T, error) {
	for _, it := range items {
		if key(it) == id {
			return &it, nil
		}
	}
	return nil, ErrNotFound
}
