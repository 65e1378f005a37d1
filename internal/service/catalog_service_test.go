package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Eursukkul/aquaagro-admin/internal/filter"
	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"github.com/Eursukkul/aquaagro-admin/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock CatalogRepository ---

type mockCatalogRepo struct {
	repository.CatalogRepository
	findRidesFn func(ctx context.Context) ([]models.Ride, error)
}

func (m *mockCatalogRepo) FindRides(ctx context.Context) ([]models.Ride, error) {
	return m.findRidesFn(ctx)
}

// --- Tests ---

func TestListRides_SearchKeepsFullSummary(t *testing.T) {
	svc := NewCatalogService(repository.NewCatalogRepository())

	list, err := svc.ListRides(context.Background(), filter.Criteria{Query: "SLIDE"})

	require.NoError(t, err)
	require.Len(t, list.Rides, 2)
	assert.Equal(t, "Aqua Tornado Slide", list.Rides[0].Name)
	assert.Equal(t, "Extreme Drop Slide", list.Rides[1].Name)
	assert.Equal(t, AttractionSummary{Open: 4, Total: 6}, list.Summary)
}

func TestListRides_StatusSelector(t *testing.T) {
	svc := NewCatalogService(repository.NewCatalogRepository())

	list, err := svc.ListRides(context.Background(), filter.Criteria{Selectors: map[string]string{"status": "maintenance"}})

	require.NoError(t, err)
	assert.Len(t, list.Rides, 2)
}

func TestListRides_RepoError(t *testing.T) {
	svc := NewCatalogService(&mockCatalogRepo{
		findRidesFn: func(ctx context.Context) ([]models.Ride, error) {
			return nil, errors.New("db connection failed")
		},
	})

	list, err := svc.ListRides(context.Background(), filter.Criteria{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db connection failed")
	assert.Nil(t, list)
}

func TestListActivities(t *testing.T) {
	svc := NewCatalogService(repository.NewCatalogRepository())

	list, err := svc.ListActivities(context.Background(), filter.Criteria{Selectors: map[string]string{"guide": "Emma Davis"}})

	require.NoError(t, err)
	require.Len(t, list.Activities, 1)
	assert.Equal(t, "AG006", list.Activities[0].ID)
	assert.Equal(t, AttractionSummary{Open: 5, Total: 6}, list.Summary)
}

func TestListStaff_SummaryAndFilters(t *testing.T) {
	svc := NewCatalogService(repository.NewCatalogRepository())

	list, err := svc.ListStaff(context.Background(), filter.Criteria{
		Query:     "miller",
		Selectors: map[string]string{"department": filter.All, "status": "active"},
	})

	require.NoError(t, err)
	require.Len(t, list.Staff, 1)
	assert.Equal(t, "John Miller", list.Staff[0].Name)

	assert.Equal(t, 7, list.Summary.Total)
	assert.Equal(t, 5, list.Summary.Active)
	assert.Equal(t, 1, list.Summary.OnLeave)
	assert.Equal(t, map[string]int{
		models.DeptAgroActivities: 4,
		models.DeptWaterRides:     2,
		models.DeptMaintenance:    1,
		models.DeptAdministration: 0,
	}, list.Summary.ByDepartment)
}

func TestListStaff_UnknownDepartment(t *testing.T) {
	svc := NewCatalogService(repository.NewCatalogRepository())

	list, err := svc.ListStaff(context.Background(), filter.Criteria{Selectors: map[string]string{"department": "Catering"}})

	require.NoError(t, err)
	assert.Empty(t, list.Staff)
}

func TestGetByID(t *testing.T) {
	svc := NewCatalogService(repository.NewCatalogRepository())
	ctx := context.Background()

	r, err := svc.GetRide(ctx, "WR002")
	require.NoError(t, err)
	assert.Equal(t, "Aqua Tornado Slide", r.Name)

	_, err = svc.GetActivity(ctx, "AG999")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetStaff(ctx, "ST999")
	assert.ErrorIs(t, err, ErrNotFound)
}
