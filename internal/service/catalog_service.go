package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/aquaagro-admin/internal/filter"
	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"github.com/Eursukkul/aquaagro-admin/internal/repository"
)

var ErrNotFound = errors.New("not found")

// AttractionSummary is the "open x/y" counter above ride and activity lists.
type AttractionSummary struct {
	Open  int `json:"open"`
	Total int `json:"total"`
}

type StaffSummary struct {
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	OnLeave      int            `json:"on_leave"`
	ByDepartment map[string]int `json:"by_department"`
}

type RideList struct {
	Rides   []models.Ride
	Summary AttractionSummary
}

type ActivityList struct {
	Activities []models.Activity
	Summary    AttractionSummary
}

type StaffList struct {
	Staff   []models.StaffMember
	Summary StaffSummary
}

type CatalogService interface {
	ListRides(ctx context.Context, c filter.Criteria) (*RideList, error)
	GetRide(ctx context.Context, id string) (*models.Ride, error)
	ListActivities(ctx context.Context, c filter.Criteria) (*ActivityList, error)
	GetActivity(ctx context.Context, id string) (*models.Activity, error)
	ListStaff(ctx context.Context, c filter.Criteria) (*StaffList, error)
	GetStaff(ctx context.Context, id string) (*models.StaffMember, error)
}

type catalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListRides(ctx context.Context, c filter.Criteria) (*RideList, error) {
	rides, err := s.repo.FindRides(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rides: %w", err)
	}
	return &RideList{
		Rides:   filter.Apply(rides, c),
		Summary: summarizeAttractions(rides),
	}, nil
}

func (s *catalogService) GetRide(ctx context.Context, id string) (*models.Ride, error) {
	return notFound(s.repo.FindRideByID(ctx, id))
}

func (s *catalogService) ListActivities(ctx context.Context, c filter.Criteria) (*ActivityList, error) {
	activities, err := s.repo.FindActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return &ActivityList{
		Activities: filter.Apply(activities, c),
		Summary:    summarizeAttractions(activities),
	}, nil
}

func (s *catalogService) GetActivity(ctx context.Context, id string) (*models.Activity, error) {
	return notFound(s.repo.FindActivityByID(ctx, id))
}

func (s *catalogService) ListStaff(ctx context.Context, c filter.Criteria) (*StaffList, error) {
	staff, err := s.repo.FindStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	summary := StaffSummary{
		Total:        len(staff),
		Active:       filter.Count(staff, "status", string(models.StaffActive)),
		OnLeave:      filter.Count(staff, "status", string(models.StaffOnLeave)),
		ByDepartment: make(map[string]int),
	}
	for _, d := range models.Departments() {
		summary.ByDepartment[d] = 0
	}
	for _, m := range staff {
		summary.ByDepartment[m.Department]++
	}

	return &StaffList{Staff: filter.Apply(staff, c), Summary: summary}, nil
}

func (s *catalogService) GetStaff(ctx context.Context, id string) (*models.StaffMember, error) {
	return notFound(s.repo.FindStaffByID(ctx, id))
}

func summarizeAttractions[T filter.Record](items []T) AttractionSummary {
	return AttractionSummary{
		Open:  filter.Count(items, "status", string(models.StatusOpen)),
		Total: len(items),
	}
}

func notFound[T any](v *T, err error) (*T, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return v, err
}
