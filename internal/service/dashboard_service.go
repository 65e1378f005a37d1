package service

import (
	"context"
	"fmt"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"github.com/Eursukkul/aquaagro-admin/internal/repository"
	"github.com/Eursukkul/aquaagro-admin/internal/stats"
)

type Overview struct {
	Stats          []models.StatCard     `json:"stats"`
	WeeklyVisitors []models.VisitorPoint `json:"weekly_visitors"`
	ActivitySplit  []models.Share        `json:"activity_split"`
	Rides          AttractionSummary     `json:"rides"`
	Activities     AttractionSummary     `json:"activities"`
	Live           stats.Snapshot        `json:"live_bookings"`
}

type DashboardService interface {
	Overview(ctx context.Context) (*Overview, error)
}

type dashboardService struct {
	analytics repository.AnalyticsRepository
	catalog   repository.CatalogRepository
	tally     *stats.Tally
}

func NewDashboardService(analytics repository.AnalyticsRepository, catalog repository.CatalogRepository, tally *stats.Tally) DashboardService {
	return &dashboardService{analytics: analytics, catalog: catalog, tally: tally}
}

func (s *dashboardService) Overview(ctx context.Context) (*Overview, error) {
	cards, err := s.analytics.StatCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("stat cards: %w", err)
	}
	weekly, err := s.analytics.WeeklyVisitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("weekly visitors: %w", err)
	}
	split, err := s.analytics.ActivitySplit(ctx)
	if err != nil {
		return nil, fmt.Errorf("activity split: %w", err)
	}
	rides, err := s.catalog.FindRides(ctx)
	if err != nil {
		return nil, fmt.Errorf("rides: %w", err)
	}
	activities, err := s.catalog.FindActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("activities: %w", err)
	}

	ov := &Overview{
		Stats:          cards,
		WeeklyVisitors: weekly,
		ActivitySplit:  split,
		Rides:          summarizeAttractions(rides),
		Activities:     summarizeAttractions(activities),
	}
	if s.tally != nil {
		ov.Live = s.tally.Snapshot()
	}
	return ov, nil
}
