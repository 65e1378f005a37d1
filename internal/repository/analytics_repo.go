package repository

import (
	"context"
	"slices"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
)

// AnalyticsRepository serves the figures behind the dashboard and report charts.
type AnalyticsRepository interface {
	StatCards(ctx context.Context) ([]models.StatCard, error)
	WeeklyVisitors(ctx context.Context) ([]models.VisitorPoint, error)
	ActivitySplit(ctx context.Context) ([]models.Share, error)
	MonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenue, error)
	Demographics(ctx context.Context) ([]models.Share, error)
	TopActivities(ctx context.Context) ([]models.TopActivity, error)
	VisitQuality(ctx context.Context) (avgDuration, satisfaction string, err error)
}

type analyticsRepository struct{}

func NewAnalyticsRepository() AnalyticsRepository {
	return analyticsRepository{}
}

func (analyticsRepository) StatCards(ctx context.Context) ([]models.StatCard, error) {
	return slices.Clone(seedStatCards), nil
}

func (analyticsRepository) WeeklyVisitors(ctx context.Context) ([]models.VisitorPoint, error) {
	return slices.Clone(seedWeeklyVisitors), nil
}

func (analyticsRepository) ActivitySplit(ctx context.Context) ([]models.Share, error) {
	return slices.Clone(seedActivitySplit), nil
}

func (analyticsRepository) MonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenue, error) {
	return slices.Clone(seedMonthlyRevenue), nil
}

func (analyticsRepository) Demographics(ctx context.Context) ([]models.Share, error) {
	return slices.Clone(seedDemographics), nil
}

func (analyticsRepository) TopActivities(ctx context.Context) ([]models.TopActivity, error) {
	return slices.Clone(seedTopActivities), nil
}

func (analyticsRepository) VisitQuality(ctx context.Context) (string, string, error) {
	return seedAvgVisitDuration, seedSatisfaction, nil
}
