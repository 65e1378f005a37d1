package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"github.com/Eursukkul/aquaagro-admin/internal/repository"
)

var ErrUnknownPeriod = errors.New("period must be weekly, monthly or yearly")

type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// months of the revenue series each period covers. The series is monthly,
// so a week reports the latest month.
var periodMonths = map[Period]int{
	PeriodWeekly:  1,
	PeriodMonthly: 1,
	PeriodYearly:  12,
}

func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return PeriodYearly, nil
	}
	p := Period(s)
	if _, ok := periodMonths[p]; !ok {
		return "", ErrUnknownPeriod
	}
	return p, nil
}

type KeyMetrics struct {
	TotalRevenue     int    `json:"total_revenue"`
	TotalVisitors    int    `json:"total_visitors"`
	AvgVisitDuration string `json:"avg_visit_duration"`
	Satisfaction     string `json:"satisfaction"`
}

type Report struct {
	Period        Period                  `json:"period"`
	Metrics       KeyMetrics              `json:"metrics"`
	Revenue       []models.MonthlyRevenue `json:"revenue"`
	Demographics  []models.Share          `json:"demographics"`
	TopActivities []models.TopActivity    `json:"top_activities"`
}

type ReportService interface {
	Build(ctx context.Context, period string) (*Report, error)
	Export(ctx context.Context, period string) ([]byte, error)
}

type reportService struct {
	analytics repository.AnalyticsRepository
}

func NewReportService(analytics repository.AnalyticsRepository) ReportService {
	return &reportService{analytics: analytics}
}

func (s *reportService) Build(ctx context.Context, period string) (*Report, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	series, err := s.analytics.MonthlyRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}
	if n := periodMonths[p]; len(series) > n {
		series = series[len(series)-n:]
	}

	demographics, err := s.analytics.Demographics(ctx)
	if err != nil {
		return nil, fmt.Errorf("demographics: %w", err)
	}
	top, err := s.analytics.TopActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("top activities: %w", err)
	}
	duration, satisfaction, err := s.analytics.VisitQuality(ctx)
	if err != nil {
		return nil, fmt.Errorf("visit quality: %w", err)
	}

	r := &Report{
		Period:        p,
		Revenue:       series,
		Demographics:  demographics,
		TopActivities: top,
		Metrics: KeyMetrics{
			AvgVisitDuration: duration,
			Satisfaction:     satisfaction,
		},
	}
	for _, m := range series {
		r.Metrics.TotalRevenue += m.Revenue
		r.Metrics.TotalVisitors += m.Visitors
	}
	return r, nil
}
