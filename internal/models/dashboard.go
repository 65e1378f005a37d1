package models

type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  Trend  `json:"trend"`
	Color  string `json:"color"`
}

type VisitorPoint struct {
	Name     string `json:"name"`
	Visitors int    `json:"visitors"`
}

// Share is one slice of a pie chart.
type Share struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type MonthlyRevenue struct {
	Month    string `json:"month"`
	Revenue  int    `json:"revenue"`
	Visitors int    `json:"visitors"`
}

type TopActivity struct {
	Name     string `json:"name"`
	Visitors int    `json:"visitors"`
	Revenue  int    `json:"revenue"`
}
