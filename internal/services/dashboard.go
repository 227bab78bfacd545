package services

import (
	"context"
	"time"

	"bazario-backend/internal/models"
	"bazario-backend/internal/repository"
)

const dayFormat = "2006-01-02"

type DashboardService struct {
	products repository.Products
	orders   repository.Orders
	payments repository.Payments
}

func NewDashboardService(products repository.Products, orders repository.Orders, payments repository.Payments) *DashboardService {
	return &DashboardService{products: products, orders: orders, payments: payments}
}

type ChartPoint struct {
	Date   string `json:"date"`
	Income int64  `json:"income"`
}

type DashboardData struct {
	TopProducts    []models.Product `json:"topProducts"`
	RecentProducts []models.Product `json:"recentProducts"`
	OrderCount     int64            `json:"orderCount"`
	ProductCount   int64            `json:"productCount"`
	ChartData      []ChartPoint     `json:"chartData"`
	TodayIncome    int64            `json:"todayIncome"`
}

func (s *DashboardService) Build(ctx context.Context) (*DashboardData, error) {
	top, err := s.products.TopSelling(ctx, 5)
	if err != nil {
		return nil, err
	}
	recent, err := s.products.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}
	orderCount, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	productCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.All(ctx)
	if err != nil {
		return nil, err
	}

	chart := BucketByDay(payments)

	return &DashboardData{
		TopProducts:    top,
		RecentProducts: recent,
		OrderCount:     orderCount,
		ProductCount:   productCount,
		ChartData:      chart,
		TodayIncome:    incomeOn(chart, time.Now()),
	}, nil
}

// BucketByDay folds payments into per-calendar-date income sums. Buckets
// appear in first-occurrence order, so a created-time-sorted input yields
// an ascending chart.
func BucketByDay(payments []models.Payment) []ChartPoint {
	index := make(map[string]int)
	points := make([]ChartPoint, 0)
	for _, p := range payments {
		date := p.CreatedAt.Format(dayFormat)
		if i, ok := index[date]; ok {
			points[i].Income += p.Price
			continue
		}
		index[date] = len(points)
		points = append(points, ChartPoint{Date: date, Income: p.Price})
	}
	return points
}

// incomeOn is absent-safe: a day with no sales reports zero.
func incomeOn(points []ChartPoint, day time.Time) int64 {
	date := day.Format(dayFormat)
	for _, p := range points {
		if p.Date == date {
			return p.Income
		}
	}
	return 0
}
