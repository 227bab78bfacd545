package services

import (
	"context"
	"testing"
	"time"

	"bazario-backend/internal/models"
)

func TestBucketByDay(t *testing.T) {
	d1 := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 31, 17, 30, 0, 0, time.UTC)

	points := BucketByDay([]models.Payment{
		{Price: 100, CreatedAt: d1},
		{Price: 25, CreatedAt: d2},
		{Price: 50, CreatedAt: d1.Add(4 * time.Hour)},
	})

	if len(points) != 2 {
		t.Fatalf("buckets = %d, want 2", len(points))
	}
	if points[0].Date != "2026-08-30" || points[0].Income != 150 {
		t.Errorf("bucket[0] = %+v, want {2026-08-30 150}", points[0])
	}
	if points[1].Date != "2026-08-31" || points[1].Income != 25 {
		t.Errorf("bucket[1] = %+v, want {2026-08-31 25}", points[1])
	}
}

func TestBucketByDayEmpty(t *testing.T) {
	if points := BucketByDay(nil); len(points) != 0 {
		t.Errorf("buckets = %v, want empty", points)
	}
}

func TestDashboardBuild(t *testing.T) {
	orders := newMemOrders()
	paymentStore := &memPayments{}
	products := newMemProducts()
	svc := NewDashboardService(products, orders, paymentStore)
	ctx := context.Background()

	now := time.Now()
	products.add(models.Product{
		ProductInfo: models.ProductInfo{Name: "a", TotalSale: 5},
		CreatedAt:   now.Add(-2 * time.Hour),
	})
	products.add(models.Product{
		ProductInfo: models.ProductInfo{Name: "b", TotalSale: 9},
		CreatedAt:   now.Add(-1 * time.Hour),
	})

	orders.Create(ctx, &models.Order{CustomerUID: "u1",
		Items: []models.OrderItem{{ProductID: "p", Quantity: 1}}})

	// Payments created through the fake get CreatedAt zero; stamp one today
	// and one on another day directly.
	paymentStore.Create(ctx, &models.Payment{Price: 40})
	paymentStore.payments[0].CreatedAt = now
	paymentStore.Create(ctx, &models.Payment{Price: 10})
	paymentStore.payments[1].CreatedAt = now.AddDate(0, 0, -1)

	data, err := svc.Build(ctx)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if data.OrderCount != 1 {
		t.Errorf("orderCount = %d, want 1", data.OrderCount)
	}
	if data.ProductCount != 2 {
		t.Errorf("productCount = %d, want 2", data.ProductCount)
	}
	if len(data.TopProducts) == 0 || data.TopProducts[0].ProductInfo.Name != "b" {
		t.Errorf("top product = %+v, want b first", data.TopProducts)
	}
	if len(data.RecentProducts) == 0 || data.RecentProducts[0].ProductInfo.Name != "b" {
		t.Errorf("recent product = %+v, want b first", data.RecentProducts)
	}
	if data.TodayIncome != 40 {
		t.Errorf("todayIncome = %d, want 40", data.TodayIncome)
	}
}

func TestDashboardTodayIncomeAbsentSafe(t *testing.T) {
	svc := NewDashboardService(newMemProducts(), newMemOrders(), &memPayments{})

	data, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if data.TodayIncome != 0 {
		t.Errorf("todayIncome = %d with no sales, want 0", data.TodayIncome)
	}
}
