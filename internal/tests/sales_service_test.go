package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"tiffin-pos-frontend/internal/domain"
	"tiffin-pos-frontend/internal/mocks"
	"tiffin-pos-frontend/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSalesService(backend service.Backend, notifier service.Notifier) *service.SalesReportService {
	return service.NewSalesReportService(backend, notifier, zerolog.Nop())
}

func fixtureSales() *domain.SalesData {
	return &domain.SalesData{
		TotalSales:  300,
		TotalOrders: 4,
		TopItems: []domain.TopItem{
			{Name: "Dosa", Quantity: 5, Revenue: 250},
			{Name: "Tea", Quantity: 2, Revenue: 50},
		},
		DailySales: []domain.DailySale{
			{Date: "2026-08-01", Orders: 1, Total: 100},
			{Date: "2026-08-02", Orders: 3, Total: 200},
		},
	}
}

func TestSalesReportService_InitDefaultsToCurrentPeriod(t *testing.T) {
	svc := newSalesService(mocks.NewBackend(t), mocks.NewNotifier(t))

	svc.Init(time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC))

	month, year := svc.Period()
	assert.Equal(t, 8, month)
	assert.Equal(t, 2026, year)
}

func TestSalesReportService_Summary(t *testing.T) {
	tests := []struct {
		name    string
		data    *domain.SalesData
		wantAvg float64
	}{
		{
			name:    "average order value",
			data:    &domain.SalesData{TotalSales: 300, TotalOrders: 4},
			wantAvg: 75,
		},
		{
			name:    "zero orders yields zero average",
			data:    &domain.SalesData{TotalSales: 0, TotalOrders: 0},
			wantAvg: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			backend := mocks.NewBackend(t)
			svc := newSalesService(backend, mocks.NewNotifier(t))

			backend.On("SalesData", mock.Anything, 8, 2026).Return(testCase.data, nil).Once()
			_, err := svc.LoadSalesData(context.Background(), 8, 2026)
			require.NoError(t, err)

			summary := svc.Summary()
			assert.Equal(t, testCase.data.TotalSales, summary.TotalSales)
			assert.Equal(t, testCase.data.TotalOrders, summary.TotalOrders)
			assert.Equal(t, testCase.wantAvg, summary.AvgOrderValue)
		})
	}
}

func TestSalesReportService_SummaryWithoutData(t *testing.T) {
	svc := newSalesService(mocks.NewBackend(t), mocks.NewNotifier(t))
	assert.Equal(t, service.Summary{}, svc.Summary())
}

func TestSalesReportService_LoadFailureKeepsPriorData(t *testing.T) {
	backend := mocks.NewBackend(t)
	notifier := mocks.NewNotifier(t)
	svc := newSalesService(backend, notifier)

	backend.On("SalesData", mock.Anything, 7, 2026).Return(fixtureSales(), nil).Once()
	_, err := svc.LoadSalesData(context.Background(), 7, 2026)
	require.NoError(t, err)

	backend.On("SalesData", mock.Anything, 8, 2026).Return(nil, errors.New("backend down")).Once()
	notifier.On("Error", "Error loading sales data").Once()

	_, err = svc.LoadSalesData(context.Background(), 8, 2026)

	assert.Error(t, err)
	// stale but visible: the prior aggregate and period stay in place
	assert.Equal(t, fixtureSales(), svc.Data())
	month, year := svc.Period()
	assert.Equal(t, 7, month)
	assert.Equal(t, 2026, year)
}
