package service

import (
	"context"
	"sync"
	"time"

	"tiffin-pos-frontend/internal/domain"

	"github.com/rs/zerolog"
)

// SalesReportService holds the last successfully loaded aggregate. A failed
// reload keeps the prior data visible rather than blanking the report.
type SalesReportService struct {
	mu       sync.Mutex
	backend  Backend
	notifier Notifier
	log      zerolog.Logger
	month    int
	year     int
	data     *domain.SalesData
}

func NewSalesReportService(backend Backend, notifier Notifier, log zerolog.Logger) *SalesReportService {
	return &SalesReportService{
		backend:  backend,
		notifier: notifier,
		log:      log.With().Str("component", "sales-report").Logger(),
	}
}

// Init defaults the selected period to the current month and year.
func (s *SalesReportService) Init(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.month = int(now.Month())
	s.year = now.Year()
}

func (s *SalesReportService) Period() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.month, s.year
}

func (s *SalesReportService) LoadSalesData(ctx context.Context, month, year int) (*domain.SalesData, error) {
	data, err := s.backend.SalesData(ctx, month, year)
	if err != nil {
		s.log.Error().Err(err).Int("month", month).Int("year", year).Msg("failed to load sales data")
		s.notifier.Error("Error loading sales data")
		return nil, err
	}
	s.mu.Lock()
	s.month = month
	s.year = year
	s.data = data
	s.mu.Unlock()
	return data, nil
}

func (s *SalesReportService) Data() *domain.SalesData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

type Summary struct {
	TotalSales    float64
	TotalOrders   int
	AvgOrderValue float64
}

// Summary derives the average order value client-side. Zero orders yields a
// zero average.
func (s *SalesReportService) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return Summary{}
	}
	summary := Summary{
		TotalSales:  s.data.TotalSales,
		TotalOrders: s.data.TotalOrders,
	}
	if s.data.TotalOrders > 0 {
		summary.AvgOrderValue = s.data.TotalSales / float64(s.data.TotalOrders)
	}
	return summary
}

var _ SalesReportServiceInterface = (*SalesReportService)(nil)
