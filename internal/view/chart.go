package view

import (
	"bytes"
	"fmt"
	"sync"

	"tiffin-pos-frontend/internal/domain"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartRegistry holds at most one live chart per id. Re-rendering replaces
// the previous instance so repeated reloads never stack chart canvases.
type ChartRegistry struct {
	mu     sync.Mutex
	charts map[string]*charts.Line
}

func NewChartRegistry() *ChartRegistry {
	return &ChartRegistry{charts: make(map[string]*charts.Line)}
}

// RenderDailySales builds the daily-totals line chart as a standalone
// document for embedding.
func (r *ChartRegistry) RenderDailySales(id string, daily []domain.DailySale) ([]byte, error) {
	labels := make([]string, 0, len(daily))
	points := make([]opts.LineData, 0, len(daily))
	for _, day := range daily {
		labels = append(labels, day.Date)
		points = append(points, opts.LineData{Value: day.Total})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "880px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: "Daily Sales (₹)"}),
	)
	line.SetXAxis(labels).AddSeries("Daily Sales (₹)", points)

	r.mu.Lock()
	delete(r.charts, id)
	r.charts[id] = line
	r.mu.Unlock()

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return nil, fmt.Errorf("render chart %s: %w", id, err)
	}
	return buf.Bytes(), nil
}

func (r *ChartRegistry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.charts)
}
