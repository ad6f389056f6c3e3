package domain

import (
	"context"
	"errors"
	"time"
)

// Trend is the direction of a district's market
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Coordinates position a district marker on the map, in percent of width and height
type Coordinates struct {
	X float64 `json:"x" validate:"gte=0,lte=100"`
	Y float64 `json:"y" validate:"gte=0,lte=100"`
}

// MarketInsight describes one district's investment metrics
type MarketInsight struct {
	ID          string      `json:"id" validate:"required"`
	Area        string      `json:"area" validate:"required"`
	ROI         float64     `json:"roi" validate:"gte=0"`
	Trend       Trend       `json:"trend" validate:"required,oneof=up down stable"`
	AvgPrice    string      `json:"avgPrice" validate:"required"`
	Description string      `json:"description,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}

// MarketBoard is the market section state: the insights and the single selected district.
// An empty SelectedID means nothing is selected.
type MarketBoard struct {
	Insights   []MarketInsight `json:"insights"`
	SelectedID string          `json:"selected_id,omitempty"`
	Fallback   bool            `json:"fallback"`
}

// NewMarketBoard selects the first district, if any
func NewMarketBoard(insights []MarketInsight, fallback bool) MarketBoard {
	b := MarketBoard{Insights: insights, Fallback: fallback}
	if len(insights) > 0 {
		b.SelectedID = insights[0].ID
	}
	return b
}

// Select moves the selection to id. Unknown ids leave the board unchanged and return false.
func (b MarketBoard) Select(id string) (MarketBoard, bool) {
	for _, in := range b.Insights {
		if in.ID == id {
			b.SelectedID = id
			return b, true
		}
	}
	return b, false
}

// Selected returns the selected district
func (b MarketBoard) Selected() (MarketInsight, bool) {
	if b.SelectedID == "" {
		return MarketInsight{}, false
	}
	for _, in := range b.Insights {
		if in.ID == b.SelectedID {
			return in, true
		}
	}
	return MarketInsight{}, false
}

// ChartBar is one bar of the comparative ROI chart
type ChartBar struct {
	Name        string  `json:"name"`
	ROI         float64 `json:"roi"`
	Highlighted bool    `json:"highlighted"`
}

// ROIChart is the comparative ROI analysis rendered next to the selected district
type ROIChart struct {
	Bars      []ChartBar `json:"bars"`
	YMin      float64    `json:"y_min"`
	YMax      float64    `json:"y_max"`
	TargetMin float64    `json:"target_min"`
	TargetMax float64    `json:"target_max"`
}

// comparativeROI is the fixed series shown on the chart, in display order
var comparativeROI = []ChartBar{
	{Name: "Business Bay", ROI: 9.2},
	{Name: "Palm Jumeirah", ROI: 10.5},
	{Name: "Dubai Hills", ROI: 8.2},
	{Name: "Dubai Marina", ROI: 8.8},
	{Name: "JVC", ROI: 11.4},
}

// NewROIChart builds the chart, highlighting the bar whose name equals highlightArea
func NewROIChart(highlightArea string) ROIChart {
	bars := make([]ChartBar, len(comparativeROI))
	for i, bar := range comparativeROI {
		bar.Highlighted = highlightArea != "" && bar.Name == highlightArea
		bars[i] = bar
	}
	return ROIChart{Bars: bars, YMin: 0, YMax: 14, TargetMin: 8, TargetMax: 12}
}

var ErrInsightsCacheMiss = errors.New("market insights not cached")

// InsightCache stores a successful market summary between requests
type InsightCache interface {
	Get(ctx context.Context) ([]MarketInsight, error)
	Set(ctx context.Context, insights []MarketInsight, ttl time.Duration) error
}

// MarketUsecase defines the interface for the market intelligence section
type MarketUsecase interface {
	// Board returns the insights with selectedID selected, or the first district when
	// selectedID is empty or unknown
	Board(ctx context.Context, selectedID string) (MarketBoard, error)
	// Chart returns the comparative ROI series with highlightArea emphasised
	Chart(highlightArea string) ROIChart
}
