package advisor

import "realty-uae-backend/internal/domain"

// FallbackStrategy is shown when the strategy request fails
const FallbackStrategy = "Unable to generate custom strategy at this moment. Our team will contact you shortly."

// FallbackInsights returns the districts served when the market summary request fails.
// A fresh slice is returned on every call.
func FallbackInsights() []domain.MarketInsight {
	return []domain.MarketInsight{
		{ID: "palm", Area: "Palm Jumeirah", ROI: 10.5, Trend: domain.TrendUp, AvgPrice: "AED 5M", Coordinates: domain.Coordinates{X: 20, Y: 45}, Description: "Iconic luxury island destination with high capital appreciation."},
		{ID: "marina", Area: "Dubai Marina", ROI: 8.8, Trend: domain.TrendUp, AvgPrice: "AED 2M", Coordinates: domain.Coordinates{X: 15, Y: 60}, Description: "Vibrant waterfront community with strong rental demand."},
		{ID: "bbay", Area: "Business Bay", ROI: 9.2, Trend: domain.TrendStable, AvgPrice: "AED 1.5M", Coordinates: domain.Coordinates{X: 55, Y: 30}, Description: "Commercial hub of the city with luxury residential towers."},
		{ID: "jvc", Area: "JVC", ROI: 11.4, Trend: domain.TrendUp, AvgPrice: "AED 850k", Coordinates: domain.Coordinates{X: 40, Y: 70}, Description: "Family-oriented community offering high rental yields."},
		{ID: "dhills", Area: "Dubai Hills", ROI: 8.2, Trend: domain.TrendUp, AvgPrice: "AED 3.5M", Coordinates: domain.Coordinates{X: 50, Y: 55}, Description: "Premium green community with a championship golf course."},
	}
}
