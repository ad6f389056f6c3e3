package advisor

import (
	"bytes"
	"text/template"

	"github.com/google/generative-ai-go/genai"

	"realty-uae-backend/internal/domain"
)

const strategySystem = "You are a senior UAE Real Estate Investment Consultant for Realty UAE. " +
	"Provide concise, high-value advice. Always target a premium 8-12% ROI in your recommendations."

var strategyTemplate = template.Must(template.New("strategy").Parse(
	`Provide a high-level real estate investment strategy for a client in the UAE.
Interest: {{.PropertyType}}
Budget: {{.Budget}}
Client: {{.Email}} / {{.Mobile}}

Focus on:
1. Top areas for {{.PropertyType}} in Dubai.
2. Expected ROI percentage for this specific category (Ensure you suggest returns between 8% and 12%).
3. Market sentiment for {{.PropertyType}} in {{.Year}}.
Keep it professional, high-end, and enticing.`))

const marketSummaryPrompt = `List 5 top performing investment districts in Dubai (Palm Jumeirah, Dubai Marina, Business Bay, JVC, Dubai Hills).
Include ROI (between 8.0 and 12.0), trend, and avgPrice.
Assign approximate coordinates (x: 0-100, y: 0-100) where x is west-to-east and y is north-to-south.`

type strategyPromptData struct {
	domain.LeadData
	Year int
}

func strategyPrompt(lead domain.LeadData, year int) (string, error) {
	var buf bytes.Buffer
	if err := strategyTemplate.Execute(&buf, strategyPromptData{LeadData: lead, Year: year}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// marketSummarySchema constrains the market summary to an array of MarketInsight records
var marketSummarySchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":          {Type: genai.TypeString},
			"area":        {Type: genai.TypeString},
			"roi":         {Type: genai.TypeNumber},
			"trend":       {Type: genai.TypeString},
			"avgPrice":    {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"coordinates": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"x": {Type: genai.TypeNumber},
					"y": {Type: genai.TypeNumber},
				},
				Required: []string{"x", "y"},
			},
		},
		Required: []string{"id", "area", "roi", "trend", "avgPrice", "coordinates"},
	},
}
