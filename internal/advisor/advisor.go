// Package advisor wraps the generative AI model behind the two calls the site makes.
// Neither call returns an error: failures are logged and replaced with fallback content.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"realty-uae-backend/internal/domain"
	"realty-uae-backend/internal/observability/metrics"
	"realty-uae-backend/pkg/gemini"
)

const (
	opStrategy      = "strategy"
	opMarketSummary = "market_summary"
)

// Generator is the text generation backend; *gemini.Client implements it
type Generator interface {
	Generate(ctx context.Context, req gemini.Request) (string, error)
}

// Strategy is the investment narrative returned for a lead
type Strategy struct {
	Text     string
	Fallback bool
}

// MarketSummary is the list of districts for the market section
type MarketSummary struct {
	Insights []domain.MarketInsight
	Fallback bool
}

type Service struct {
	gen      Generator
	validate *validator.Validate
	log      *slog.Logger
	metrics  *metrics.LeadMetrics
	now      func() time.Time
}

// NewService creates the advisor. metrics may be nil.
func NewService(gen Generator, log *slog.Logger, m *metrics.LeadMetrics) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		gen:      gen,
		validate: validator.New(),
		log:      log,
		metrics:  m,
		now:      time.Now,
	}
}

// InvestmentStrategy asks for a strategy tailored to the lead
func (s *Service) InvestmentStrategy(ctx context.Context, lead domain.LeadData) Strategy {
	start := time.Now()
	text, err := s.investmentStrategy(ctx, lead)
	fallback := err != nil
	s.metrics.ObserveAdvisorCall(opStrategy, fallback, time.Since(start).Seconds())

	if fallback {
		s.log.Error("Gemini strategy error", "error", err)
		return Strategy{Text: FallbackStrategy, Fallback: true}
	}
	return Strategy{Text: text}
}

func (s *Service) investmentStrategy(ctx context.Context, lead domain.LeadData) (string, error) {
	prompt, err := strategyPrompt(lead, s.now().Year())
	if err != nil {
		return "", fmt.Errorf("advisor: render strategy prompt: %w", err)
	}
	return s.gen.Generate(ctx, gemini.Request{
		System: strategySystem,
		Prompt: prompt,
	})
}

// MarketSummary asks for the top performing districts
func (s *Service) MarketSummary(ctx context.Context) MarketSummary {
	start := time.Now()
	insights, err := s.marketSummary(ctx)
	fallback := err != nil
	s.metrics.ObserveAdvisorCall(opMarketSummary, fallback, time.Since(start).Seconds())

	if fallback {
		s.log.Warn("Gemini market summary unavailable, serving fallback districts", "error", err)
		return MarketSummary{Insights: FallbackInsights(), Fallback: true}
	}
	return MarketSummary{Insights: insights}
}

func (s *Service) marketSummary(ctx context.Context) ([]domain.MarketInsight, error) {
	text, err := s.gen.Generate(ctx, gemini.Request{
		Prompt:           marketSummaryPrompt,
		ResponseMIMEType: "application/json",
		ResponseSchema:   marketSummarySchema,
	})
	// a response without text is an empty list, not a failure
	if err != nil && !errors.Is(err, gemini.ErrEmptyContent) {
		return nil, err
	}
	return s.parseInsights(text)
}

// parseInsights decodes the model's JSON. An empty body is an empty list.
func (s *Service) parseInsights(text string) ([]domain.MarketInsight, error) {
	if text == "" {
		text = "[]"
	}

	var insights []domain.MarketInsight
	if err := json.Unmarshal([]byte(text), &insights); err != nil {
		return nil, fmt.Errorf("advisor: decode market summary: %w", err)
	}

	seen := make(map[string]struct{}, len(insights))
	for i := range insights {
		if err := s.validate.Struct(insights[i]); err != nil {
			return nil, fmt.Errorf("advisor: market summary record %d: %w", i, err)
		}
		if _, dup := seen[insights[i].ID]; dup {
			return nil, fmt.Errorf("advisor: market summary record %d: %w", i, errDuplicateID)
		}
		seen[insights[i].ID] = struct{}{}
	}
	return insights, nil
}

var errDuplicateID = errors.New("duplicate district id")
