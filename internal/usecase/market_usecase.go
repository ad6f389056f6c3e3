package usecase

import (
	"context"
	"errors"
	"time"

	"realty-uae-backend/internal/advisor"
	"realty-uae-backend/internal/domain"
	"realty-uae-backend/pkg/logger"
)

// MarketSummarizer produces the district list. It never fails.
type MarketSummarizer interface {
	MarketSummary(ctx context.Context) advisor.MarketSummary
}

type marketUsecase struct {
	summarizer MarketSummarizer
	cache      domain.InsightCache
	ttl        time.Duration
}

// NewMarketUsecase creates the market usecase. cache may be nil to always ask the model.
func NewMarketUsecase(summarizer MarketSummarizer, cache domain.InsightCache, ttl time.Duration) domain.MarketUsecase {
	return &marketUsecase{
		summarizer: summarizer,
		cache:      cache,
		ttl:        ttl,
	}
}

func (uc *marketUsecase) Board(ctx context.Context, selectedID string) (domain.MarketBoard, error) {
	insights, fallback := uc.insights(ctx)
	board := domain.NewMarketBoard(insights, fallback)
	if selectedID != "" {
		board, _ = board.Select(selectedID)
	}
	return board, nil
}

// insights serves the cached summary when present. Fallback content is never cached
// so the next request tries the model again.
func (uc *marketUsecase) insights(ctx context.Context) ([]domain.MarketInsight, bool) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err == nil {
			return cached, false
		}
		if !errors.Is(err, domain.ErrInsightsCacheMiss) {
			logger.Log.Warn("market insight cache read failed", "error", err)
		}
	}

	summary := uc.summarizer.MarketSummary(ctx)
	if !summary.Fallback && uc.cache != nil && uc.ttl > 0 {
		if err := uc.cache.Set(ctx, summary.Insights, uc.ttl); err != nil {
			logger.Log.Warn("market insight cache write failed", "error", err)
		}
	}
	return summary.Insights, summary.Fallback
}

func (uc *marketUsecase) Chart(highlightArea string) domain.ROIChart {
	return domain.NewROIChart(highlightArea)
}
