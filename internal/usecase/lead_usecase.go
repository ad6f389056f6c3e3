package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"realty-uae-backend/internal/advisor"
	"realty-uae-backend/internal/domain"
	"realty-uae-backend/internal/observability/metrics"
	"realty-uae-backend/pkg/apperror"
	"realty-uae-backend/pkg/audit"
	"realty-uae-backend/pkg/email"
	"realty-uae-backend/pkg/logger"
	"realty-uae-backend/pkg/validation"
)

// Strategist produces the investment narrative for a lead. It never fails.
type Strategist interface {
	InvestmentStrategy(ctx context.Context, lead domain.LeadData) advisor.Strategy
}

type leadUsecase struct {
	strategist     Strategist
	notifier       domain.LeadNotifier
	audit          *audit.Logger
	metrics        *metrics.LeadMetrics
	validate       *validator.Validate
	delay          time.Duration
	advisorContact string
}

// NewLeadUsecase creates the lead capture usecase. notifier, auditLogger and m may be nil.
func NewLeadUsecase(
	strategist Strategist,
	notifier domain.LeadNotifier,
	auditLogger *audit.Logger,
	m *metrics.LeadMetrics,
	validate *validator.Validate,
	delay time.Duration,
	advisorContact string,
) domain.LeadUsecase {
	return &leadUsecase{
		strategist:     strategist,
		notifier:       notifier,
		audit:          auditLogger,
		metrics:        m,
		validate:       validate,
		delay:          delay,
		advisorContact: advisorContact,
	}
}

func (uc *leadUsecase) Options() domain.LeadOptions {
	return domain.LeadOptions{
		BudgetRanges:        append([]domain.BudgetRange(nil), domain.BudgetRanges...),
		PropertyTypes:       append([]domain.PropertyType(nil), domain.PropertyTypes...),
		DefaultBudget:       domain.DefaultBudget,
		DefaultPropertyType: domain.DefaultPropertyType,
	}
}

// SubmitLead validates the lead from scratch and, only when both contact fields pass,
// waits for the strategy and the minimum processing delay together.
func (uc *leadUsecase) SubmitLead(ctx context.Context, lead domain.LeadData) (*domain.StrategyResult, error) {
	requestID := domain.RequestIDFrom(ctx)

	if err := uc.validate.Struct(lead); err != nil {
		uc.metrics.ObserveSubmission("rejected")
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if errs := domain.ValidateLead(lead); errs.HasErrors() {
		uc.metrics.ObserveSubmission("rejected")
		uc.audit.Log(ctx, audit.LeadEvent{
			Event:     audit.EventLeadRejected,
			Email:     lead.Email,
			RequestID: requestID,
		})
		return nil, apperror.Unprocessable("Please correct the highlighted fields", errs)
	}

	// Once started the submission runs to completion even if the client goes away.
	runCtx := context.WithoutCancel(ctx)

	var strategy advisor.Strategy
	var g errgroup.Group
	g.Go(func() error {
		strategy = uc.strategist.InvestmentStrategy(runCtx, lead)
		return nil
	})
	g.Go(func() error {
		if uc.delay <= 0 {
			return nil
		}
		timer := time.NewTimer(uc.delay)
		defer timer.Stop()
		<-timer.C
		return nil
	})
	_ = g.Wait()

	mobile, err := validation.DescribeMobile(lead.Mobile)
	if err != nil {
		logger.Log.Warn("could not describe mobile number", "error", err, "request_id", requestID)
	}

	uc.audit.Log(runCtx, audit.LeadEvent{
		Event:        audit.EventLeadCaptured,
		Email:        lead.Email,
		Mobile:       mobile.E164,
		Budget:       string(lead.Budget),
		PropertyType: string(lead.PropertyType),
		RequestID:    requestID,
	})
	if strategy.Fallback {
		uc.audit.Log(runCtx, audit.LeadEvent{Event: audit.EventStrategyFallen, RequestID: requestID})
	}

	uc.notify(runCtx, lead, mobile, strategy.Text, requestID)
	uc.metrics.ObserveSubmission("accepted")

	return &domain.StrategyResult{
		Strategy:       strategy.Text,
		Fallback:       strategy.Fallback,
		Mobile:         mobile,
		AdvisorContact: uc.advisorContact,
	}, nil
}

// notify is best effort: the investor gets the strategy regardless
func (uc *leadUsecase) notify(ctx context.Context, lead domain.LeadData, mobile validation.MobileInfo, strategy, requestID string) {
	if uc.notifier == nil {
		return
	}
	err := uc.notifier.NotifyLead(ctx, lead, mobile, strategy)
	if err == nil {
		return
	}
	if errors.Is(err, email.ErrNotConfigured) {
		logger.Log.Debug("advisor notification skipped, SMTP not configured")
		return
	}
	logger.Log.Error("failed to notify advisors", "error", err, "request_id", requestID)
	uc.audit.Log(ctx, audit.LeadEvent{
		Event:     audit.EventNotifyFailed,
		RequestID: requestID,
		Details:   map[string]string{"error": err.Error()},
	})
}
