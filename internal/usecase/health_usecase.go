package usecase

import (
	"context"
	"time"
)

// HealthChecker probes one dependency
type HealthChecker func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	checks map[string]HealthChecker
}

// NewHealthUsecase creates the health usecase. Dependencies in checks are probed on every call.
func NewHealthUsecase(checks map[string]HealthChecker) HealthUsecase {
	return &healthUsecase{checks: checks}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	for name, check := range u.checks {
		if err := check(ctx); err != nil {
			status[name] = "unavailable"
			status["status"] = "degraded"
			continue
		}
		status[name] = "ok"
	}
	return status
}
