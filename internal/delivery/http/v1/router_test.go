package v1_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"realty-uae-backend/config"
	"realty-uae-backend/internal/advisor"
	v1 "realty-uae-backend/internal/delivery/http/v1"
	"realty-uae-backend/internal/domain"
	"realty-uae-backend/internal/leadform"
	"realty-uae-backend/internal/observability/metrics"
	"realty-uae-backend/internal/usecase"
	"realty-uae-backend/pkg/apperror"
	"realty-uae-backend/pkg/validation"
)

type MockLeadUsecase struct {
	mock.Mock
}

func (m *MockLeadUsecase) Options() domain.LeadOptions {
	return m.Called().Get(0).(domain.LeadOptions)
}

func (m *MockLeadUsecase) SubmitLead(ctx context.Context, lead domain.LeadData) (*domain.StrategyResult, error) {
	args := m.Called(ctx, lead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StrategyResult), args.Error(1)
}

type fallbackSummarizer struct{}

func (fallbackSummarizer) MarketSummary(context.Context) advisor.MarketSummary {
	return advisor.MarketSummary{Insights: advisor.FallbackInsights(), Fallback: true}
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     json.RawMessage `json:"error"`
	RequestID string          `json:"request_id"`
}

func newRouter(t *testing.T, leadUC domain.LeadUsecase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	metrics.NewLeadMetrics(reg)

	return v1.NewRouter(v1.RouterDeps{
		LeadUC:   leadUC,
		FormUC:   usecase.NewFormUsecase(),
		MarketUC: usecase.NewMarketUsecase(fallbackSummarizer{}, nil, 0),
		HealthUC: usecase.NewHealthUsecase(nil),
		Validate: usecase.NewValidator(),
		Gatherer: reg,
		Config:   &config.Config{Environment: "development", FrontendURL: "https://app.realtyuae.ae"},
	})
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if bytes.HasPrefix(w.Body.Bytes(), []byte("{")) {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestHealth(t *testing.T) {
	r := newRouter(t, new(MockLeadUsecase))
	w, env := do(t, r, http.MethodGet, "/v1/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, env.RequestID, w.Header().Get("X-Request-ID"))
}

func TestSubmitLead(t *testing.T) {
	t.Run("Should return 422 with field errors", func(t *testing.T) {
		leadUC := new(MockLeadUsecase)
		state := domain.ValidationState{Email: validation.ValidateEmail("")}
		leadUC.On("SubmitLead", mock.Anything, mock.Anything).
			Return(nil, apperror.Unprocessable("Please correct the highlighted fields", state))

		w, env := do(t, newRouter(t, leadUC), http.MethodPost, "/v1/leads", domain.LeadData{Mobile: "0501234567"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.False(t, env.Success)

		var got domain.ValidationState
		require.NoError(t, json.Unmarshal(env.Error, &got))
		require.NotNil(t, got.Email)
		assert.Equal(t, validation.KindRequired, got.Email.Kind)
		assert.Equal(t, validation.MsgEmailRequired, got.Email.Message)
		assert.Nil(t, got.Mobile)
	})

	t.Run("Should return the strategy", func(t *testing.T) {
		lead := domain.LeadData{
			Email: "a@b.co", Mobile: "0501234567",
			Budget: domain.BudgetMid, PropertyType: domain.PropertyApartment,
		}
		leadUC := new(MockLeadUsecase)
		leadUC.On("SubmitLead", mock.Anything, lead).
			Return(&domain.StrategyResult{Strategy: "Hold for yield."}, nil)

		w, env := do(t, newRouter(t, leadUC), http.MethodPost, "/v1/leads", lead)
		assert.Equal(t, http.StatusOK, w.Code)

		var got domain.StrategyResult
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Hold for yield.", got.Strategy)
		leadUC.AssertExpectations(t)
	})

	t.Run("Should reject malformed bodies", func(t *testing.T) {
		r := newRouter(t, new(MockLeadUsecase))
		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequestBodyLimit(t *testing.T) {
	r := newRouter(t, new(MockLeadUsecase))

	w, _ := do(t, r, http.MethodPost, "/v1/leads/format-mobile", v1.FormatMobileRequest{
		Value: strings.Repeat("9", 128<<10),
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestLeadOptions(t *testing.T) {
	leadUC := new(MockLeadUsecase)
	leadUC.On("Options").Return(domain.LeadOptions{DefaultBudget: domain.BudgetMid})

	w, env := do(t, newRouter(t, leadUC), http.MethodGet, "/v1/leads/options", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"default_budget":"AED 1M - 3M"`)
}

func TestFormatMobile(t *testing.T) {
	r := newRouter(t, new(MockLeadUsecase))

	w, env := do(t, r, http.MethodPost, "/v1/leads/format-mobile", v1.FormatMobileRequest{Value: "971501234567"})
	assert.Equal(t, http.StatusOK, w.Code)

	var got v1.FormatMobileResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "+971 50 123 4567", got.Value)
}

func TestFormEvents(t *testing.T) {
	r := newRouter(t, new(MockLeadUsecase))

	t.Run("Should return statuses and gating", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/v1/leads/form/events", v1.FormEventRequest{
			Session: leadform.NewSession(),
			Type:    "blur",
			Field:   "email",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var view leadform.View
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, leadform.StatusTouchedInvalid, view.Statuses[leadform.FieldEmail])
		assert.Equal(t, leadform.StatusPristine, view.Statuses[leadform.FieldMobile])
		assert.True(t, view.SubmitDisabled)
	})

	t.Run("Should accept long edits", func(t *testing.T) {
		email := strings.Repeat("a", 300) + "@realtyuae.ae"
		w, env := do(t, r, http.MethodPost, "/v1/leads/form/events", v1.FormEventRequest{
			Session: leadform.NewSession(),
			Type:    "edit",
			Field:   "email",
			Value:   email,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var view leadform.View
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, email, view.Session.Form.Data.Email)
		assert.Equal(t, leadform.StatusTouchedValid, view.Statuses[leadform.FieldEmail])
	})

	t.Run("Should reject unknown event types", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/v1/leads/form/events", v1.FormEventRequest{
			Session: leadform.NewSession(),
			Type:    "hover",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Message, "Event Type")
	})

	t.Run("Should return 409 outside the phase", func(t *testing.T) {
		w, _ := do(t, r, http.MethodPost, "/v1/leads/form/events", v1.FormEventRequest{
			Session: leadform.NewSession(),
			Type:    "reset",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestMarket(t *testing.T) {
	r := newRouter(t, new(MockLeadUsecase))

	w, env := do(t, r, http.MethodGet, "/v1/market/insights?selected=jvc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var board domain.MarketBoard
	require.NoError(t, json.Unmarshal(env.Data, &board))
	assert.True(t, board.Fallback)
	assert.Len(t, board.Insights, 5)
	assert.Equal(t, "jvc", board.SelectedID)

	w, env = do(t, r, http.MethodGet, "/v1/market/chart?highlight=JVC", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var chart domain.ROIChart
	require.NoError(t, json.Unmarshal(env.Data, &chart))
	assert.Equal(t, float64(14), chart.YMax)
	assert.True(t, chart.Bars[4].Highlighted)
}

func TestCORS(t *testing.T) {
	r := newRouter(t, new(MockLeadUsecase))

	req := httptest.NewRequest(http.MethodOptions, "/v1/leads", nil)
	req.Header.Set("Origin", "https://app.realtyuae.ae")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.realtyuae.ae", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/leads", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(t, new(MockLeadUsecase))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
