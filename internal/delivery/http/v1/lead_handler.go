package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"realty-uae-backend/internal/delivery/http/response"
	"realty-uae-backend/internal/domain"
	"realty-uae-backend/internal/leadform"
	"realty-uae-backend/internal/usecase"
	"realty-uae-backend/pkg/apperror"
	"realty-uae-backend/pkg/validation"
)

type LeadHandler struct {
	leadUC   domain.LeadUsecase
	formUC   usecase.FormUsecase
	validate *validator.Validate
}

// FormatMobileRequest carries the raw mobile input
type FormatMobileRequest struct {
	Value string `json:"value"`
}

// FormatMobileResponse carries the formatted mobile input
type FormatMobileResponse struct {
	Value string `json:"value"`
}

// FormEventRequest is one form interaction applied to the client-held session
type FormEventRequest struct {
	Session leadform.Session `json:"session"`
	Type    string           `json:"type" validate:"required,form_event"`
	Field   string           `json:"field" validate:"omitempty,form_field"`
	Value   string           `json:"value"`
}

// NewLeadHandler registers the lead capture routes (public, no auth required)
func NewLeadHandler(public *gin.RouterGroup, leadUC domain.LeadUsecase, formUC usecase.FormUsecase, validate *validator.Validate) {
	handler := &LeadHandler{
		leadUC:   leadUC,
		formUC:   formUC,
		validate: validate,
	}

	leads := public.Group("/leads")
	{
		leads.GET("/options", handler.Options)
		leads.POST("/format-mobile", handler.FormatMobile)
		leads.POST("/form/events", handler.FormEvent)
		leads.POST("", handler.Submit)
	}
}

// Options godoc
// @Summary      Lead Form Options
// @Description  Budget ranges and property types the form offers, with their defaults
// @Tags         leads
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.LeadOptions}
// @Router       /leads/options [get]
func (h *LeadHandler) Options(c *gin.Context) {
	response.Success(c, http.StatusOK, "Lead form options", h.leadUC.Options())
}

// FormatMobile godoc
// @Summary      Format Mobile Input
// @Description  Applies the as-you-type UAE mobile formatter. Input not starting with + or 971 is returned unchanged.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        request  body      FormatMobileRequest  true  "Raw input"
// @Success      200      {object}  response.Response{data=FormatMobileResponse}
// @Failure      400      {object}  response.Response
// @Router       /leads/format-mobile [post]
func (h *LeadHandler) FormatMobile(c *gin.Context) {
	var req FormatMobileRequest
	if !h.bind(c, &req) {
		return
	}
	response.Success(c, http.StatusOK, "Mobile formatted", FormatMobileResponse{Value: h.formUC.FormatMobile(req.Value)})
}

// FormEvent godoc
// @Summary      Apply Form Event
// @Description  Applies an edit, blur, submit, complete or reset event to the lead form session and returns the next session with field statuses, visible errors and submit gating.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        request  body      FormEventRequest  true  "Session and event"
// @Success      200      {object}  response.Response{data=leadform.View}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /leads/form/events [post]
func (h *LeadHandler) FormEvent(c *gin.Context) {
	var req FormEventRequest
	if !h.bind(c, &req) {
		return
	}

	view, err := h.formUC.ApplyEvent(req.Session, leadform.Event{
		Type:  leadform.EventType(req.Type),
		Field: leadform.Field(req.Field),
		Value: req.Value,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Form updated", view)
}

// Submit godoc
// @Summary      Submit Lead
// @Description  Validates the investor's contact details and returns an AI investment strategy. Invalid contact fields return 422 with per-field errors and the strategy is not requested.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        lead  body      domain.LeadData  true  "Lead"
// @Success      200   {object}  response.Response{data=domain.StrategyResult}
// @Failure      400   {object}  response.Response
// @Failure      422   {object}  response.Response{error=domain.ValidationState}
// @Router       /leads [post]
func (h *LeadHandler) Submit(c *gin.Context) {
	var lead domain.LeadData
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.Error(bindError(err))
		return
	}

	result, err := h.leadUC.SubmitLead(c.Request.Context(), lead)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Strategy ready", result)
}

func (h *LeadHandler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Error(bindError(err))
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
		return false
	}
	return true
}

func bindError(err error) *apperror.AppError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.New(http.StatusRequestEntityTooLarge, "Request body too large", err)
	}
	return apperror.New(http.StatusBadRequest, "Invalid request body", err)
}
