package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"realty-uae-backend/internal/delivery/http/response"
	"realty-uae-backend/internal/domain"
)

type MarketHandler struct {
	marketUC domain.MarketUsecase
}

// NewMarketHandler registers the market intelligence routes
func NewMarketHandler(public *gin.RouterGroup, marketUC domain.MarketUsecase) {
	handler := &MarketHandler{marketUC: marketUC}

	market := public.Group("/market")
	{
		market.GET("/insights", handler.Insights)
		market.GET("/chart", handler.Chart)
	}
}

// Insights godoc
// @Summary      Market Insights
// @Description  Top performing districts with the selected one. Falls back to a fixed list when the AI is unavailable.
// @Tags         market
// @Produce      json
// @Param        selected  query     string  false  "District id to select"
// @Success      200       {object}  response.Response{data=domain.MarketBoard}
// @Router       /market/insights [get]
func (h *MarketHandler) Insights(c *gin.Context) {
	board, err := h.marketUC.Board(c.Request.Context(), c.Query("selected"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Market insights", board)
}

// Chart godoc
// @Summary      Comparative ROI Chart
// @Description  Average ROI by district, with the given area highlighted
// @Tags         market
// @Produce      json
// @Param        highlight  query     string  false  "Area name to highlight"
// @Success      200        {object}  response.Response{data=domain.ROIChart}
// @Router       /market/chart [get]
func (h *MarketHandler) Chart(c *gin.Context) {
	response.Success(c, http.StatusOK, "Comparative ROI", h.marketUC.Chart(c.Query("highlight")))
}
