package api

import (
	"errors"
	"net/http"

	"github.com/Jes6241/parquimetros-api/internal/handler/dto/response"
	"github.com/Jes6241/parquimetros-api/internal/handler/httperr"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	queries queries.SessionQueries
}

func NewReportHandler(qrs queries.SessionQueries) *ReportHandler {
	return &ReportHandler{queries: qrs}
}

// @Summary List active sessions
// @Description Sessions whose paid time has not yet run out
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ActiveListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/parking/active [get]
func (h *ReportHandler) Active(c *gin.Context) {
	items, err := h.queries.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	resp, err := response.FromActiveItems(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List expired sessions
// @Description Recently run-out sessions not yet fined
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ExpiredListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/parking/expired [get]
func (h *ReportHandler) Expired(c *gin.Context) {
	items, err := h.queries.ListExpired(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	resp, err := response.FromExpiredItems(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Session history for a plate
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param plate path string true "License plate"
// @Success 200 {object} response.HistoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/parking/history/{plate} [get]
func (h *ReportHandler) History(c *gin.Context) {
	plate, views, err := h.queries.History(c.Request.Context(), c.Param("plate"))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidPlate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Placa inválida")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	resp, err := response.FromHistoryViews(plate, views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Daily statistics
// @Description Counters and revenue accumulated since local midnight
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StatisticsResponse
// @Failure 500 {object} httperr.Response
// @Router /api/parking/statistics [get]
func (h *ReportHandler) Statistics(c *gin.Context) {
	stats, err := h.queries.Statistics(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, response.FromStatistics(stats))
}
