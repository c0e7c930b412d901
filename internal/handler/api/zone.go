package api

import (
	"net/http"

	"github.com/Jes6241/parquimetros-api/internal/handler/dto/response"
	"github.com/Jes6241/parquimetros-api/internal/handler/httperr"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ZoneHandler struct {
	queries queries.ZoneQueries
}

func NewZoneHandler(qrs queries.ZoneQueries) *ZoneHandler {
	return &ZoneHandler{queries: qrs}
}

// @Summary List parking zones
// @Description Active zones with their hourly rates
// @Tags parking
// @Produce json
// @Success 200 {object} response.ZoneListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/parking/zones [get]
func (h *ZoneHandler) List(c *gin.Context) {
	zones, err := h.queries.ListZones(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, response.FromZoneViews(zones))
}
