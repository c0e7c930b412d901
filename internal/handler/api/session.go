package api

import (
	"errors"
	"net/http"

	"github.com/Jes6241/parquimetros-api/internal/handler/dto/request"
	"github.com/Jes6241/parquimetros-api/internal/handler/dto/response"
	"github.com/Jes6241/parquimetros-api/internal/handler/httperr"
	"github.com/Jes6241/parquimetros-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	commands commands.SessionCommands
}

func NewSessionHandler(cmds commands.SessionCommands) *SessionHandler {
	return &SessionHandler{commands: cmds}
}

// @Summary Register a parking payment
// @Description Create a parking session for a plate
// @Tags parking
// @Accept json
// @Produce json
// @Param request body request.PayRequest true "Payment request"
// @Success 201 {object} response.PayResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/parking/pay [post]
func (h *SessionHandler) Pay(c *gin.Context) {
	var req request.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Placa y minutos son requeridos")
		return
	}

	view, err := h.commands.Pay(c.Request.Context(), commands.PayInput{
		Plate:         req.Plate,
		Zone:          req.ZoneOrEmpty(),
		Location:      req.Location,
		Minutes:       req.Minutes,
		Amount:        req.AmountOrZero(),
		PaymentMethod: req.PaymentMethodOrEmpty(),
		MeterID:       req.MeterID,
	})
	if err != nil {
		h.abortCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromPayView(view))
}

// @Summary Verify a plate
// @Description Check whether a plate has a valid parking session
// @Tags parking
// @Produce json
// @Param plate path string true "License plate"
// @Success 200 {object} response.VerifyValidResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/parking/verify/{plate} [get]
func (h *SessionHandler) Verify(c *gin.Context) {
	result, err := h.commands.Verify(c.Request.Context(), c.Param("plate"))
	if err != nil {
		h.abortCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromVerifyResult(result))
}

// @Summary Extend a parking session
// @Description Add time to the latest active session of a plate
// @Tags parking
// @Accept json
// @Produce json
// @Param request body request.ExtendRequest true "Extension request"
// @Success 200 {object} response.ExtendResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/parking/extend [post]
func (h *SessionHandler) Extend(c *gin.Context) {
	var req request.ExtendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Placa y minutos extra son requeridos")
		return
	}

	view, err := h.commands.Extend(c.Request.Context(), commands.ExtendInput{
		Plate:        req.Plate,
		ExtraMinutes: req.ExtraMinutes,
		ExtraAmount:  req.ExtraAmountOrZero(),
	})
	if err != nil {
		h.abortCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromExtendView(view, req.ExtraMinutes))
}

// @Summary Mark a session as fined
// @Description Flag a parking session as fined by its id
// @Tags parking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body request.MarkFinedRequest false "Fine reference"
// @Success 200 {object} response.MarkFinedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/parking/{id}/mark-fined [patch]
func (h *SessionHandler) MarkFined(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "ID de sesión inválido")
		return
	}

	var req request.MarkFinedRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil && bindErr.Error() != "EOF" {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Cuerpo de solicitud inválido")
		return
	}

	view, err := h.commands.MarkFined(c.Request.Context(), id, req.FineReference)
	if err != nil {
		h.abortCommandError(c, err)
		return
	}

	resp, err := response.FromMarkFinedView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) abortCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidPlate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Placa inválida")
	case errors.Is(err, commands.ErrInvalidMinutes):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Los minutos deben ser mayores a cero")
	case errors.Is(err, commands.ErrInvalidAmount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "El monto no puede ser negativo")
	case errors.Is(err, commands.ErrActiveSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No hay sesión activa para esta placa")
	case errors.Is(err, commands.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Sesión no encontrada")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
