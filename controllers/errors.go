package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/services"
	"github.com/yeremiapane/neo-dine/utils"
)

// respondServiceError maps service errors onto the response envelope.
func respondServiceError(c *gin.Context, err error) {
	if fields, ok := services.AsFieldErrors(err); ok {
		utils.RespondFieldErrors(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	switch {
	case errors.Is(err, services.ErrNoActiveOrder):
		utils.RespondError(c, http.StatusNotFound, errors.New("No Active Orders"))
	case errors.Is(err, services.ErrDishNotFound),
		errors.Is(err, services.ErrChefNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrCartItemAbsent),
		errors.Is(err, services.ErrWizardNotOpen):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrInvalidBookingKind):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrWizardStep),
		errors.Is(err, services.ErrWizardProcessing):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid "+name))
		return 0, false
	}
	return uint(id), true
}
