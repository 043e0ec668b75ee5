package controllers

import (
	stderrors "errors"
	"log"

	"rentmag/errors"
	"rentmag/response"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps domain errors onto HTTP replies. Unrecognized
// errors are logged and answered with a generic 500.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrRoomNotFound),
		stderrors.Is(err, errors.ErrFamilyNotFound),
		stderrors.Is(err, errors.ErrInvoiceNotFound),
		stderrors.Is(err, errors.ErrUserNotFound),
		stderrors.Is(err, errors.ErrNoActiveOccupancy):
		response.NotFound(c, err.Error())
	case stderrors.Is(err, errors.ErrRoomOccupied),
		stderrors.Is(err, errors.ErrFamilyAlreadyAssigned),
		stderrors.Is(err, errors.ErrFamilyAlreadyInRoom),
		stderrors.Is(err, errors.ErrUserAlreadyExists),
		stderrors.Is(err, errors.ErrInvalidPassword),
		stderrors.Is(err, errors.ErrInvalidInvoiceStatus):
		response.BadRequest(c, err.Error())
	default:
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		log.Printf("[ERROR] unhandled service error: %v", err)
		response.ServerError(c)
	}
}
