package http

import (
	"errors"
	"net/http"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/user"
	"autoshop/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Entity bases for the numeric business codes carried in the error envelope.
// The full code is base + HTTP status, e.g. 50404 for a missing repair order.
const (
	codeUser        = 10000
	codeCustomer    = 20000
	codeVehicle     = 30000
	codeAppointment = 40000
	codeRepairOrder = 50000
)

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError classifies an application error into an HTTP status and writes
// the envelope. Internal errors are not echoed to the client.
func writeError(ctx echo.Context, base int, err error) error {
	status := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	return ctx.JSON(status, ErrorResponse{Code: base + status, Message: message})
}

// writeBadRequest reports a request that failed binding or command
// construction. Constructor errors are validation failures by definition.
func writeBadRequest(ctx echo.Context, base int, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    base + http.StatusBadRequest,
		Message: err.Error(),
	})
}

func errorStatus(err error) int {
	var notFoundErr *errs.ObjectNotFoundError
	var duplicateErr *errs.DuplicateValueError
	var conflictErr *errs.VersionConflictError

	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &duplicateErr), errors.As(err, &conflictErr):
		return http.StatusConflict
	case errors.Is(err, commands.ErrLicensePlateAlreadyRegistered),
		errors.Is(err, commands.ErrVINAlreadyRegistered):
		return http.StatusConflict
	case isValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isValidationError(err error) bool {
	var invalidErr *errs.ValueIsInvalidError
	var requiredErr *errs.ValueIsRequiredError
	var outOfRangeErr *errs.ValueIsOutOfRangeError
	var fieldErrs validator.ValidationErrors

	return errors.As(err, &invalidErr) ||
		errors.As(err, &requiredErr) ||
		errors.As(err, &outOfRangeErr) ||
		errors.As(err, &fieldErrs)
}
