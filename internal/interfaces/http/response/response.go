package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "ouibooking.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Domain sentinel errors are mapped to their
// HTTP shape; anything unrecognised becomes a 500.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrEmailInUse):
		return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeEmailInUse, "Email is already in use", err)
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid email or password", err)
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("forbidden")
	case errors.Is(err, domainerrors.ErrUnknownIndustry):
		return domainerrors.NewAppError(http.StatusUnprocessableEntity, domainerrors.CodeUnknownIndustry, "Unknown industry", err)
	case errors.Is(err, domainerrors.ErrInvalidStep):
		return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, "Operation not allowed at the current wizard step", err)
	case errors.Is(err, domainerrors.ErrStepIncomplete):
		return domainerrors.NewAppError(http.StatusUnprocessableEntity, domainerrors.CodeValidation, "Current wizard step is incomplete", err)
	case errors.Is(err, domainerrors.ErrBadRequest), errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest(err.Error())
	}
	return domainerrors.InternalError(err)
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
