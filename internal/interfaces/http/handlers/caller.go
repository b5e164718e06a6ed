package handlers

import (
	"github.com/gin-gonic/gin"
	"ouibooking.backend/internal/interfaces/http/middleware"
	"ouibooking.backend/internal/usecases"
)

// callerFrom builds the usecase caller identity from the auth middleware's
// context values.
func callerFrom(c *gin.Context) (usecases.Caller, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return usecases.Caller{}, false
	}
	role, _ := middleware.GetUserRole(c)
	return usecases.Caller{UserID: userID, Role: role}, true
}
