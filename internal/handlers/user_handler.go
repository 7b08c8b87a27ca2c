package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twofold/internal/services"
)

// UserHandler handles the participant listing.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers returns both participants.
// @Summary     List users
// @Description Get the husband and wife records
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.User "Users"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
