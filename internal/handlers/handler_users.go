package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

// userHandler handles user administration requests.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(userService portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: userService}
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:user_id", h.getUser)
		users.PUT("/:user_id", h.updateUser)
		users.DELETE("/:user_id", h.deactivateUser)
		users.DELETE("/:user_id/gdpr", h.eraseUser)
	}
}

// createUser godoc
// @Summary Create a user
// @Description Creates a user in the caller's company. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param includeInactive query bool false "Include deactivated users"
// @Success 200 {array} dto.UserResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), caller, c.Query("includeInactive") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

func (h *userHandler) getUser(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), caller, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) updateUser(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), caller, c.Param("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deactivateUser godoc
// @Summary Deactivate a user
// @Description Soft delete: the user can no longer log in but their history remains.
// @Tags users
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /users/{user_id} [delete]
func (h *userHandler) deactivateUser(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	if err := h.userService.DeactivateUser(c.Request.Context(), caller, c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// eraseUser godoc
// @Summary Erase a user (GDPR)
// @Description Permanently removes the user and all data they own. The audit trail is anonymized, not deleted.
// @Tags users
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /users/{user_id}/gdpr [delete]
func (h *userHandler) eraseUser(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	if err := h.userService.EraseUser(c.Request.Context(), caller, c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
