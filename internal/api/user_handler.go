package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peakform/coach-app/internal/service"
)

// UserHandler handles the profile endpoints and the admin-only removal.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Bio         *string `json:"bio" binding:"omitempty,max=1000"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	NotifyEmail *bool   `json:"notifyEmail"`
}

// Me handles GET /me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": MapUserToResponse(user)})
}

// UpdateMe handles PUT /me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	update := service.ProfileUpdate{
		Name:        req.Name,
		Bio:         req.Bio,
		Phone:       req.Phone,
		NotifyEmail: req.NotifyEmail,
	}
	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, update)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": MapUserToResponse(user)})
}

// AdminDeleteUser handles DELETE /api/admin/users/:userId
func (h *UserHandler) AdminDeleteUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Utilisateur supprimé avec succès"})
}
