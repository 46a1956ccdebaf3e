package handlers

import (
	"net/http"

	"github.com/komo3344/airbnb-backend/middleware"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account endpoints.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var reg models.UserRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.UserService.RegisterUser(c.Request.Context(), reg)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("User registered", zap.String("userID", resp.ID))
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var creds models.UserLogin
	if err := c.ShouldBindJSON(&creds); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.UserService.AuthenticateUser(c.Request.Context(), creds.Username, creds.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeUserAuthTokenHandler handles POST /api/users/logout.
func (h *UserHandler) RevokeUserAuthTokenHandler(c *gin.Context) {
	if err := h.UserService.RevokeUserAuthToken(c.Request.Context(), middleware.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": "bye!"})
}

// GetMeHandler handles GET /api/users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	usr, err := h.UserService.GetUserByID(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateMeHandler handles PUT /api/users/me.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, err)
		return
	}
	usr, err := h.UserService.UpdateUser(c.Request.Context(), middleware.CurrentUserID(c), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ChangePasswordHandler handles PUT /api/users/change-password.
func (h *UserHandler) ChangePasswordHandler(c *gin.Context) {
	var req models.PasswordChange
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.UserService.UpdateUserPassword(c.Request.Context(), middleware.CurrentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// GetPublicUserHandler handles GET /api/users/profile/:username.
func (h *UserHandler) GetPublicUserHandler(c *gin.Context) {
	usr, err := h.UserService.GetPublicUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username": usr.Username,
		"name":     usr.Name,
		"is_host":  usr.IsHost,
	})
}
