package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roomify/services/staff"
	"roomify/utils"
)

// AuthHandler exposes staff login and logout.
type AuthHandler struct {
	Svc    staff.StaffService
	Logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc staff.StaffService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Login authenticates a staff member and returns a role-carrying token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}

	token, record, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status := utils.HTTPStatus(err)
		if status == http.StatusBadRequest {
			status = http.StatusUnauthorized
		}
		utils.JSONError(c, status, "invalid email or password")
		return
	}

	h.Logger.Info("staff login", zap.String("staffId", record.ID), zap.String("role", record.Role))
	utils.JSONData(c, http.StatusOK, gin.H{
		"token": token,
		"staff": record,
	})
}

// Logout revokes the presented token.
func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		utils.JSONError(c, http.StatusBadRequest, "missing bearer token")
		return
	}

	if err := h.Svc.RevokeToken(c.Request.Context(), tokenString); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONMessage(c, http.StatusOK, "logged out")
}
