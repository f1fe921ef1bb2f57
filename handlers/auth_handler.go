package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-cms/helper"
	"estate-cms/middleware"
	"estate-cms/models"
	"estate-cms/services"
)

type AuthHandler struct {
	authService services.AuthService
	tokens      services.TokenService
	cookie      middleware.SessionCookie
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, tokens services.TokenService, cookie middleware.SessionCookie, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens, cookie: cookie, Helper: h}
}

// Login returns the session token and also stores it in the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.HandleBindError(c, err)
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}

	h.cookie.Set(c, response.Token, h.tokens.TTL())
	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req models.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.HandleBindError(c, err)
		return
	}

	user, err := h.authService.RegisterInitialAdmin(c.Request.Context(), req)
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin user created successfully", "user": user})
}

// Logout drops the session cookie. Tokens stay valid until they expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookie.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), identity.UserID)
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
