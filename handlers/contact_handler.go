package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"estate-cms/helper"
	"estate-cms/models"
)

// ContactHandler accepts contact form submissions. Nothing is stored; the
// submission is only logged.
type ContactHandler struct {
	log    zerolog.Logger
	Helper *helper.HTTPHelper
}

func NewContactHandler(log zerolog.Logger, h *helper.HTTPHelper) *ContactHandler {
	return &ContactHandler{log: log, Helper: h}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.HandleBindError(c, err)
		return
	}

	h.log.Info().
		Str("name", req.Name).
		Str("email", req.Email).
		Str("phone", req.Phone).
		Str("message", req.Message).
		Msg("contact form submission")

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you for your message. We will get back to you soon."})
}
