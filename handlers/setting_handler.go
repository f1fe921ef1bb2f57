package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-cms/helper"
	"estate-cms/models"
	"estate-cms/services"
)

type SettingHandler struct {
	settingService services.SettingService
	Helper         *helper.HTTPHelper
}

func NewSettingHandler(settingService services.SettingService, h *helper.HTTPHelper) *SettingHandler {
	return &SettingHandler{settingService: settingService, Helper: h}
}

func (h *SettingHandler) GetSettings(c *gin.Context) {
	setting, err := h.settingService.Get(c.Request.Context())
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req models.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.HandleBindError(c, err)
		return
	}

	setting, err := h.settingService.Update(c.Request.Context(), req)
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}
