package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-cms/helper"
	"estate-cms/services"
)

type MediaHandler struct {
	mediaService services.MediaService
	Helper       *helper.HTTPHelper
}

func NewMediaHandler(mediaService services.MediaService, h *helper.HTTPHelper) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, Helper: h}
}

func (h *MediaHandler) GetMediaList(c *gin.Context) {
	media, err := h.mediaService.List(c.Request.Context())
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) GetMedia(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	media, err := h.mediaService.Get(c.Request.Context(), id)
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

// UploadMedia stores the file sent in the mediaFile field.
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	file := helper.FormFile(c, "mediaFile")
	if file == nil {
		h.Helper.SendBadRequest(c, "No file uploaded.", h.Helper.EmptyJsonMap())
		return
	}

	media, err := h.mediaService.Upload(c.Request.Context(), file)
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Media deleted successfully"})
}
