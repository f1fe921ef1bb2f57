package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-cms/helper"
	"estate-cms/models"
	"estate-cms/services"
)

type PageHandler struct {
	pageService services.PageService
	Helper      *helper.HTTPHelper
}

func NewPageHandler(pageService services.PageService, h *helper.HTTPHelper) *PageHandler {
	return &PageHandler{pageService: pageService, Helper: h}
}

func (h *PageHandler) GetPages(c *gin.Context) {
	pages, err := h.pageService.List(c.Request.Context())
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

func (h *PageHandler) GetPage(c *gin.Context) {
	page, err := h.pageService.Get(c.Request.Context(), models.PageName(c.Param("name")))
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// UpsertPage creates the named page or merges the body into it.
func (h *PageHandler) UpsertPage(c *gin.Context) {
	var req models.PageUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.HandleBindError(c, err)
		return
	}

	page, err := h.pageService.Upsert(c.Request.Context(), models.PageName(c.Param("name")), req)
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
