package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-cms/helper"
	"estate-cms/models"
	"estate-cms/services"
)

type BlogHandler struct {
	blogService services.BlogService
	Helper      *helper.HTTPHelper
}

func NewBlogHandler(blogService services.BlogService, h *helper.HTTPHelper) *BlogHandler {
	return &BlogHandler{blogService: blogService, Helper: h}
}

func (h *BlogHandler) GetBlogs(c *gin.Context) {
	posts, err := h.blogService.List(c.Request.Context())
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	post, err := h.blogService.Get(c.Request.Context(), id)
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var form models.BlogForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.HandleBindError(c, err)
		return
	}

	post, err := h.blogService.Create(c.Request.Context(), form, helper.FormFile(c, "coverImage"))
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	fields, err := helper.PatchFields(c, models.BlogFields)
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}

	post, err := h.blogService.Update(c.Request.Context(), id, fields, helper.FormFile(c, "coverImage"))
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}
