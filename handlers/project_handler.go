package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-cms/helper"
	"estate-cms/models"
	"estate-cms/services"
)

type ProjectHandler struct {
	projectService services.ProjectService
	Helper         *helper.HTTPHelper
}

func NewProjectHandler(projectService services.ProjectService, h *helper.HTTPHelper) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, Helper: h}
}

func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject takes a multipart form with the scalar fields plus optional
// mainImage, bannerImage and galleryImages files.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var form models.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.HandleBindError(c, err)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), form, projectUploads(c))
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	fields, err := helper.PatchFields(c, models.ProjectFields)
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, fields, projectUploads(c))
	if err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

func projectUploads(c *gin.Context) services.ProjectUploads {
	return services.ProjectUploads{
		MainImage:   helper.FormFile(c, "mainImage"),
		BannerImage: helper.FormFile(c, "bannerImage"),
		Gallery:     helper.FormFiles(c, "galleryImages"),
	}
}
