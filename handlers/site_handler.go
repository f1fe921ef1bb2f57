package handlers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"estate-cms/helper"
	"estate-cms/models"
	"estate-cms/services"
)

// FeaturedOnHome is the number of featured projects shown on the home page.
const FeaturedOnHome = 3

// SiteHandler renders the public pages.
type SiteHandler struct {
	projectService services.ProjectService
	blogService    services.BlogService
	pageService    services.PageService
	settingService services.SettingService
	publicDir      string
	Helper         *helper.HTTPHelper
}

func NewSiteHandler(
	projectService services.ProjectService,
	blogService services.BlogService,
	pageService services.PageService,
	settingService services.SettingService,
	publicDir string,
	h *helper.HTTPHelper,
) *SiteHandler {
	return &SiteHandler{
		projectService: projectService,
		blogService:    blogService,
		pageService:    pageService,
		settingService: settingService,
		publicDir:      publicDir,
		Helper:         h,
	}
}

func (h *SiteHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	view, ok := h.pageView(c, models.PageHome)
	if !ok {
		return
	}

	featured, err := h.projectService.Featured(ctx, FeaturedOnHome)
	if err != nil {
		h.renderError(c, err)
		return
	}
	latest, err := h.projectService.LatestFeatured(ctx)
	if err != nil && !isNotFound(err) {
		h.renderError(c, err)
		return
	}

	view["Featured"] = featured
	view["Latest"] = latest
	c.HTML(http.StatusOK, "home.html", view)
}

func (h *SiteHandler) About(c *gin.Context) {
	h.renderPage(c, models.PageAbout, "about.html")
}

func (h *SiteHandler) Contact(c *gin.Context) {
	h.renderPage(c, models.PageContact, "contact.html")
}

func (h *SiteHandler) Projects(c *gin.Context) {
	view, ok := h.pageView(c, models.PageProjects)
	if !ok {
		return
	}

	page, limit := h.Helper.PageParams(c, view["ItemsPerPage"].(int))
	projects, total, err := h.projectService.ListPage(c.Request.Context(), page, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}

	view["Projects"] = projects
	view["Paging"] = h.Helper.GeneratePaging(c, 0, 0, limit, page, int(total))
	c.HTML(http.StatusOK, "projects.html", view)
}

func (h *SiteHandler) Property(c *gin.Context) {
	view, ok := h.baseView(c)
	if !ok {
		return
	}
	id, ok := parseSiteID(c)
	if !ok {
		h.NotFound(c)
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	view["Title"] = project.Title
	view["MetaDescription"] = project.ShortDescription
	view["Project"] = project
	c.HTML(http.StatusOK, "property.html", view)
}

func (h *SiteHandler) Blog(c *gin.Context) {
	view, ok := h.pageView(c, models.PageBlog)
	if !ok {
		return
	}

	page, limit := h.Helper.PageParams(c, view["ItemsPerPage"].(int))
	posts, total, err := h.blogService.ListPage(c.Request.Context(), page, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}

	view["Posts"] = posts
	view["Paging"] = h.Helper.GeneratePaging(c, 0, 0, limit, page, int(total))
	c.HTML(http.StatusOK, "blog.html", view)
}

func (h *SiteHandler) BlogPost(c *gin.Context) {
	view, ok := h.baseView(c)
	if !ok {
		return
	}
	id, ok := parseSiteID(c)
	if !ok {
		h.NotFound(c)
		return
	}

	post, err := h.blogService.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	view["Title"] = post.Title
	view["MetaDescription"] = post.ShortDescription
	view["Post"] = post
	c.HTML(http.StatusOK, "blog_post.html", view)
}

// NotFound serves files from the public directory and renders the 404 page
// for anything else.
func (h *SiteHandler) NotFound(c *gin.Context) {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		if file, ok := h.publicFile(c.Request.URL.Path); ok {
			c.File(file)
			return
		}
	}

	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		h.Helper.SendNotFoundError(c, "Not found", h.Helper.EmptyJsonMap())
		return
	}
	h.renderStatus(c, http.StatusNotFound, "The page you are looking for does not exist.")
}

func (h *SiteHandler) publicFile(urlPath string) (string, bool) {
	if h.publicDir == "" {
		return "", false
	}
	clean := filepath.FromSlash(filepath.Clean("/" + urlPath))
	file := filepath.Join(h.publicDir, clean)
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return "", false
	}
	return file, true
}

func (h *SiteHandler) renderPage(c *gin.Context, name models.PageName, tmpl string) {
	view, ok := h.pageView(c, name)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, tmpl, view)
}

// pageView loads the settings and the named page. A page that has not been
// created yet renders with its name as title.
func (h *SiteHandler) pageView(c *gin.Context, name models.PageName) (gin.H, bool) {
	view, ok := h.baseView(c)
	if !ok {
		return nil, false
	}

	page, err := h.pageService.Get(c.Request.Context(), name)
	if err != nil {
		if !isNotFound(err) {
			h.renderError(c, err)
			return nil, false
		}
		page = &models.Page{Name: name, Title: strings.ToUpper(string(name[:1])) + string(name[1:])}
	}

	view["Page"] = page
	view["Title"] = page.Title
	view["MetaDescription"] = page.MetaDescription
	return view, true
}

func (h *SiteHandler) baseView(c *gin.Context) (gin.H, bool) {
	view, err := siteView(c.Request.Context(), h.settingService)
	if err != nil {
		h.renderError(c, err)
		return nil, false
	}
	return view, true
}

func (h *SiteHandler) renderError(c *gin.Context, err error) {
	if isNotFound(err) {
		h.renderStatus(c, http.StatusNotFound, "The page you are looking for does not exist.")
		return
	}
	h.Helper.Log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("rendering page failed")
	h.renderStatus(c, http.StatusInternalServerError, "Something went wrong on our side.")
}

func (h *SiteHandler) renderStatus(c *gin.Context, status int, message string) {
	view, err := siteView(c.Request.Context(), h.settingService)
	if err != nil {
		view = gin.H{"SiteTitle": models.DefaultSiteTitle}
	}
	view["Title"] = http.StatusText(status)
	view["Status"] = status
	view["Message"] = message
	c.HTML(status, "error.html", view)
}

func siteView(ctx context.Context, settingService services.SettingService) (gin.H, error) {
	setting, err := settingService.Get(ctx)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"SiteTitle":    setting.SiteTitle,
		"ItemsPerPage": setting.ItemsPerPage,
	}, nil
}

func parseSiteID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func isNotFound(err error) bool {
	var notFound models.ErrorNotFound
	return errors.As(err, &notFound)
}
