package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-cms/helper"
	"estate-cms/middleware"
	"estate-cms/models"
	"estate-cms/services"
)

// AdminHandler renders the admin shell pages and handles the form login.
// Editing itself goes through the JSON API.
type AdminHandler struct {
	authService    services.AuthService
	tokens         services.TokenService
	cookie         middleware.SessionCookie
	projectService services.ProjectService
	blogService    services.BlogService
	mediaService   services.MediaService
	userService    services.UserService
	settingService services.SettingService
	site           *SiteHandler
	Helper         *helper.HTTPHelper
}

type AdminDeps struct {
	AuthService    services.AuthService
	Tokens         services.TokenService
	Cookie         middleware.SessionCookie
	ProjectService services.ProjectService
	BlogService    services.BlogService
	MediaService   services.MediaService
	UserService    services.UserService
	SettingService services.SettingService
}

func NewAdminHandler(deps AdminDeps, site *SiteHandler, h *helper.HTTPHelper) *AdminHandler {
	return &AdminHandler{
		authService:    deps.AuthService,
		tokens:         deps.Tokens,
		cookie:         deps.Cookie,
		projectService: deps.ProjectService,
		blogService:    deps.BlogService,
		mediaService:   deps.MediaService,
		userService:    deps.UserService,
		settingService: deps.SettingService,
		site:           site,
		Helper:         h,
	}
}

func (h *AdminHandler) LoginForm(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, "", "")
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderLogin(c, http.StatusBadRequest, req.Email, "Email and password are required")
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if h.Helper.GetStatusCode(err) == http.StatusBadRequest {
			h.renderLogin(c, http.StatusBadRequest, req.Email, err.Error())
			return
		}
		h.site.renderError(c, err)
		return
	}

	h.cookie.Set(c, response.Token, h.tokens.TTL())
	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) Logout(c *gin.Context) {
	h.cookie.Clear(c)
	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	projects, err := h.projectService.List(ctx)
	if err != nil {
		h.site.renderError(c, err)
		return
	}
	posts, err := h.blogService.List(ctx)
	if err != nil {
		h.site.renderError(c, err)
		return
	}
	media, err := h.mediaService.List(ctx)
	if err != nil {
		h.site.renderError(c, err)
		return
	}
	users, err := h.userService.List(ctx)
	if err != nil {
		h.site.renderError(c, err)
		return
	}

	h.render(c, "dashboard", "Dashboard", gin.H{
		"Counts": map[string]int{
			"projects": len(projects),
			"blogs":    len(posts),
			"media":    len(media),
			"users":    len(users),
		},
	})
}

func (h *AdminHandler) Projects(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		h.site.renderError(c, err)
		return
	}
	h.render(c, "projects", "Projects", gin.H{"Items": projects})
}

func (h *AdminHandler) NewProject(c *gin.Context) {
	h.render(c, "project-edit", "New project", nil)
}

func (h *AdminHandler) EditProject(c *gin.Context) {
	id, ok := parseSiteID(c)
	if !ok {
		h.site.NotFound(c)
		return
	}
	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		h.site.renderError(c, err)
		return
	}
	h.render(c, "project-edit", "Edit project", gin.H{"Item": project})
}

func (h *AdminHandler) Blogs(c *gin.Context) {
	posts, err := h.blogService.List(c.Request.Context())
	if err != nil {
		h.site.renderError(c, err)
		return
	}
	h.render(c, "blogs", "Blog posts", gin.H{"Items": posts})
}

func (h *AdminHandler) NewBlog(c *gin.Context) {
	h.render(c, "blog-edit", "New blog post", nil)
}

func (h *AdminHandler) EditBlog(c *gin.Context) {
	id, ok := parseSiteID(c)
	if !ok {
		h.site.NotFound(c)
		return
	}
	post, err := h.blogService.Get(c.Request.Context(), id)
	if err != nil {
		h.site.renderError(c, err)
		return
	}
	h.render(c, "blog-edit", "Edit blog post", gin.H{"Item": post})
}

func (h *AdminHandler) Media(c *gin.Context) {
	media, err := h.mediaService.List(c.Request.Context())
	if err != nil {
		h.site.renderError(c, err)
		return
	}
	h.render(c, "media", "Media", gin.H{"Items": media})
}

func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.site.renderError(c, err)
		return
	}
	h.render(c, "users", "Users", gin.H{"Items": users})
}

func (h *AdminHandler) Settings(c *gin.Context) {
	setting, err := h.settingService.Get(c.Request.Context())
	if err != nil {
		h.site.renderError(c, err)
		return
	}
	h.render(c, "settings", "Settings", gin.H{"Item": setting})
}

// EditPage renders the editor of one of the fixed pages. Unknown names are
// not found.
func (h *AdminHandler) EditPage(c *gin.Context) {
	name := models.PageName(c.Param("name"))
	if !name.Valid() {
		h.site.NotFound(c)
		return
	}
	h.render(c, "page-edit", "Edit page: "+string(name), gin.H{"PageName": name})
}

func (h *AdminHandler) render(c *gin.Context, section, title string, data gin.H) {
	view, err := siteView(c.Request.Context(), h.settingService)
	if err != nil {
		h.site.renderError(c, err)
		return
	}
	for k, v := range data {
		view[k] = v
	}
	view["Section"] = section
	view["Title"] = title
	view["PageNames"] = models.PageNames
	c.HTML(http.StatusOK, "admin.html", view)
}

func (h *AdminHandler) renderLogin(c *gin.Context, status int, email, message string) {
	view, err := siteView(c.Request.Context(), h.settingService)
	if err != nil {
		view = gin.H{"SiteTitle": models.DefaultSiteTitle}
	}
	view["Email"] = email
	view["Error"] = message
	c.HTML(status, "admin_login.html", view)
}
